// Package texture uploads voxel data to OpenGL textures.
package texture

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrVolumeSize is returned when the data does not hold size³ bytes.
var ErrVolumeSize = errors.New("volume data size mismatch")

// Volume is a single-channel 3D texture.
type Volume struct {
	ID   uint32
	Size int
}

// MaxLevel returns the last mipmap level for a cube of the given edge length.
func MaxLevel(size int) int32 {
	if size < 1 {
		return 0
	}
	return int32(bits.Len(uint(size)) - 1)
}

// UploadVolume creates an R8 3D texture from size³ bytes packed X fastest,
// then Y, then Z, and generates its mipmaps.
func UploadVolume(data []uint8, size int) (*Volume, error) {
	if size < 1 || len(data) != size*size*size {
		return nil, fmt.Errorf("%w: %d bytes for size %d", ErrVolumeSize, len(data), size)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_3D, id)

	// Rows are tightly packed bytes
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAX_LEVEL, MaxLevel(size))
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	n := int32(size)
	gl.TexImage3D(gl.TEXTURE_3D, 0, gl.R8, n, n, n, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.GenerateMipmap(gl.TEXTURE_3D)

	gl.BindTexture(gl.TEXTURE_3D, 0)

	return &Volume{ID: id, Size: size}, nil
}

// Bind binds the texture to the given texture unit.
func (v *Volume) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_3D, v.ID)
}

// Delete releases the texture.
func (v *Volume) Delete() {
	if v.ID != 0 {
		gl.DeleteTextures(1, &v.ID)
		v.ID = 0
	}
}
