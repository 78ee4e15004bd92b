// noisetool generates noise volumes without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Faultbox/volview/internal/engine/debug"
	"github.com/Faultbox/volview/pkg/noise"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "generate", "gen":
		err = cmdGenerate(args, os.Stdout)
	case "sample":
		err = cmdSample(args, os.Stdout)
	case "stats":
		err = cmdStats(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`noisetool - procedural noise volume utility

Usage:
  noisetool <command> [options]

Commands:
  generate [-out file.raw] [-png slices.png]  Write a size³ volume
  sample <x> <y> <z>                          Print the noise value at a point
  stats                                       Print the voxel histogram

Common options:
  -size N          Volume edge length (default 32)
  -frequency F     Noise units per voxel (default 0.15)
  -seed N          Permutation seed (default 1)
  -generator NAME  gradient or fractal (default gradient)

Examples:
  noisetool generate -size 64 -out noise.raw -png noise.png
  noisetool sample -seed 7 0.5 1.25 3
  noisetool stats -generator fractal`)
}

// volumeFlags are shared by every subcommand.
type volumeFlags struct {
	size      int
	frequency float64
	seed      int64
	generator string
	octaves   int
}

func newFlagSet(name string, out io.Writer) (*flag.FlagSet, *volumeFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	v := &volumeFlags{}
	fs.IntVar(&v.size, "size", 32, "volume edge length")
	fs.Float64Var(&v.frequency, "frequency", 0.15, "noise units per voxel")
	fs.Int64Var(&v.seed, "seed", 1, "permutation seed")
	fs.StringVar(&v.generator, "generator", noise.GeneratorGradient, "gradient or fractal")
	fs.IntVar(&v.octaves, "octaves", 3, "octaves for the fractal generator")
	return fs, v
}

func (v *volumeFlags) sampler() (noise.Sampler, error) {
	cfg := noise.DefaultFractalConfig(v.seed)
	cfg.Octaves = int32(v.octaves)
	return noise.NewSampler(v.generator, cfg)
}

func (v *volumeFlags) volume() ([]uint8, error) {
	s, err := v.sampler()
	if err != nil {
		return nil, err
	}
	return noise.Volume(s, v.size, v.frequency)
}

func cmdGenerate(args []string, out io.Writer) error {
	fs, v := newFlagSet("generate", out)
	rawPath := fs.String("out", "", "raw output file (size³ bytes, X fastest)")
	pngPath := fs.String("png", "", "PNG montage of the Z slices")
	cols := fs.Int("cols", 8, "montage columns")
	scale := fs.Int("scale", 4, "montage pixels per voxel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rawPath == "" && *pngPath == "" {
		return fmt.Errorf("nothing to write: pass -out and/or -png")
	}

	data, err := v.volume()
	if err != nil {
		return err
	}

	if *rawPath != "" {
		if err := os.WriteFile(*rawPath, data, 0644); err != nil {
			return fmt.Errorf("writing raw volume: %w", err)
		}
		fmt.Fprintf(out, "Wrote %d bytes to %s\n", len(data), *rawPath)
	}

	if *pngPath != "" {
		img, err := debug.SliceMontage(data, v.size, *cols, *scale)
		if err != nil {
			return err
		}
		if err := debug.WritePNG(*pngPath, img); err != nil {
			return err
		}
		b := img.Bounds()
		fmt.Fprintf(out, "Wrote %dx%d montage to %s\n", b.Dx(), b.Dy(), *pngPath)
	}
	return nil
}

func cmdSample(args []string, out io.Writer) error {
	fs, v := newFlagSet("sample", out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: noisetool sample [options] <x> <y> <z>")
	}

	var p [3]float64
	for i := range p {
		f, err := strconv.ParseFloat(fs.Arg(i), 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", fs.Arg(i), err)
		}
		p[i] = f
	}

	s, err := v.sampler()
	if err != nil {
		return err
	}
	value, err := s.Sample(p[0], p[1], p[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%.6f\t%d\n", value, noise.Quantize(value))
	return nil
}

func cmdStats(args []string, out io.Writer) error {
	fs, v := newFlagSet("stats", out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := v.volume()
	if err != nil {
		return err
	}

	var buckets [8]int
	var sum int
	lo, hi := uint8(255), uint8(0)
	zeros := 0
	for _, b := range data {
		buckets[b/32]++
		sum += int(b)
		if b < lo {
			lo = b
		}
		if b > hi {
			hi = b
		}
		if b == 0 {
			zeros++
		}
	}

	fmt.Fprintf(out, "Voxels:   %d (%d³)\n", len(data), v.size)
	fmt.Fprintf(out, "Range:    %d - %d\n", lo, hi)
	fmt.Fprintf(out, "Mean:     %.2f\n", float64(sum)/float64(len(data)))
	fmt.Fprintf(out, "Zero:     %.1f%%\n", 100*float64(zeros)/float64(len(data)))
	fmt.Fprintln(out, "\nHistogram:")
	for i, n := range buckets {
		fmt.Fprintf(out, "  %3d-%3d  %d\n", i*32, i*32+31, n)
	}
	return nil
}
