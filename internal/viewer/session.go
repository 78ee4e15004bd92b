// Package viewer runs the interactive volume viewer.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/volview/internal/engine/camera"
	"github.com/Faultbox/volview/internal/engine/input"
	"github.com/Faultbox/volview/internal/engine/manip"
	"github.com/Faultbox/volview/internal/engine/scene"
	"github.com/Faultbox/volview/internal/logger"
)

// Mode selects which controller receives pointer input.
type Mode int

const (
	ModeCamera Mode = iota
	ModeNode
)

func (m Mode) String() string {
	switch m {
	case ModeCamera:
		return "camera"
	case ModeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Session is the per-frame interaction state, independent of any window.
type Session struct {
	camera   *camera.Controller
	manip    *manip.Controller
	graph    *scene.Graph
	mode     Mode
	selected int
	log      *zap.Logger
}

// NewSession creates a session in camera mode with the first node selected.
func NewSession(cam *camera.Controller, graph *scene.Graph) *Session {
	return &Session{
		camera: cam,
		manip:  manip.NewController(),
		graph:  graph,
		mode:   ModeCamera,
		log:    logger.Named("viewer"),
	}
}

// Mode returns the active mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Camera returns the camera controller.
func (s *Session) Camera() *camera.Controller {
	return s.camera
}

// Graph returns the scene graph.
func (s *Session) Graph() *scene.Graph {
	return s.graph
}

// Selected returns the node edited in node mode, or nil for an empty graph.
func (s *Session) Selected() *scene.Node {
	return s.graph.At(s.selected)
}

// Title describes the mode and, in node mode, the selected node.
func (s *Session) Title() string {
	if node := s.Selected(); s.mode == ModeNode && node != nil {
		return fmt.Sprintf("volview - %s: %s", s.mode, node.Name)
	}
	return fmt.Sprintf("volview - %s", s.mode)
}

// Step handles one frame: mode keys first, then the active controller.
// Controller errors are logged and the frame's edit is dropped.
// Returns true when the user asked to quit.
func (s *Session) Step(events []input.Event, in input.Frame, dt float32) bool {
	for _, e := range events {
		switch e.Type {
		case input.EventQuit:
			return true
		case input.EventKeyDown:
			if s.handleKey(e.Key) {
				return true
			}
		}
	}

	switch s.mode {
	case ModeCamera:
		if _, err := s.camera.Advance(in, dt); err != nil {
			s.log.Warn("camera update skipped", zap.Error(err))
		}

	case ModeNode:
		node := s.Selected()
		if node == nil || in.Idle() {
			return false
		}
		b, err := s.camera.Basis()
		if err != nil {
			s.log.Warn("node update skipped", zap.String("node", node.Name), zap.Error(err))
			return false
		}
		if _, _, err := s.manip.Advance(node, b, in, dt); err != nil {
			s.log.Warn("node update skipped", zap.String("node", node.Name), zap.Error(err))
		}
	}
	return false
}

func (s *Session) handleKey(k input.Key) bool {
	switch {
	case k == input.KeyEscape:
		return true

	case k == input.KeyTab:
		if s.mode == ModeCamera {
			s.mode = ModeNode
		} else {
			s.mode = ModeCamera
		}
		s.log.Info("mode changed", zap.Stringer("mode", s.mode))

	case k.Digit() > 0:
		i := k.Digit() - 1
		node := s.graph.At(i)
		if node == nil {
			s.log.Debug("no node for key", zap.Int("digit", k.Digit()))
			return false
		}
		s.selected = i
		s.log.Info("node selected", zap.String("node", node.Name))
	}
	return false
}
