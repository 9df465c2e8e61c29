package app

import (
	"fmt"

	"github.com/Faultbox/boxpick/internal/config"
	"github.com/Faultbox/boxpick/internal/engine/input"
	"github.com/Faultbox/boxpick/internal/engine/picking"
	"github.com/Faultbox/boxpick/internal/interaction"
	"github.com/Faultbox/boxpick/pkg/math"
)

// OptionsFromConfig maps the camera and filter sections onto interaction options.
func OptionsFromConfig(cfg *config.Config) interaction.Options {
	c := cfg.Camera
	return interaction.Options{
		StartPosition: vec3(c.Position),
		Target:        vec3(c.Target),
		FOV:           c.FOV,
		Near:          c.Near,
		Far:           c.Far,
		Sensitivity:   c.Sensitivity,
		Damping:       c.Damping,
		Epsilon:       c.Epsilon,
		MoveSpeed:     c.MoveSpeed,
		FilterEnabled: cfg.Filter.Enabled,
		FilterDepth:   cfg.Filter.Depth,
		FilterWeight:  cfg.Filter.Weight,
	}
}

// SceneObjects builds one pickable box per configured anchor.
func SceneObjects(cfg *config.Config) []picking.SceneObject {
	anchors := make([]math.Vec3, len(cfg.Scene.Anchors))
	for i, a := range cfg.Scene.Anchors {
		anchors[i] = vec3(a)
	}
	return picking.NewSceneObjects(anchors, cfg.Scene.HalfExtent)
}

// Title returns the window title for a selection.
func Title(sel picking.Selection) string {
	if idx, ok := sel.Index(); ok {
		return fmt.Sprintf("Picked box: %d", idx)
	}
	return "No box picked"
}

// pointerButton maps an SDL mouse button to an interaction button.
func pointerButton(b uint8) interaction.Button {
	switch b {
	case input.ButtonMiddle:
		return interaction.ButtonMiddle
	case input.ButtonRight:
		return interaction.ButtonRight
	default:
		return interaction.ButtonLeft
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
