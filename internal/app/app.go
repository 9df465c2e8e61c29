// Package app runs the interactive picking viewer: it owns the window,
// feeds input to the interaction core and renders every frame.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/boxpick/internal/config"
	"github.com/Faultbox/boxpick/internal/engine/debug"
	"github.com/Faultbox/boxpick/internal/engine/input"
	"github.com/Faultbox/boxpick/internal/engine/lighting"
	"github.com/Faultbox/boxpick/internal/engine/renderer"
	"github.com/Faultbox/boxpick/internal/engine/window"
	"github.com/Faultbox/boxpick/internal/interaction"
	"github.com/Faultbox/boxpick/internal/logger"
	"github.com/Faultbox/boxpick/pkg/math"
)

// App is the viewer instance.
type App struct {
	cfg        *config.Config
	configPath string
	running    bool

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	core        *interaction.Core
	screenshots *debug.ScreenshotCapture
	wantShot    bool

	log *zap.Logger
}

// New creates the window, renderer and interaction core. configPath is the
// file to watch for live filter changes; empty disables watching.
func New(cfg *config.Config, configPath string) (*App, error) {
	a := &App{
		cfg:         cfg,
		configPath:  configPath,
		input:       input.New(),
		screenshots: debug.NewScreenshotCapture("screenshots", "boxpick"),
		log:         logger.Named("app"),
	}

	objects := SceneObjects(cfg)
	viewport := math.Viewport{Width: float32(cfg.Window.Width), Height: float32(cfg.Window.Height)}

	var err error
	a.core, err = interaction.New(OptionsFromConfig(cfg), objects, viewport)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction core: %w", err)
	}

	// Window also creates the OpenGL context
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The window manager may not honor the requested size
	if w, h := a.window.GetSize(); w != cfg.Window.Width || h != cfg.Window.Height {
		a.core.Resize(w, h)
	}
	vp := a.core.Viewport()

	a.renderer, err = renderer.New(renderer.Config{
		Width:    int(vp.Width),
		Height:   int(vp.Height),
		GridSize: cfg.Scene.GridSize,
		Sun:      lighting.DefaultSun(),
	}, objects)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.log.Info("viewer initialized", zap.Int("boxes", len(objects)))
	return a, nil
}

// Run drives the frame loop until the window closes, Escape is pressed or
// ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	var reloads <-chan *config.Config
	if a.configPath != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		ch, err := config.Watch(ctx, a.configPath)
		if err != nil {
			a.log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			reloads = ch
		}
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-reloads:
			if !ok {
				reloads = nil
				break
			}
			a.applyReload(cfg)
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents()

		axes := a.input.MoveAxes()
		a.core.Move(axes.Walk, axes.Strafe, axes.Lift)
		a.core.OnTick(dt)

		a.renderer.Render(a.core)
		if a.wantShot {
			a.wantShot = false
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			if ev.Width > 0 && ev.Height > 0 {
				a.core.Resize(ev.Width, ev.Height)
				a.renderer.Resize(ev.Width, ev.Height)
			}

		case input.EventMouseDown:
			sel := a.core.OnPointerDown(pointerButton(ev.Button), ev.MouseX, ev.MouseY)
			if idx, ok := sel.Index(); ok {
				a.log.Info("Selected box", zap.Int("index", idx), zap.Float32("distance", sel.Distance()))
			} else {
				a.log.Info("No box picked")
			}
			a.window.SetTitle(Title(sel))

		case input.EventMouseUp:
			a.core.OnPointerUp(pointerButton(ev.Button))

		case input.EventMouseMove:
			if ev.Held {
				a.core.OnPointerDrag(ev.MouseX, ev.MouseY)
			}

		case input.EventKeyDown:
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_F:
				a.toggleFilter()
			case sdl.SCANCODE_F12:
				a.wantShot = true
			}
		}
	}
}

func (a *App) toggleFilter() {
	f := &a.cfg.Filter
	f.Enabled = !f.Enabled
	if err := a.core.ConfigureFilter(f.Enabled, f.Depth, f.Weight); err != nil {
		a.log.Warn("filter toggle failed", zap.Error(err))
		return
	}
	a.log.Info("mouse filter toggled", zap.Bool("enabled", f.Enabled))
}

func (a *App) applyReload(cfg *config.Config) {
	f := cfg.Filter
	if err := a.core.ConfigureFilter(f.Enabled, f.Depth, f.Weight); err != nil {
		a.log.Warn("ignoring reloaded filter settings", zap.Error(err))
		return
	}
	a.cfg.Filter = f
	a.log.Info("filter settings applied",
		zap.Bool("enabled", f.Enabled),
		zap.Int("depth", f.Depth),
		zap.Float32("weight", f.Weight),
	)
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
