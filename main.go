package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/braheezy/arqr/config"
	"github.com/braheezy/arqr/pose"
	"github.com/braheezy/arqr/render"
	"github.com/braheezy/arqr/render/gles"
	"github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

// scene is the per-window state shared with the GLFW callbacks.
type scene struct {
	orbit         *pose.Orbit
	width, height int
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and applies command-line
// overrides on top of it.
func loadConfig(args []string) (config.Config, error) {
	flags := flag.NewFlagSet("arqr", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	modelPath := flags.String("model", "", "model file to draw (default: embedded sample)")
	format := flags.String("format", config.FormatSimple, "model format: simple or obj")
	width := flags.Int("width", 0, "window width")
	height := flags.Int("height", 0, "window height")
	logLevel := flags.String("log-level", "", "debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	// Only flags given explicitly override the file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model.Path = *modelPath
		case "format":
			cfg.Model.Format = *format
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	/*
	 * Load the model and shaders first; a broken asset should fail before
	 * a window pops up.
	 */
	geometry, err := loadModel(cfg.Model)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}
	slog.Info("model loaded", "path", cfg.Model.Path, "format", cfg.Model.Format,
		"vertices", geometry.VertexCount(), "triangles", geometry.TriangleCount())

	vertexSource, fragmentSource, err := loadShaders(cfg.Shaders)
	if err != nil {
		return fmt.Errorf("loading shaders: %w", err)
	}

	/*
	 * GLFW init and configure
	 */
	if err := glfw.Init(); err != nil {
		return err
	}
	// Free resources used by GLFW when the program exits.
	defer glfw.Terminate()
	// Ask for the same API the renderer targets on devices: OpenGL ES 2.0.
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()

	/*
	 * Load GLES function pointers
	 */
	if err := gles.Init(); err != nil {
		return err
	}
	slog.Debug("context ready", "version", gles.Version())

	renderer, err := render.NewRenderer(gles.Context{}, geometry, vertexSource, fragmentSource)
	if err != nil {
		var serr *render.ShaderError
		if errors.As(err, &serr) {
			slog.Error("shader diagnostics", "stage", serr.Stage, "log", serr.Log)
		}
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer renderer.Delete()
	slog.Info("renderer ready", "indices", renderer.IndexCount())

	/*
	 * The orbit stands in for the marker tracker: it reports the camera
	 * pose relative to the anchored model every frame.
	 */
	lo, hi := geometry.Bounds()
	distance := cfg.Pose.Distance
	if distance == 0 {
		distance = pose.FitDistance(lo, hi, cfg.Pose.Fov)
	}
	s := &scene{
		orbit: pose.NewOrbit(pose.Options{
			Target:   pose.Center(lo, hi),
			Distance: distance,
			Fov:      cfg.Pose.Fov,
			Near:     cfg.Pose.Near,
			Far:      cfg.Pose.Far,
			Speed:    cfg.Pose.Speed,
		}),
	}
	s.width, s.height = window.GetFramebufferSize()
	gles2.Viewport(0, 0, int32(s.width), int32(s.height))

	window.SetFramebufferSizeCallback(s.framebufferSizeCallback)
	window.SetScrollCallback(s.scrollCallback)
	window.SetKeyCallback(s.keyCallback)

	gles2.Enable(gles2.DEPTH_TEST)

	lastFrame := glfw.GetTime()
	for !window.ShouldClose() {
		currentFrame := glfw.GetTime()
		deltaTime := float32(currentFrame - lastFrame)
		lastFrame = currentFrame

		s.processInput(window, deltaTime)
		s.orbit.Update(deltaTime)

		gles2.ClearColor(0.2, 0.3, 0.3, 1.0)
		gles2.Clear(gles2.COLOR_BUFFER_BIT | gles2.DEPTH_BUFFER_BIT)

		size := mgl32.Vec2{float32(s.width), float32(s.height)}
		renderer.Render(s.orbit.Projection(size.X(), size.Y()), s.orbit.View(), size)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// framebufferSizeCallback is called when the gl viewport is resized.
func (s *scene) framebufferSizeCallback(w *glfw.Window, width int, height int) {
	s.width, s.height = width, height
	gles2.Viewport(0, 0, int32(width), int32(height))
}

func (s *scene) scrollCallback(w *glfw.Window, xOffset, yOffset float64) {
	s.orbit.Zoom(float32(yOffset))
}

func (s *scene) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeySpace:
		s.orbit.TogglePause()
		slog.Debug("orbit toggled", "paused", s.orbit.Paused())
	}
}

// processInput handles held keys.
func (s *scene) processInput(w *glfw.Window, deltaTime float32) {
	held := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if w.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	if held(glfw.KeyA, glfw.KeyLeft) {
		s.orbit.Move(pose.YawLeft, deltaTime)
	}
	if held(glfw.KeyD, glfw.KeyRight) {
		s.orbit.Move(pose.YawRight, deltaTime)
	}
	if held(glfw.KeyW, glfw.KeyUp) {
		s.orbit.Move(pose.PitchUp, deltaTime)
	}
	if held(glfw.KeyS, glfw.KeyDown) {
		s.orbit.Move(pose.PitchDown, deltaTime)
	}
}
