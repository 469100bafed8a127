// Command lunar runs the helicopter scene headless: draws go to an
// in-memory recorder and input comes from a scripted feed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/lunar"
	"github.com/pkg/errors"
)

// Index counts of the bundled models.
var meshIndexCounts = map[string]int32{
	lunar.MeshLunarSurface:        49_152,
	lunar.MeshHelicopterBody:      6_864,
	lunar.MeshHelicopterDoor:      444,
	lunar.MeshHelicopterMainRotor: 1_128,
	lunar.MeshHelicopterTailRotor: 432,
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	duration := flag.Duration("duration", 3*time.Second, "How long to run before sending Escape")
	fps := flag.Int("fps", 60, "Frame rate")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(*configPath, *duration, *fps, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, duration time.Duration, fps int, debug bool) error {
	cfg := lunar.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = lunar.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if fps <= 0 {
		return errors.Errorf("fps must be positive, got %d", fps)
	}

	logger := lunar.NewDefaultLogger(cfg.Log.Prefix, debug || cfg.Log.Debug)
	logger.Debugf("config:\n%s", lunar.SDump(cfg))

	assets := lunar.NewAssetServer()
	for _, name := range []string{
		lunar.MeshLunarSurface,
		lunar.MeshHelicopterBody,
		lunar.MeshHelicopterDoor,
		lunar.MeshHelicopterMainRotor,
		lunar.MeshHelicopterTailRotor,
	} {
		if _, err := assets.RegisterMesh(name, meshIndexCounts[name]); err != nil {
			return err
		}
	}
	def, err := lunar.LunarSceneDef(assets, cfg.Fleet)
	if err != nil {
		return err
	}

	feed := lunar.NewInputFeed(4)
	recorder := lunar.NewCommandRecorder()

	app := lunar.NewAppBuilder().
		UseStates(lunar.StateRunning, lunar.StateExiting).
		UseModule(
			lunar.LoggingModule{Logger: logger},
			lunar.TimeModule{},
			lunar.AssetServerModule{Server: assets},
			lunar.InputModule{Source: feed.Source()},
			lunar.CameraModule{Config: cfg.Camera, Window: cfg.Window},
			lunar.RendererModule{Name: "recorder", Backend: recorder},
			lunar.SceneModule{Def: def},
		).
		Build()

	go scriptInput(feed, cfg.Window, duration)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for app.Update() {
		recorder.Reset()
		<-ticker.C
	}

	if stats, ok := lunar.Resource[lunar.RenderStats](app); ok {
		logger.Infof("rendered %d frames, %d draw calls", stats.Frames, stats.DrawCalls)
	}
	return nil
}

// scriptInput plays the part of the window thread: it orbits the camera,
// resizes the window once and then presses Escape.
func scriptInput(feed *lunar.InputFeed, window lunar.WindowConfig, duration time.Duration) {
	var s lunar.InputSnapshot
	s.WindowWidth, s.WindowHeight = window.Width, window.Height
	feed.Send(s)

	s.WindowWidth, s.WindowHeight = 0, 0
	s.Press(lunar.KeyLeft, lunar.KeyUp)
	feed.Send(s)
	time.Sleep(duration / 2)

	s.Release(lunar.KeyUp)
	s.WindowWidth, s.WindowHeight = window.Width*2, window.Height
	feed.Send(s)
	time.Sleep(duration / 2)

	s.WindowWidth, s.WindowHeight = 0, 0
	s.Press(lunar.KeyEscape)
	feed.Send(s)
}
