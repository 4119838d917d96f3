// Command marbles runs the particle solver in the terminal or headless
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/scene"
)

var (
	sceneFlag   = flag.String("scene", "marbles", "Built-in scene name or path to a TOML scene file")
	ticksFlag   = flag.Int("ticks", 0, "Run headless for this many ticks and print the state checksum")
	soundFlag   = flag.Bool("sound", false, "Play a click on new contacts")
	statsFlag   = flag.String("stats", "", "Serve runtime charts on this address (e.g. localhost:18066)")
	logFlag     = flag.String("log", "", "Write logs to this file")
	gravityFlag = flag.String("gravity", "", "Override scene gravity as x,y")
	scaleFlag   = flag.Float64("scale", 0, "World units per terminal column (0 keeps the default)")
	saveFlag    = flag.String("save", "", "Write the resolved scene to this TOML file and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	log, logFile, err := setupLogging(*logFlag, *ticksFlag > 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.WithError(err).Warn("sentry disabled")
		}
	}

	if *statsFlag != "" {
		// Configuration must precede statsview.New
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(*statsFlag))
		mgr := statsview.New()
		core.Go(func() { mgr.Start() })
		defer mgr.Stop()
		log.WithField("addr", *statsFlag).Info("statsview serving")
	}

	sc, err := resolveScene(*sceneFlag, *gravityFlag)
	if err != nil {
		log.WithError(err).Error("scene")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if *saveFlag != "" {
		if err := scene.Save(*saveFlag, sc); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if *ticksFlag > 0 {
		sum, err := runHeadless(sc, *ticksFlag, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%016x\n", sum)
		return
	}

	if err := runInteractive(sc, log, interactiveOptions{sound: *soundFlag, scale: *scaleFlag}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// resolveScene loads a built-in or file scene and applies the gravity override
func resolveScene(name, gravity string) (*scene.Scene, error) {
	sc, err := scene.Builtin(name)
	if errors.Is(err, scene.ErrUnknownScene) {
		if _, statErr := os.Stat(name); statErr != nil {
			return nil, fmt.Errorf("%w (built-ins: %v)", err, scene.Names())
		}
		sc, err = scene.Load(name)
	}
	if err != nil {
		return nil, err
	}

	if gravity != "" {
		g, err := parseVec2(gravity)
		if err != nil {
			return nil, fmt.Errorf("gravity flag: %w", err)
		}
		sc.Gravity = g
	}
	return sc, nil
}
