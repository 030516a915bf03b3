package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/save"
	"github.com/milk9111/worldtree/sim"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.design/x/clipboard"
)

func main() {
	region := flag.Int("region", 0, "start region id (overrides game.yaml and the saved game)")
	roomName := flag.String("room", "", "start room name, used with -region")
	col := flag.Int("col", 1, "start column, used with -room")
	row := flag.Int("row", 1, "start row, used with -room")
	dataDir := flag.String("data", "", "content directory with region*.json, transitions.json and prefabs/ (embedded data when empty)")
	watch := flag.Bool("watch", false, "reload content when files under -data or prefabs/ change")
	strict := flag.Bool("strict", false, "treat gaps in the transition table as errors")
	debug := flag.Bool("debug", false, "enable debug overlay and location copy (F2)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "log format: console or json")
	saveGame := flag.Bool("save", true, "load and store progress in the user data directory")
	flag.Parse()

	log, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *dataDir != "" {
		prefabs.Dir = filepath.Join(*dataDir, "prefabs")
	}

	content, err := sim.LoadContent(*dataDir, *strict, log)
	if err != nil {
		log.Fatal("invalid content", zap.Error(err))
	}

	opts := Options{DataDir: *dataDir, Strict: *strict, Debug: *debug}
	if *roomName != "" {
		start := prefabs.StartSpec{Region: *region, Room: *roomName, Col: *col, Row: *row}
		if start.Region == 0 {
			start.Region = content.Game.Start.Region
		}
		opts.Start = &start
	}

	if *saveGame {
		store, err := save.Open(content.Game.Name)
		if err != nil {
			log.Warn("saving disabled", zap.Error(err))
		} else {
			opts.Store = store
		}
	}

	if *watch {
		dirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}
		if *dataDir != "" {
			dirs = append(dirs, *dataDir)
		}
		w, err := levels.NewWatcher(existing(dirs)...)
		if err != nil {
			log.Warn("hot reload disabled", zap.Error(err))
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}

	if *debug {
		if err := clipboard.Init(); err != nil {
			log.Warn("clipboard unavailable", zap.Error(err))
		} else {
			opts.Clipboard = true
		}
	}

	game, err := NewGame(log, content, opts)
	if err != nil {
		log.Fatal("start failed", zap.Error(err))
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(content.Game.Screen.Width, content.Game.Screen.Height)
	ebiten.SetWindowTitle(content.Game.Name)
	ebiten.SetTPS(content.Game.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
	if opts.Store != nil {
		game.save()
	}
}

func newLogger(levelName, format string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncoderConfig.ConsoleSeparator = "  "
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}

func existing(dirs []string) []string {
	var out []string
	for _, d := range dirs {
		if st, err := os.Stat(d); err == nil && st.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
