package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"deepfloor/assets"
	"deepfloor/internal/cache"
	"deepfloor/internal/config"
	"deepfloor/internal/game"
	"deepfloor/internal/gamemap"
	"deepfloor/internal/logger"
	"deepfloor/internal/script"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "deepfloor.yaml", "Path to a YAML or TOML config file")
	newWorld := flag.Bool("new", false, "Discard saved floors and start a new world")
	flag.Parse()

	if err := run(*cfgPath, *newWorld); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, newWorld bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	dataDir, err := game.DataDir()
	if err != nil {
		return fmt.Errorf("locate data dir: %w", err)
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = filepath.Join(dataDir, "saves")
	}
	// The terminal belongs to tcell; logs go to a file only.
	cfg.Logging.Console = false
	cfg.Logging.File.Enabled = true
	if !filepath.IsAbs(cfg.Logging.File.Path) {
		cfg.Logging.File.Path = filepath.Join(dataDir, cfg.Logging.File.Path)
	}
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	store, err := cache.OpenStore(cfg.Cache.Backend, cfg.Cache.Path)
	if err != nil {
		return err
	}
	floors, err := cache.New(store, log)
	if err != nil {
		store.Close()
		return err
	}
	defer floors.Close()

	resume, err := savedRun(floors, newWorld)
	if err != nil {
		return err
	}
	if resume == nil && cfg.World.Seed == 0 {
		cfg.World.Seed = time.Now().UnixNano() % 1000
	}

	opts := game.OptionsFrom(cfg)
	opts.Resume = resume
	opts.Catalog = gamemap.StandardCatalog()
	opts.Tables = assets.SpawnTables()
	opts.Cache = floors
	opts.Log = log
	if path := cfg.Generation.RoomCurveScript; path != "" {
		curve, err := script.LoadCurveFile(path)
		if err != nil {
			log.Warn("ignoring room curve script", zap.String("path", path), zap.Error(err))
		} else {
			defer curve.Close()
			opts.Curve = curve
		}
	}

	session, err := game.NewSession(opts)
	if err != nil {
		return err
	}
	if err := session.Start(); err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		log.Warn("could not record the new run", zap.Error(err))
	}
	log.Info("session started",
		zap.Bool("resumed", resume != nil),
		zap.Int64("seed", session.RunLog().WorldSeed),
		zap.String("backend", cfg.Cache.Backend),
		zap.String("cache", cfg.Cache.Path))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	game.NewViewer(screen, session).Run()
	screen.Fini()

	if err := game.SaveRunLog(dataDir, session.RunLog()); err != nil {
		log.Warn("could not write run log", zap.Error(err))
	}
	if err := session.Save(); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// savedRun returns the header of the run to continue, or nil for a new
// world. A new world starts from an empty cache so floors of different seeds
// never mix.
func savedRun(floors *cache.Cache, newWorld bool) (*cache.Header, error) {
	if !newWorld {
		h, err := floors.LoadHeader()
		switch {
		case err == nil:
			return &h, nil
		case !errors.Is(err, cache.ErrNotFound):
			return nil, fmt.Errorf("%w (start over with -new)", err)
		}
	}
	if err := floors.Clear(); err != nil {
		return nil, err
	}
	return nil, nil
}
