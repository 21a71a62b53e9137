package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/ldtk"
	"github.com/phanxgames/ldtk/internal/config"
	"github.com/phanxgames/ldtk/internal/logger"
	"github.com/phanxgames/ldtk/internal/scores"
)

// runGame opens the window and runs until the player quits.
func runGame(cfg *config.Config) error {
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Log

	var audioCtx *audio.Context
	if cfg.Audio.Enabled {
		audioCtx = audio.NewContext(cfg.Audio.SampleRate)
	}
	ctx := ldtk.NewContext(ldtk.Options{
		Audio:  audioCtx,
		Logger: log.Named("ldtk"),
		Debug:  cfg.Logging.Debug,
	})
	if err := loadAssets(ctx, cfg.Assets.Dir); err != nil {
		return err
	}

	store, err := openStore(cfg.Scores.Path, log)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var kernel *ldtk.Kernel
	app := NewApp(store, rand.New(rand.NewPCG(seed, seed>>1|1)), func() { kernel.Quit() })
	app.Settings = Settings{
		ViewWidth:   cfg.Viewport.Width,
		ViewHeight:  cfg.Viewport.Height,
		SoundVolume: cfg.Audio.SoundVolume,
	}
	kernel = ldtk.NewKernel(ctx, app)
	kernel.SetShowFPS(cfg.Window.ShowFPS)
	if err := kernel.Start(); err != nil {
		return err
	}
	if _, ok := ctx.Fonts.Get(hudFont); !ok {
		if _, err := ctx.Fonts.AddTTF(hudFont, goregular.TTF, 16); err != nil {
			return err
		}
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Info("starting", zap.Int("width", cfg.Window.Width), zap.Int("height", cfg.Window.Height),
		zap.Uint64("seed", seed))
	if err := ebiten.RunGame(kernel); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("skyline: %w", err)
	}
	return nil
}

// loadAssets loads the asset directory, if any. Missing images are generated
// later by the renderer.
func loadAssets(ctx *ldtk.Context, dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("skyline: asset directory: %w", err)
	}
	return ctx.Assets.Load(os.DirFS(dir), "")
}

// openStore opens the scores database. An empty path returns a nil store,
// which records nothing.
func openStore(path string, log *zap.Logger) (*scores.Store, error) {
	if path == "" {
		log.Info("scores disabled")
		return nil, nil
	}
	store, err := scores.Open(path)
	if err != nil {
		return nil, err
	}
	log.Info("scores enabled", zap.String("path", path))
	return store, nil
}

// printScores writes the best runs as a table.
func printScores(w io.Writer, path string, limit int) error {
	if path == "" {
		return scores.ErrNoStore
	}
	store, err := scores.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Best(limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Longest runs")
	fmt.Fprintln(w)
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-5s  %-8s  %s\n", "Rank", "Distance", "Shots", "Hits", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-5s  %-8s  %s\n", "----", "--------", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-5d  %-8s  %s\n",
			i+1, int(r.Distance/tileSize), r.ShotsFired, r.Hits,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
