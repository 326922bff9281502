package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

// runGame is the render/tick loop. It returns when ctx is done or the
// generation limit is reached.
func runGame(ctx context.Context, g *game) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		g.renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(g.grid, generation, lastFrameTime, g.stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g.renderer.Out, generation, livingCells, density, status, g.stats, lastRestartGen)
		g.renderer.Display(g.grid)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			log.Printf("[Game] reached maximum generations limit (%d)", g.config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation-lastRestartGen, g.config)
		if shouldRestart && g.config.AutoRestart {
			if err := restartGame(g, restartReason); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			g.grid.InjectRandomLife(g.rng, g.config.InjectionCount)
		}

		g.grid.Tick()
		generation++

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(g.config.FrameRate):
		}
	}
}

// reportStats logs a stats line every interval until ctx is done
func reportStats(ctx context.Context, stats *utils.Stats, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := stats.Snapshot()
			log.Printf("[Stats] gen=%d restarts=%d avg_pop=%.1f gen/sec=%.1f",
				snap.TotalGenerations, snap.Restarts, snap.AveragePopulation, snap.GenerationsPerSecond)
		}
	}
}

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON or YAML config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("[Main] %+v", err)
		}
		log.Printf("[Main] using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("[Main] %+v", err)
	}
	displayGameInfo(g)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// the reporter stops once the game loop does
		defer cancel()
		return runGame(egCtx, g)
	})
	eg.Go(func() error {
		reportStats(egCtx, g.stats, config.StatsInterval)
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Fatalf("[Main] %+v", err)
	}

	snap := g.stats.Snapshot()
	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations, %d restarts in %.1f seconds\n",
		snap.TotalGenerations, snap.Restarts, snap.Runtime.Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		snap.GenerationsPerSecond, snap.AveragePopulation)
}
