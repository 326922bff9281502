package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/seed"
	"github.com/sheikhrachel/go-life/utils"
)

// periodicRefresh is how many generations a run lasts before a forced restart
const periodicRefresh = 200

// game bundles everything the main loop mutates
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	rng      *rand.Rand
	seed     *seed.Seed
	runID    string
}

// newRNG seeds from the config, falling back to the clock
func newRNG(seedValue uint64) *rand.Rand {
	if seedValue == 0 {
		seedValue = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seedValue))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	g := &game{
		config:   config,
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		rng:      newRNG(config.RandomSeed),
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
	}

	if config.SeedFile != "" {
		s, err := seed.Load(config.SeedFile)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to load seed")
		}
		g.seed = s
	}

	grid, err := g.newGrid()
	if err != nil {
		return nil, err
	}
	g.grid = grid
	return g, nil
}

// newGrid builds a fresh grid for a run, from the seed file when one is
// configured and from random patterns otherwise
func (g *game) newGrid() (*model.Grid, error) {
	var grid *model.Grid
	if g.pool != nil {
		grid = g.pool.Get(g.config.Width, g.config.Height)
	} else {
		grid = model.NewGrid(g.config.Width, g.config.Height)
	}

	if g.seed != nil {
		if err := g.seed.Apply(grid); err != nil {
			model.GridToPool(grid, g.pool)
			return nil, errors.Wrap(err, "[newGrid] failed to apply seed")
		}
	} else {
		grid.ResetWithInterestingPatterns(g.rng, g.config.RandomDensity)
	}

	g.runID = uuid.New().String()
	log.Printf("[Game] run %s started with %d living cells", g.runID, grid.CountLivingCells())
	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	source := "random patterns"
	if g.seed != nil {
		source = fmt.Sprintf("seed %q", g.seed.Name)
	}
	fmt.Fprintf(g.renderer.Out, "Features: Memory Pool: %v | Start: %s\n", g.config.UseMemoryPool, source)
	fmt.Fprintf(g.renderer.Out, "Grid: %dx%d | Initial living cells: %d\n",
		g.grid.GetWidth(), g.grid.GetHeight(), g.grid.CountLivingCells())
	fmt.Fprintln(g.renderer.Out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.renderer.Out)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := 0.0
	if grid.GetArea() > 0 {
		density = float64(livingCells) / float64(grid.GetArea()) * 100
	}

	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	// Compare against earlier states before recording this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	snap := stats.Snapshot()

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		snap.GenerationsPerSecond, snap.AveragePopulation, snap.Runtime.Seconds())

	if generation > lastRestartGen {
		fmt.Fprintf(out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, sinceRestart int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if sinceRestart > 0 && sinceRestart%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame swaps in a fresh grid, returning the old one to the pool
func restartGame(g *game, reason string) error {
	log.Printf("[Game] run %s restarting due to %s", g.runID, reason)

	grid, err := g.newGrid()
	if err != nil {
		return err
	}
	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.stats.RecordRestart()
	return nil
}
