package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/cellab/golife/model"
	"github.com/cellab/golife/utils"
)

// Rows reserved above the board for the status output.
const statusLines = 3

// fitToTerminal fills in zero dimensions from the attached terminal. The
// renderer prints two characters per cell, so the width is halved.
func fitToTerminal(config *utils.Config) {
	if config.Width > 0 && config.Height > 0 {
		return
	}

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}
	if config.Width <= 0 {
		config.Width = max(cols/2, 1)
	}
	if config.Height <= 0 {
		config.Height = max(rows-statusLines, 1)
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, *model.TerminalRenderer, *utils.Stats, error) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	if err = grid.PopulateRandom(config.Coverage, rng); err != nil {
		return nil, nil, nil, err
	}

	return grid, model.NewTerminalRenderer(os.Stdout), utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Dimensions: %dx%d | Coverage: %.0f%%\n",
		grid.GetWidth(), grid.GetHeight(), config.Coverage*100)
	fmt.Printf("Initial living cells: %d\n", grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, livingCells int, config utils.Config, stats *utils.Stats) {
	density := float64(livingCells) / float64(config.Width*config.Height) * 100

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%%\n",
		generation, livingCells, density)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation,
		time.Since(stats.StartTime).Seconds())
}
