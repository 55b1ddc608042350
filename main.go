package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cellab/golife/model"
	"github.com/cellab/golife/sim"
	"github.com/cellab/golife/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to a JSON config file")
		width      = flag.Int("width", 0, "grid width in cells (0 = fit the terminal)")
		height     = flag.Int("height", 0, "grid height in cells (0 = fit the terminal)")
		coverage   = flag.Float64("coverage", -1, "initial live coverage in percent (overrides config)")
		delay      = flag.Duration("delay", 0, "delay between generations (overrides config)")
		seed       = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
		maxGens    = flag.Int("max-gens", -1, "stop after this many generations, 0 runs unbounded")
		debug      = flag.Bool("debug", false, "log generation details to stderr")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
	}
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *coverage >= 0 {
		config.Coverage = *coverage / 100
	}
	if *delay > 0 {
		config.FrameRate = *delay
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *maxGens >= 0 {
		config.MaxGenerations = *maxGens
	}
	config.Debug = config.Debug || *debug
	fitToTerminal(&config)

	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "golife:", err)
		os.Exit(1)
	}

	displayGameInfo(config, grid)
	renderer.Display(grid.Snapshot())
	fmt.Print("Press RETURN to start simulation")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if config.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	simulator := sim.NewSimulator(logger)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)
	result, err := simulator.Run(grid, func(snap model.Snapshot) bool {
		generation++
		livingCells := grid.CountLivingCells()
		stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		renderer.Clear()
		displayGameStatus(generation, livingCells, config, stats)
		renderer.Display(snap)

		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			return false
		default:
		}
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return false
		}

		// Wait before next frame
		time.Sleep(config.FrameRate)
		return true
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "golife:", err)
		os.Exit(1)
	}

	if result == sim.ResultStable {
		fmt.Println("\nSimulation complete: no more movement possible")
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		generation, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
}
