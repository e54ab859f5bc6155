package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/demmerichs/trading-strategies/internal/analysis"
	"github.com/demmerichs/trading-strategies/internal/config"
	"github.com/demmerichs/trading-strategies/internal/market"
	"github.com/demmerichs/trading-strategies/internal/sim"

	"github.com/dustin/go-humanize"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/sim.yaml --out results/ledger.csv")
	fmt.Println("  cli compare --config examples/sim.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints a yearly summary per strategy plus pairwise win/loss tallies")
	fmt.Println("  - compare runs the full scenario and prints only the final ranking")
	fmt.Println("  - without --config, the canonical 1000-lane 20-year scenario is used")
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (default: built-in scenario)")
	outPath := fs.String("out", "", "Optional ledger CSV path (e.g. results/ledger.csv)")
	years := fs.Int("years", 0, "Optional: override number of simulated years (0=config)")
	seed := fs.Int64("seed", 0, "Optional: override the random seed (0=config)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *years > 0 {
		cfg.Years = *years
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	runner, err := cfg.BuildRunner()
	if err != nil {
		panic(err)
	}

	sched, err := market.NewPeriodicSchedule(cfg.Schedule.CashPerYear, cfg.Schedule.PayoutsPerYear, cfg.TicksPerYear)
	if err != nil {
		panic(err)
	}
	fmt.Print(sched.Describe())

	ledger := make([]sim.YearRow, 0, cfg.Years)
	for y := 0; y < cfg.Years; y++ {
		row := runner.RunYear()
		ledger = append(ledger, row)
		printYear(row)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteLedgerCSV(*outPath, ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d years to %s\n", len(ledger), *outPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (default: built-in scenario)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	runner, err := cfg.BuildRunner()
	if err != nil {
		panic(err)
	}

	ledger := runner.Run(cfg.Years)
	result := runner.Summarize(ledger)

	fmt.Printf("after %d years, %d lanes:\n\n", cfg.Years, cfg.Lanes)
	fmt.Println("ranking by mean total value:")
	for i, r := range result.Rankings {
		fmt.Printf("  %d. %s\t%s\n", i+1, r.Strategy, humanize.Commaf(r.MeanTotalValue))
	}

	fmt.Println("\npairwise win/loss across lanes:")
	for _, w := range result.Pairwise {
		printWinLoss(w)
	}

	fmt.Println("\ntotal value distribution across lanes:")
	for _, d := range result.Distributions {
		fmt.Printf("  %s\tp05=%s p50=%s p95=%s\n",
			d.Name, humanize.Commaf(d.P05), humanize.Commaf(d.P50), humanize.Commaf(d.P95))
	}
}

func printYear(row sim.YearRow) {
	fmt.Printf("\nyear %d\tmarket value: %.4f\n", row.Year, row.MeanMarketValue)
	for _, a := range row.Agents {
		fmt.Printf("%s\tcash=%s depot=%s total_value=%s\n",
			a.Strategy,
			humanize.Commaf(a.Portfolio.Cash),
			humanize.Commaf(a.Portfolio.Depot),
			humanize.Commaf(a.Portfolio.TotalValue))
	}
	for _, w := range row.Pairwise {
		printWinLoss(w)
	}
}

func printWinLoss(w analysis.WinLoss) {
	fmt.Printf("%s vs %s : %d - %d or relative %.2f-%.2f\n",
		w.A, w.B, w.AWins, w.BWins, w.ARate, w.BRate)
}
