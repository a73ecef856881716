package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"forest-merge/internal/balance"
	"forest-merge/internal/board"
	"forest-merge/internal/logging"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	opts := balance.DefaultOptions()
	sessions := flag.Int("sessions", opts.Sessions, "number of sessions to play")
	steps := flag.Int("steps", opts.Steps, "player actions per session")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel sessions")
	step := flag.Duration("step", opts.Step, "game time between actions")
	ads := flag.Bool("ads", opts.UseAds, "allow reward videos")
	reserve := flag.Int("reserve", opts.SpinReserve, "coins kept back before spinning the wheel")
	configPath := flag.String("config", "", "YAML board tuning file")
	verbose := flag.Bool("v", false, "print every session")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	level := flag.String("log-level", "warn", "debug, info, warn or error")
	var overrides kvList
	flag.Var(&overrides, "set", "board override in key=value form (repeatable)")
	flag.Parse()

	log, err := logging.New(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	cfg := board.DefaultConfig()
	if *configPath != "" {
		if cfg, err = board.LoadConfig(*configPath); err != nil {
			log.Fatal("load board config", zap.Error(err))
		}
	}
	if len(overrides) > 0 {
		cfg = board.Apply(cfg, parseOverrides(overrides, log))
	}

	opts.Sessions = *sessions
	opts.Steps = *steps
	opts.Workers = *workers
	opts.Step = *step
	opts.UseAds = *ads
	opts.SpinReserve = *reserve

	start := time.Now()
	rep := balance.Run(cfg, opts)
	if *asJSON {
		if !*verbose {
			rep.Results = nil
		}
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatal("encode report", zap.Error(err))
		}
		return
	}
	fmt.Printf("Played %d sessions x %d steps (%s each, ads=%v) in %s\n",
		len(rep.Results), opts.Steps, opts.Step, opts.UseAds, time.Since(start).Round(time.Millisecond))
	printSummary("coins", rep.Coins)
	printSummary("points", rep.Points)
	printSummary("merges", rep.Merges)
	printSummary("level", rep.Level)
	printSummary("top animal", rep.Top)
	fmt.Printf("stuck sessions: %d\n", rep.Stuck)

	if *verbose {
		fmt.Println("\nSessions:")
		for _, r := range rep.Results {
			fmt.Printf("  seed=%d merges=%d spawns=%d spins=%d ads=%d coins=%d points=%d level=%d top=%d stuck=%v\n",
				r.Seed, r.Merges, r.Spawns, r.Spins, r.Ads, r.Coins, r.Points, r.Level, r.TopAnimal, r.Stuck)
		}
	}
}

func parseOverrides(list kvList, log *zap.Logger) map[string]string {
	out := make(map[string]string, len(list))
	for _, kv := range list {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Warn("ignoring malformed override", zap.String("value", kv))
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

func printSummary(name string, s balance.Summary) {
	fmt.Printf("%-11s min=%-6d median=%-6d mean=%-9.2f max=%d\n", name, s.Min, s.Median, s.Mean, s.Max)
}
