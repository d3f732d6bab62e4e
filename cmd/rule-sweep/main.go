// Command rule-sweep runs one random soup under many life rules in
// parallel and ranks the rules by how much of the soup survives.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"tilelife/internal/sims/life"
	"tilelife/internal/telemetry"
)

const defaultRules = "B3/S23,B36/S23,B2/S,B2/S34,B2/S3,B24/S35,B3/S12,B34/S34,B35/S234,B2/S23"

func main() {
	base := life.DefaultConfig()
	ruleList := flag.String("rules", defaultRules, "comma separated rules to sweep")
	flag.StringVar(&base.Tile, "tile", "hex", "tile kind: hex or quad")
	flag.StringVar(&base.Layout, "layout", base.Layout, "hex layout")
	flag.Int64Var(&base.Seed, "seed", base.Seed, "soup seed shared by every rule")
	flag.Float64Var(&base.Density, "density", base.Density, "initial live fraction")
	flag.IntVar(&base.Radius, "radius", base.Radius, "soup half-width in tiles")
	steps := flag.Int("steps", 200, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("csv", "", "write one summary row per rule to this CSV file")
	flag.Parse()

	rules := splitRules(*ruleList)
	fmt.Printf("Sweeping %d rules on %s tiles (%d workers, %d steps)\n", len(rules), base.Tile, *workers, *steps)

	start := time.Now()
	results, err := sweep(context.Background(), base, rules, *steps, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rule-sweep: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 rules (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) %-12s final=%d peak=%d initial=%d births=%d deaths=%d extinct=%s\n",
			i+1, res.Rule, res.FinalLive, res.PeakLive, res.InitialLive, res.Births, res.Deaths, extinctLabel(res.ExtinctAt))
	}

	if *out != "" {
		w, err := telemetry.NewCSVWriter[telemetry.SweepRecord](*out)
		if err == nil {
			err = w.Write(results...)
		}
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "rule-sweep: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *out)
	}
}

func splitRules(list string) []string {
	var out []string
	for _, r := range strings.Split(list, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func extinctLabel(gen int) string {
	if gen < 0 {
		return "never"
	}
	return fmt.Sprintf("gen %d", gen)
}
