package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/sweep"
)

func main() {
	width := flag.Int("w", 80, "grid width in cells")
	height := flag.Int("h", 60, "grid height in cells")
	steps := flag.Int("steps", 2000, "generation cap per scenario")
	seeds := flag.Int("seeds", 8, "seeds per density")
	densities := flag.String("densities", "10,20,30,40,50,60,70,80,90", "comma-separated fill percentages")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	ds, err := parseInts(*densities)
	if err != nil {
		log.Fatalf("densities: %v", err)
	}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}
	scenarios := sweep.Grid(*width, *height, *steps, ds, seedList)

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(scenarios), *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.RunAll(ctx, scenarios, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n%8s %8s %10s %10s %10s %8s\n", "density", "settled", "avgSettle", "avgFinal", "avgPeak", "periods")
	for _, d := range ds {
		var settled, settleSum, finalSum, peakSum, n int
		periods := map[int]int{}
		for _, res := range results {
			if res.Scenario.Density != d {
				continue
			}
			n++
			finalSum += res.FinalPopulation
			peakSum += res.PeakPopulation
			if res.Settled() {
				settled++
				settleSum += res.SettledAt
				periods[res.Period]++
			}
		}
		if n == 0 {
			continue
		}
		avgSettle := "-"
		if settled > 0 {
			avgSettle = strconv.Itoa(settleSum / settled)
		}
		fmt.Printf("%8d %5d/%-2d %10s %10d %10d %8s\n",
			d, settled, n, avgSettle, finalSum/n, peakSum/n, formatPeriods(periods))
	}
	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatPeriods(periods map[int]int) string {
	if len(periods) == 0 {
		return "-"
	}
	var parts []string
	for p := 1; len(parts) < len(periods); p++ {
		if c, ok := periods[p]; ok {
			parts = append(parts, fmt.Sprintf("p%d×%d", p, c))
		}
	}
	return strings.Join(parts, ",")
}
