// Package sweep runs batches of independent Life grids and records how each
// random start settles.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"lifegrid/internal/sims/life"
)

// Scenario is one seeded run.
type Scenario struct {
	Width, Height int
	Density       int
	Seed          int64

	// Steps caps the number of generations simulated.
	Steps int
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d density=%d seed=%d", s.Width, s.Height, s.Density, s.Seed)
}

// Result describes where a scenario ended up.
type Result struct {
	Scenario Scenario

	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int

	// SettledAt is the first generation whose board had been seen before, or
	// -1 when the run never repeated within Steps.
	SettledAt int
	// Period is the cycle length once settled: 1 for still lifes.
	Period int
}

// Settled reports whether the run entered a cycle.
func (r Result) Settled() bool { return r.SettledAt >= 0 }

// Run simulates a single scenario.
func Run(sc Scenario) (Result, error) {
	l, err := life.NewWithConfig(life.Config{Width: sc.Width, Height: sc.Height, Seed: sc.Seed, Density: sc.Density})
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", sc, err)
	}
	defer l.Close()
	l.Reset(sc.Seed)

	res := Result{Scenario: sc, SettledAt: -1, InitialPopulation: l.Population()}
	res.PeakPopulation = res.InitialPopulation
	seen := map[uint64]int{l.Fingerprint(): 0}
	for step := 1; step <= sc.Steps; step++ {
		l.Step()
		pop := l.Population()
		res.PeakPopulation = max(res.PeakPopulation, pop)
		fp := l.Fingerprint()
		if first, ok := seen[fp]; ok {
			res.SettledAt = first
			res.Period = step - first
			break
		}
		seen[fp] = step
	}
	res.FinalPopulation = l.Population()
	return res, nil
}

// RunAll fans scenarios out to workers goroutines, each owning the grids it
// runs, and returns results ordered by density then seed. It stops handing
// out work once ctx is done.
func RunAll(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := Run(sc)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range scenarios {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].Scenario, all[j].Scenario
		if a.Density != b.Density {
			return a.Density < b.Density
		}
		return a.Seed < b.Seed
	})
	return all, nil
}

// Grid builds the scenarios for every density × seed combination.
func Grid(w, h, steps int, densities []int, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(densities)*len(seeds))
	for _, d := range densities {
		for _, s := range seeds {
			out = append(out, Scenario{Width: w, Height: h, Density: d, Seed: s, Steps: steps})
		}
	}
	return out
}
