package balance

import (
	"math"
	"sort"
	"sync"

	"forest-merge/internal/board"
)

// Summary aggregates one metric over all sessions.
type Summary struct {
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median int     `json:"median"`
}

// Report collects the results of a batch.
type Report struct {
	Results []Result `json:"results,omitempty"`
	Coins   Summary  `json:"coins"`
	Points  Summary  `json:"points"`
	Merges  Summary  `json:"merges"`
	Level   Summary  `json:"level"`
	Top     Summary  `json:"top_animal"`
	Stuck   int      `json:"stuck"`
}

// Run plays opts.Sessions sessions in parallel. Session i uses seed
// cfg.Seed+i, so a batch is reproducible regardless of worker count.
func Run(cfg board.Config, opts Options) Report {
	if opts.Sessions <= 0 {
		return Report{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				c := cfg
				c.Seed = cfg.Seed + int64(n)
				results <- Play(c, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for n := 0; n < opts.Sessions; n++ {
			jobs <- n
		}
		close(jobs)
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return summarise(all)
}

func summarise(all []Result) Report {
	rep := Report{Results: all}
	pick := func(f func(Result) int) Summary {
		vals := make([]int, len(all))
		for i, r := range all {
			vals[i] = f(r)
		}
		return summary(vals)
	}
	rep.Coins = pick(func(r Result) int { return r.Coins })
	rep.Points = pick(func(r Result) int { return r.Points })
	rep.Merges = pick(func(r Result) int { return r.Merges })
	rep.Level = pick(func(r Result) int { return r.Level })
	rep.Top = pick(func(r Result) int { return r.TopAnimal })
	for _, r := range all {
		if r.Stuck {
			rep.Stuck++
		}
	}
	return rep
}

func summary(vals []int) Summary {
	if len(vals) == 0 {
		return Summary{}
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	sum := 0
	for _, v := range sorted {
		sum += v
	}
	mean := float64(sum) / float64(len(sorted))
	return Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   math.Round(mean*100) / 100,
		Median: sorted[len(sorted)/2],
	}
}
