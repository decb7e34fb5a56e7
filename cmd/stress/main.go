package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type stressConfig struct {
	name         string // friendly name for the scenario, should be unique
	writes       int64  // mutations issued against the graph
	expectedRuns int64  // observer runs the scheduler should settle on
	run          func(cfg *stressConfig) int64
}

func main() {
	log.Print("Starting proxyparty stress run, please wait...")
	defer log.Print("Finished proxyparty stress run")

	cfgs := []*stressConfig{
		{
			name:         "batched collapse",
			writes:       1_000_000,
			expectedRuns: 1_001, // one run per flush plus the registration run
			run:          stressBatchedCollapse,
		},
		{
			name:         "wide record fanout",
			writes:       1_000_000,
			expectedRuns: 1_001_000, // every write lands on exactly one of 1000 effects
			run:          stressWideFanout,
		},
		{
			name:         "deep watch churn",
			writes:       100_000,
			expectedRuns: 100_000, // one callback per flushed leaf write
			run:          stressDeepWatch,
		},
		{
			name:         "list shuffle",
			writes:       100_000,
			expectedRuns: 150_002, // head sees unshifts, tail sees both ends of each shuffle
			run:          stressListShuffle,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "writes", "runs", "expected", "runs/ms", "time", "ok",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' scenario", cfg.name)
		start := time.Now()
		runs := cfg.run(cfg)
		duration := time.Since(start)

		rate := float64(runs) / (float64(duration) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			humanize.Comma(cfg.writes),
			humanize.Comma(runs),
			humanize.Comma(cfg.expectedRuns),
			humanize.Comma(int64(rate)),
			fmt.Sprint(duration),
			fmt.Sprint(runs == cfg.expectedRuns),
		})
	}

	table.Render()
}

func newRuntime() *reactive.Runtime {
	return reactive.New(reactive.WithViolationHandler(func(err error) {
		log.Panic(err)
	}))
}

// stressBatchedCollapse hammers one field inside large batches and counts
// how many times the single subscribed effect actually runs.
func stressBatchedCollapse(cfg *stressConfig) int64 {
	rx := newRuntime()
	src := reactive.MustWrap(rx, map[string]any{"value": 0})

	var runs int64
	reactive.Register(rx, func() any {
		runs++
		src.Get("value")
		return nil
	})

	const flushes = 1_000
	perFlush := cfg.writes / flushes
	var n int
	for i := 0; i < flushes; i++ {
		rx.Batch(func() {
			for j := int64(0); j < perFlush; j++ {
				n++
				src.Set("value", n)
			}
		})
	}
	return runs
}

// stressWideFanout gives every field of a wide record its own effect and
// checks that a write wakes only the owning effect.
func stressWideFanout(cfg *stressConfig) int64 {
	const width = 1_000

	rx := newRuntime()
	fields := make(map[string]any, width)
	names := make([]string, width)
	for i := 0; i < width; i++ {
		names[i] = fmt.Sprintf("f%d", i)
		fields[names[i]] = 0
	}
	src := reactive.MustWrap(rx, fields)

	var runs int64
	for i := 0; i < width; i++ {
		name := names[i]
		reactive.Register(rx, func() any {
			runs++
			src.Get(name)
			return nil
		})
	}

	perField := cfg.writes / width
	for i := int64(0); i < perField; i++ {
		for _, name := range names {
			src.Set(name, int(i)+1)
		}
	}
	return runs
}

// stressDeepWatch observes a nested record through a deep watcher with
// deferred flushing and churns its leaf.
func stressDeepWatch(cfg *stressConfig) int64 {
	rx := newRuntime()
	src := reactive.MustWrap(rx, map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{"leaf": 0},
		},
	})
	leaf := src.Get("outer").(*reactive.Handle).
		Get("inner").(*reactive.Handle)

	var runs int64
	stop, err := reactive.Observe(rx, src, func(newV, oldV any, _ reactive.OnInvalidate) {
		runs++
	}, reactive.WithFlush(reactive.FlushPost))
	if err != nil {
		log.Panic(err)
	}
	defer stop()

	for i := int64(0); i < cfg.writes; i++ {
		leaf.Set("leaf", int(i)+1)
		rx.Flush()
	}
	return runs
}

// stressListShuffle rotates a list through Unshift/Pop pairs while two
// effects watch its ends.
func stressListShuffle(cfg *stressConfig) int64 {
	const size = 100

	rx := newRuntime()
	seed := make([]any, size)
	for i := range seed {
		seed[i] = i
	}
	lst := reactive.MustWrap(rx, seed)

	var runs int64
	reactive.Register(rx, func() any {
		runs++
		lst.At(0)
		return nil
	})
	reactive.Register(rx, func() any {
		runs++
		lst.At(lst.Len() - 1)
		return nil
	})

	shuffles := cfg.writes / 2
	for i := int64(0); i < shuffles; i++ {
		lst.Unshift(int(i) + size)
		lst.Pop()
	}
	return runs
}
