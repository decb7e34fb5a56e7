package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/proxyparty/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
	benchmarkListFanout(true)
	benchmarkBatchedWrites(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

// benchmarkPropagate drives a w*h grid of derived chains off a single
// record field and measures how long each write takes to settle.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	digest := xxhash.New()

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rx := reactive.New(reactive.WithViolationHandler(func(err error) {
				log.Panic(err)
			}))
			src := reactive.MustWrap(rx, map[string]any{"value": 1})
			for i := 0; i < w; i++ {
				read := func() int {
					return src.Get("value").(int) + 1
				}
				for j := 0; j < h; j++ {
					prev := read
					d := reactive.Derive(rx, func() int {
						return prev() + 1
					})
					read = d.Value
				}

				last := read
				reactive.Register(rx, func() any {
					fmt.Fprintf(digest, "%d", last())
					return nil
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set("value", src.Get("value").(int)+1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	log.Printf("propagate digest: %x", digest.Sum64())

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkListFanout observes every slot of a list with its own effect
// and measures structural writes at the head of the list.
func benchmarkListFanout(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("List Fanout")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	digest := xxhash.New()

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rx := reactive.New(reactive.WithViolationHandler(func(err error) {
			log.Panic(err)
		}))
		seed := make([]any, w)
		for i := range seed {
			seed[i] = i
		}
		lst := reactive.MustWrap(rx, seed)
		for i := 0; i < w; i++ {
			i := i
			reactive.Register(rx, func() any {
				if v, ok := lst.At(i).(int); ok {
					fmt.Fprintf(digest, "%d", v)
				}
				return nil
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			lst.Unshift(i)
			lst.Pop()
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fanout: %d", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	log.Printf("fanout digest: %x", digest.Sum64())

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkBatchedWrites measures w writes inside one batch collapsing
// into a single run of each subscribed effect.
func benchmarkBatchedWrites(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Batched Writes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	digest := xxhash.New()

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rx := reactive.New(reactive.WithViolationHandler(func(err error) {
			log.Panic(err)
		}))
		src := reactive.MustWrap(rx, map[string]any{"value": 1})
		reactive.Register(rx, func() any {
			if n, ok := src.Get("value").(int); ok {
				fmt.Fprintf(digest, "%d", n)
			}
			return nil
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			rx.Batch(func() {
				for j := 0; j < w; j++ {
					src.Set("value", i*w+j)
				}
			})
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("batched: %d writes", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	log.Printf("batched digest: %x", digest.Sum64())

	if shouldRender {
		tbl.Render()
	}
}
