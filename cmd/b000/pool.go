package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// outcome is one file's conversion result, used both to print its line and
// to fold into the run summary.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeSkip
	outcomeRewrote
	outcomeError
)

func (o outcome) label() string {
	switch o {
	case outcomeOK:
		return "\x1b[32m[ok]\x1b[0m"
	case outcomeSkip:
		return "\x1b[36m[skip]\x1b[0m"
	case outcomeRewrote:
		return "\x1b[33m[rewrote]\x1b[0m"
	default:
		return "\x1b[31m[error]\x1b[0m"
	}
}

// counters tallies the run's outcomes with plain atomics; no worker needs
// to see another's count, only the final summary line does (§5).
type counters struct {
	ok, skip, rewrote, errored atomic.Int64
}

func (c *counters) add(o outcome) {
	switch o {
	case outcomeOK:
		c.ok.Add(1)
	case outcomeSkip:
		c.skip.Add(1)
	case outcomeRewrote:
		c.rewrote.Add(1)
	default:
		c.errored.Add(1)
	}
}

// runPool dispatches files to cores workers, each running convertOne on one
// file end-to-end; output lines are serialized through a single mutex so
// interleaved workers never tear a line (§5's "mutex guarding interleaved
// output lines").
func runPool(ctx context.Context, files []string, cores int, convertOne func(string) (outcome, string, error)) *counters {
	if cores < 1 {
		cores = 1
	}

	jobs := make(chan string, cores)
	var wg sync.WaitGroup
	var printMu sync.Mutex
	c := &counters{}

	for i := 0; i < cores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					continue
				default:
				}

				o, detail, err := convertOne(path)
				c.add(o)

				printMu.Lock()
				if err != nil {
					fmt.Printf("%s %s: %v\n", o.label(), path, err)
				} else {
					fmt.Printf("%s %s %s\n", o.label(), path, detail)
				}
				printMu.Unlock()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- f:
			}
		}
	}()

	wg.Wait()
	return c
}
