// Package parallel spreads per-row render work across goroutines.
//
// Escape-time rendering parallelizes naturally by raster row: every
// row touches a disjoint slice of the target buffer, so workers need
// no locks, only a completion barrier.
package parallel

import (
	"runtime"
	"sync"
)

// Rows calls fn(y) once for every y in [0, height), distributing rows
// across workers goroutines and returning once all rows are done.
// If workers is 0 or negative, GOMAXPROCS is used.
//
// fn must be safe to call concurrently for distinct rows. Rows gives
// no ordering guarantee between rows.
func Rows(height, workers int, fn func(y int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}

	rows := make(chan int)
	go func() {
		for y := 0; y < height; y++ {
			rows <- y
		}
		close(rows)
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				fn(y)
			}
		}()
	}
	wg.Wait()
}
