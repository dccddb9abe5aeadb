// SPDX-License-Identifier: MIT

package logistic_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/logistics/logistic"
	"github.com/stretchr/testify/assert"
)

// TestConcurrentArithmetic shares immutable operands across goroutines and
// expects every goroutine to observe identical results. Run with -race.
func TestConcurrentArithmetic(t *testing.T) {
	t.Parallel()

	x := logistic.Half[float64]().Pow(10000)
	y := logistic.FromProbability(0.2).Pow(4307)
	want := x.Add(y)

	const workers = 16
	results := make([]logistic.Logistic[float64], workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			r := x.Add(y)
			for i := 0; i < 100; i++ {
				r = r.Complement().Complement()
			}
			results[w] = r
		}(w)
	}
	wg.Wait()

	for w, r := range results {
		assert.True(t, want.Equal(r), "worker %d", w)
	}
	assert.InDelta(t, -6931.471805599453, x.Logit(), 1e-9, "operands are never mutated")
}
