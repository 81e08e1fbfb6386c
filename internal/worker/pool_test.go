package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathisdelsart/chess-engine/internal/play"
)

// noopPlayFunc returns a play function that reports the job as played.
func noopPlayFunc() PlayFunc {
	return func(job Job) GameResult {
		return GameResult{Index: job.Index}
	}
}

// countingPlayFunc returns a play function that increments a counter.
func countingPlayFunc(counter *int32) PlayFunc {
	return func(job Job) GameResult {
		atomic.AddInt32(counter, 1)
		return GameResult{Index: job.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolPlaysEverySubmittedJob(t *testing.T) {
	var played int32
	pool := NewPool(countingPlayFunc(&played), WithWorkers(4))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i, Seed: int64(i), MaxPlies: 100})
	}

	go pool.Close()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&played); got != numJobs {
		t.Errorf("played = %d; want %d", got, numJobs)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var played int32

	slowPlayFunc := func(job Job) GameResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&played, 1)
		return GameResult{Index: job.Index}
	}

	pool := NewPool(slowPlayFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&played); got >= numJobs {
		t.Logf("early stop may not have prevented all playing: %d played", got)
	}
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
}

func TestPoolTrySubmit(t *testing.T) {
	slowPlayFunc := func(job Job) GameResult {
		time.Sleep(100 * time.Millisecond)
		return GameResult{}
	}

	// Small buffer to exercise the non-blocking path
	pool := NewPool(slowPlayFunc, WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(Job{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// Third might fail if the buffer is full (timing-dependent, just verify no panic)
	pool.TrySubmit(Job{Index: 2})

	pool.Stop()
	if pool.TrySubmit(Job{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	pool.Close()
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"combined", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopPlayFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestPoolResultsCoverAllIndices(t *testing.T) {
	variableDelayFunc := func(job Job) GameResult {
		if job.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return GameResult{Index: job.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}
	for i := 0; i < numJobs; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingPlayFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numJobs = 100
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("played = %d; want %d", got, numJobs)
	}
}

func TestSelfPlayFuncFinishesGames(t *testing.T) {
	pool := NewPool(SelfPlayFunc(zerolog.Nop()), WithWorkers(2))
	pool.Start()

	const numJobs = 4
	const maxPlies = 120
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i, Seed: int64(100 + i), MaxPlies: maxPlies})
	}

	go pool.Close()

	count := 0
	for res := range pool.Results() {
		count++
		if res.Plies > maxPlies {
			t.Errorf("game %d played %d plies, cap is %d", res.Index, res.Plies, maxPlies)
		}
		if res.Status == play.MatchCheckmate && !res.HasWinner {
			t.Errorf("game %d ended in checkmate without a winner", res.Index)
		}
		if res.Status == play.MatchStalemate && res.HasWinner {
			t.Errorf("game %d ended in stalemate with a winner", res.Index)
		}
	}
	if count != numJobs {
		t.Errorf("results = %d; want %d", count, numJobs)
	}
}
