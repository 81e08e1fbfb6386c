// Package worker provides a worker pool for running self-play games in
// parallel. Each game is independent, so games fan out across goroutines
// while results are collected on a single channel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mathisdelsart/chess-engine/internal/chess"
	"github.com/mathisdelsart/chess-engine/internal/play"
)

// Job describes one game to be played.
type Job struct {
	Index    int // Original index for tracking
	Seed     int64
	MaxPlies int
}

// GameResult is the outcome of one finished game.
type GameResult struct {
	Index     int
	Plies     int
	Status    play.Status
	Winner    chess.Colour
	HasWinner bool
}

// PlayFunc is the function signature for playing one job to completion.
type PlayFunc func(job Job) GameResult

// SelfPlayFunc returns a PlayFunc that plays each job as a random self-play
// game through the rules engine.
func SelfPlayFunc(log zerolog.Logger) PlayFunc {
	return func(job Job) GameResult {
		m, plies := play.SelfPlay(log, job.Seed, job.MaxPlies)
		res := GameResult{Index: job.Index, Plies: plies, Status: m.Status()}
		res.Winner, res.HasWinner = m.Winner()
		return res
	}
}

// Pool manages a pool of workers playing games concurrently.
type Pool struct {
	numWorkers int
	bufferSize int
	jobChan    chan Job
	resultChan chan GameResult
	playFunc   PlayFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool that plays jobs with playFunc.
// Default: 1 worker, buffer size of 10.
func NewPool(playFunc PlayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		playFunc:   playFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobChan = make(chan Job, p.bufferSize)
	p.resultChan = make(chan GameResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays jobs from the job channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobChan {
		if p.IsStopped() {
			continue // Drain channel without playing
		}
		p.resultChan <- p.playFunc(job)
	}
}

// Submit submits a job for playing.
// This may block if the job channel buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobChan <- job
}

// TrySubmit attempts to submit a job without blocking.
// Returns false if the job channel is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.jobChan <- job:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop playing new jobs.
// Jobs already in the channel will be drained but not played.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers
// are done.
func (p *Pool) Close() {
	close(p.jobChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading finished games.
func (p *Pool) Results() <-chan GameResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
