// selfplay plays complete games of random self-play through the rules engine
// and reports the outcome of each. Games are independent, so they run across
// a worker pool when more than one worker is requested.
package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathisdelsart/chess-engine/internal/logx"
	"github.com/mathisdelsart/chess-engine/internal/worker"
)

func main() {
	var (
		seed     = flag.Int64("seed", 0, "random seed (0 uses the current time)")
		games    = flag.Int("games", 1, "number of games to play")
		maxPlies = flag.Int("max-plies", 400, "half-move cap per game")
		workers  = flag.Int("workers", runtime.NumCPU(), "number of games played concurrently")
		quiet    = flag.Bool("quiet", false, "log only game results, not every move")
	)
	flag.Parse()

	log := logx.NewLogger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	if *quiet {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info().
		Int64("seed", *seed).
		Int("games", *games).
		Int("workers", *workers).
		Msg("starting self-play")

	pool := worker.NewPool(worker.SelfPlayFunc(log), worker.WithWorkers(*workers))
	pool.Start()

	go func() {
		for i := 0; i < *games; i++ {
			pool.Submit(worker.Job{
				Index:    i + 1,
				Seed:     *seed + int64(i),
				MaxPlies: *maxPlies,
			})
		}
		pool.Close()
	}()

	for res := range pool.Results() {
		ev := log.Info().
			Int("game", res.Index).
			Int("plies", res.Plies).
			Stringer("status", res.Status)
		if res.HasWinner {
			ev = ev.Stringer("winner", res.Winner)
		}
		ev.Msg("game finished")
	}
}
