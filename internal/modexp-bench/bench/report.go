package bench

import (
	"time"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

// Report summarises a completed run
type Report struct {
	Engine    string
	Bits      int
	Rounds    int
	Durations []time.Duration
	Total     time.Duration
	Mean      time.Duration
	Min       time.Duration
	Max       time.Duration
}

func newReport(engine string, bits, rounds int) *Report {
	return &Report{
		Engine:    engine,
		Bits:      bits,
		Durations: make([]time.Duration, 0, rounds),
	}
}

func (r *Report) add(d time.Duration) {
	r.Durations = append(r.Durations, d)
	r.Rounds = len(r.Durations)
	r.Total += d
}

// finish fills in the aggregate fields. An empty report keeps them at zero.
func (r *Report) finish() {
	r.Mean = utils.MeanDuration(r.Durations)
	r.Min = utils.MinDuration(r.Durations)
	r.Max = utils.MaxDuration(r.Durations)
}
