package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Reporter receives trial durations in execution order, then the summary
type Reporter interface {
	Trial(index int, elapsed time.Duration)
	Summary(report *Report)
}

// NopReporter discards everything
type NopReporter struct{}

func (NopReporter) Trial(int, time.Duration) {}
func (NopReporter) Summary(*Report)          {}

// TextReporter writes one line of seconds per trial and an "avg:" line
type TextReporter struct {
	w   io.Writer
	err error
}

// NewTextReporter creates a TextReporter writing to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) Trial(_ int, elapsed time.Duration) {
	r.printf("%.9f\n", elapsed.Seconds())
}

func (r *TextReporter) Summary(report *Report) {
	r.printf("avg: %.9f\n", report.Mean.Seconds())
}

// Err returns the first write error, if any
func (r *TextReporter) Err() error {
	return r.err
}

func (r *TextReporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// LogReporter emits trials at debug level and the summary at info level
type LogReporter struct {
	log logrus.FieldLogger
}

// NewLogReporter creates a LogReporter on the given logger
func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Trial(index int, elapsed time.Duration) {
	r.log.WithFields(logrus.Fields{
		"trial":   index,
		"elapsed": elapsed,
	}).Debug("Trial finished")
}

func (r *LogReporter) Summary(report *Report) {
	r.log.WithFields(logrus.Fields{
		"engine": report.Engine,
		"bits":   report.Bits,
		"rounds": report.Rounds,
		"mean":   report.Mean,
		"min":    report.Min,
		"max":    report.Max,
	}).Info("Benchmark finished")
}

// MultiReporter fans out to several reporters in order
type MultiReporter []Reporter

func (m MultiReporter) Trial(index int, elapsed time.Duration) {
	for _, r := range m {
		r.Trial(index, elapsed)
	}
}

func (m MultiReporter) Summary(report *Report) {
	for _, r := range m {
		r.Summary(report)
	}
}
