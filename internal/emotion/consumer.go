// Package emotion defines the boundary contract between the biosignal
// generator and downstream emotion-inference consumers. The inference
// implementation itself lives outside this repo; syndata only needs to feed
// rendered data points into it in timestamp order.
package emotion

import (
	"time"

	"github.com/synheart/syndata/internal/biosignal"
)

// Result is one completed inference window emitted by a consumer.
type Result struct {
	Timestamp     time.Time          `json:"timestamp"`
	Emotion       string             `json:"emotion"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// Consumer accepts biosignal data points one at a time and produces
// inference results as its internal windows complete.
type Consumer interface {
	// Push accepts a single data point. Points must arrive in
	// timestamp order.
	Push(hr float64, rrIntervalsMS []float64, ts time.Time) error

	// ConsumeReady drains any inference results completed since the
	// last call. It may return nothing.
	ConsumeReady() []Result
}

// Feed pushes a rendered stream point-by-point into a consumer, draining
// ready results after each push. It stops on the first push error,
// returning the results collected so far.
func Feed(c Consumer, points []biosignal.DataPoint) ([]Result, error) {
	var results []Result
	for _, p := range points {
		if err := c.Push(p.HR, p.RRIntervalsMS, p.Timestamp); err != nil {
			return results, err
		}
		results = append(results, c.ConsumeReady()...)
	}
	return results, nil
}

// Recorder is a Consumer that buffers every pushed point and never emits
// results. It stands in for a real inference engine in tests and demos.
type Recorder struct {
	Pushed []biosignal.DataPoint
}

// Push records the data point.
func (r *Recorder) Push(hr float64, rrIntervalsMS []float64, ts time.Time) error {
	r.Pushed = append(r.Pushed, biosignal.DataPoint{
		Timestamp:     ts,
		HR:            hr,
		RRIntervalsMS: rrIntervalsMS,
	})
	return nil
}

// ConsumeReady always returns nil; a Recorder performs no inference.
func (r *Recorder) ConsumeReady() []Result { return nil }
