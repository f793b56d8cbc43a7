package reader

import (
	"context"
	"productreader/pkg/logger"
	"productreader/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Presenter is the only caller of the Sink. It shows the result of the most
// recently started run and drops any older result that arrives late.
type Presenter struct {
	sink      Sink
	sequencer *Sequencer
	metrics   *metrics.Pipeline
	recorders []Recorder
	// lastShown is only touched by the goroutine running Serve.
	lastShown uint64
}

// NewPresenter creates a Presenter. sequencer must be the one given to the
// Reader producing the results. Every received result is handed to the
// recorders after the sink.
func NewPresenter(sink Sink, sequencer *Sequencer, pipeline *metrics.Pipeline, recorders ...Recorder) *Presenter {
	if pipeline == nil {
		pipeline = metrics.NewPipeline(prometheus.NewRegistry())
	}

	return &Presenter{sink: sink, sequencer: sequencer, metrics: pipeline, recorders: recorders}
}

// Serve presents results until the channel is closed or ctx is done.
func (p *Presenter) Serve(ctx context.Context, results <-chan Result) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return nil
			}
			p.Present(ctx, res)
		}
	}
}

// Present shows res on the sink unless a newer run has started since res
// was produced, then records it. It reports whether res was shown.
func (p *Presenter) Present(ctx context.Context, res Result) bool {
	ctx = logger.WithFields(ctx, zap.Uint64("runSeq", res.Seq), zap.Stringer("scanID", res.ScanID))

	shown := p.show(ctx, res)
	for _, r := range p.recorders {
		if err := r.Record(ctx, res, shown); err != nil {
			logger.Error(ctx, "could not record scan result", zap.Error(err))
		}
	}

	return shown
}

func (p *Presenter) show(ctx context.Context, res Result) bool {
	if latest := p.sequencer.Latest(); res.Seq != latest || res.Seq <= p.lastShown {
		logger.Debug(ctx, "discarding stale scan result", zap.Uint64("latestSeq", latest))
		p.metrics.StaleDiscarded.Inc()

		return false
	}
	p.lastShown = res.Seq

	var err error
	if res.Err != nil || res.Product == nil {
		err = p.sink.ShowStatus(ctx, StatusMessage(res.Err))
	} else {
		err = p.sink.ShowProduct(ctx, *res.Product)
	}
	if err != nil {
		logger.Error(ctx, "could not present scan result", zap.Error(err))
	}

	return true
}
