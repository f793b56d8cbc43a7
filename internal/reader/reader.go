package reader

import (
	"context"
	"fmt"
	"productreader/internal/config"
	"productreader/internal/decoder"
	"productreader/pkg/domain"
	"productreader/pkg/logger"
	"productreader/pkg/metrics"
	"productreader/pkg/mifare"
	"productreader/pkg/productquery"
	"productreader/pkg/serrors"
	"productreader/pkg/tagaddress"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "productreader/internal/reader"

// OutcomePresented labels runs that produced a product.
const OutcomePresented = "presented"

// Offsets, within the authenticated sector, of the blocks holding the address.
const (
	firstAddressBlock  = 0
	secondAddressBlock = 1
)

// Options configure which sector is read and how image URLs are built.
type Options struct {
	// Authenticator holds the sector index and the keys presented to the tag.
	Authenticator mifare.Authenticator
	// Image builds the image URL of every decoded product.
	Image decoder.Image
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	keyA, err := mifare.ParseKey(cfg.Tag.KeyA)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse key A: %w", err)
	}
	keyB, err := mifare.ParseKey(cfg.Tag.KeyB)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse key B: %w", err)
	}

	return Options{
		Authenticator: mifare.NewAuthenticator(cfg.Tag.Sector, keyA, keyB),
		Image:         decoder.Image{HostSuffix: cfg.Image.HostSuffix, NormalizeCID: cfg.Image.NormalizeCID},
	}, nil
}

// Result is the outcome of one scan run.
type Result struct {
	// Seq is the run number handed out by the Sequencer.
	Seq uint64
	// ScanID identifies the run in logs.
	ScanID uuid.UUID
	// State is StatePresenting on success and StateFailed otherwise.
	State State
	// FailedAt is the state the run was in when it failed.
	FailedAt State
	// Address is set once it has been extracted from the tag.
	Address domain.ProductAddress
	// Product is set on success only.
	Product *domain.Product
	// Err is set on failure only.
	Err error
}

// Failed reports whether the run ended without a product.
func (r Result) Failed() bool { return r.Err != nil }

// Outcome is "presented" for a successful run and the lower-case error kind,
// or "error", otherwise. It labels metrics and history records.
func (r Result) Outcome() string {
	if r.Err == nil {
		return OutcomePresented
	}

	return outcomeOf(r.Err)
}

// Reader drives a single tag through authentication, address extraction,
// the registry query and decoding.
type Reader struct {
	options   Options
	client    productquery.Client
	sequencer *Sequencer
	metrics   *metrics.Pipeline
	tracer    trace.Tracer
}

// New creates a Reader. The sequencer must be shared with the Presenter
// consuming the results. A nil pipeline registers its collectors on a
// private registry.
func New(client productquery.Client, sequencer *Sequencer, pipeline *metrics.Pipeline, options Options) *Reader {
	if sequencer == nil {
		sequencer = &Sequencer{}
	}
	if pipeline == nil {
		pipeline = metrics.NewPipeline(prometheus.NewRegistry())
	}

	return &Reader{
		options:   options,
		client:    client,
		sequencer: sequencer,
		metrics:   pipeline,
		tracer:    otel.Tracer(tracerName),
	}
}

// Handle runs a scan for tag and hands the result to the presenter through
// results. It blocks until the result is accepted or ctx is done.
func (r *Reader) Handle(ctx context.Context, tag mifare.Tag, results chan<- Result) {
	res := r.Run(ctx, tag)

	select {
	case results <- res:
	case <-ctx.Done():
		logger.Warn(ctx, "dropping scan result", zap.Uint64("runSeq", res.Seq), zap.Error(ctx.Err()))
	}
}

// Run scans tag synchronously on the calling goroutine. A nil tag stands
// for a tag of another technology. The tag connection is closed on every
// path and collaborator panics are reported as ErrInternal.
func (r *Reader) Run(ctx context.Context, tag mifare.Tag) (res Result) {
	res = Result{Seq: r.sequencer.Next(), ScanID: uuid.New(), State: StateIdle}
	ctx = logger.WithFields(ctx, zap.Uint64("runSeq", res.Seq), zap.Stringer("scanID", res.ScanID))
	ctx, span := r.tracer.Start(ctx, "reader.Run", trace.WithAttributes(
		attribute.Int64("scan.seq", int64(res.Seq)), //nolint: gosec
		attribute.String("scan.id", res.ScanID.String()),
	))

	r.metrics.InFlight.Inc()
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "scan panicked", zap.Any("panic", p), zap.Stack("stack"))
			res.fail(serrors.With(serrors.ErrInternal, "scan panicked: %v", p))
		}
		r.metrics.InFlight.Dec()
		r.finish(ctx, span, res)
	}()

	if tag == nil {
		res.fail(serrors.Wrap(serrors.ErrHardwareFault, ErrUnsupportedTag, "smart card read with unexpected format"))

		return res
	}
	defer r.release(ctx, tag)

	res.enter(ctx, span, StateAuthenticating)
	sector, err := timed(r.metrics, StateAuthenticating, func() (*mifare.Sector, error) {
		if err := tag.Connect(); err != nil {
			return nil, serrors.Wrap(serrors.ErrHardwareFault, err, "could not connect to tag")
		}

		return r.options.Authenticator.Authenticate(ctx, tag)
	})
	if err != nil {
		res.fail(err)

		return res
	}

	res.enter(ctx, span, StateExtracting)
	addr, err := timed(r.metrics, StateExtracting, func() (domain.ProductAddress, error) {
		first, err := sector.ReadBlock(firstAddressBlock)
		if err != nil {
			return domain.ProductAddress{}, err
		}
		second, err := sector.ReadBlock(secondAddressBlock)
		if err != nil {
			return domain.ProductAddress{}, err
		}

		return tagaddress.Extract(first, second)
	})
	if err != nil {
		res.fail(err)

		return res
	}
	res.Address = addr
	ctx = logger.WithFields(ctx, zap.Stringer("address", addr))
	span.SetAttributes(attribute.String("product.address", addr.String()))

	res.enter(ctx, span, StateQuerying)
	values, err := timed(r.metrics, StateQuerying, func() (productquery.Tuple, error) {
		return r.client.GetProduct(ctx, addr)
	})
	if err != nil {
		res.fail(err)

		return res
	}

	res.enter(ctx, span, StateDecoding)
	product, err := timed(r.metrics, StateDecoding, func() (domain.Product, error) {
		record, err := decoder.Decode(values)
		if err != nil {
			return domain.Product{}, err
		}
		r.checkCategories(ctx, record)

		return domain.Product{
			Address: addr,
			Record:  record,
			Image:   r.options.Image.URL(record.ContentID, record.Name),
		}, nil
	})
	if err != nil {
		res.fail(err)

		return res
	}

	res.enter(ctx, span, StatePresenting)
	res.Product = &product

	return res
}

// checkCategories logs and counts enum values outside the known sets. They
// never fail the run.
func (r *Reader) checkCategories(ctx context.Context, record domain.ProductRecord) {
	err := record.Validate()
	if err == nil {
		return
	}
	if !record.Type.Known() {
		r.metrics.UnknownCategories.WithLabelValues("productType").Inc()
	}
	if !record.State.Known() {
		r.metrics.UnknownCategories.WithLabelValues("state").Inc()
	}
	logger.Warn(ctx, "product has unknown categories", zap.Error(err))
}

func (r *Reader) release(ctx context.Context, tag mifare.Tag) {
	if err := tag.Close(); err != nil {
		logger.Warn(ctx, "could not close tag connection", zap.Error(err))
	}
}

func (r *Reader) finish(ctx context.Context, span trace.Span, res Result) {
	defer span.End()

	outcome := res.Outcome()
	r.metrics.Runs.WithLabelValues(outcome).Inc()

	if res.Err == nil {
		span.SetStatus(codes.Ok, "")
		logger.Info(ctx, "product decoded",
			zap.String("productName", res.Product.Record.Name),
			zap.Stringer("image", res.Product.Image))

		return
	}

	span.RecordError(res.Err)
	span.SetStatus(codes.Error, outcome)
	logger.Warn(ctx, "scan failed",
		zap.Stringer("state", res.FailedAt),
		zap.String("outcome", outcome),
		zap.Error(res.Err))
}

func (res *Result) enter(ctx context.Context, span trace.Span, s State) {
	res.State = s
	span.AddEvent(s.String())
	logger.Debug(ctx, "scan state changed", zap.Stringer("state", s))
}

func (res *Result) fail(err error) {
	res.Err = err
	res.Product = nil
	res.FailedAt = res.State
	res.State = StateFailed
}

func outcomeOf(err error) string {
	k := serrors.KindOf(err)
	if k == nil {
		return "error"
	}

	return strings.ToLower(k.Error())
}

func timed[T any](p *metrics.Pipeline, stage State, fn func() (T, error)) (T, error) {
	start := time.Now()
	defer func() {
		p.StageDuration.WithLabelValues(stage.String()).Observe(time.Since(start).Seconds())
	}()

	return fn()
}
