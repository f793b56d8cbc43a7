package reader_test

import (
	"context"
	"errors"
	"productreader/internal/decoder"
	"productreader/internal/reader"
	mockreader "productreader/internal/reader/mock"
	"productreader/pkg/domain"
	"productreader/pkg/metrics"
	"productreader/pkg/mifare"
	mockmifare "productreader/pkg/mifare/mock"
	"productreader/pkg/productquery"
	mockproductquery "productreader/pkg/productquery/mock"
	"productreader/pkg/serrors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPresenter(t *testing.T) (*mockreader.MockSink, *reader.Sequencer, *metrics.Pipeline, *reader.Presenter) {
	t.Helper()

	sink := mockreader.NewMockSink(gomock.NewController(t))
	seq := &reader.Sequencer{}
	pipeline := metrics.NewPipeline(prometheus.NewRegistry())

	return sink, seq, pipeline, reader.NewPresenter(sink, seq, pipeline)
}

func productResult(seq uint64) reader.Result {
	return reader.Result{
		Seq:   seq,
		State: reader.StatePresenting,
		Product: &domain.Product{
			Address: expectedAddress(),
			Record:  domain.ProductRecord{Name: "bottle1"},
			Image:   "https://bafy123.ipfs.nftstorage.link/bottle1.jpg",
		},
	}
}

func TestPresenter_ShowsLatestProduct(t *testing.T) {
	sink, seq, _, p := newTestPresenter(t)
	seq.Next()

	res := productResult(1)
	sink.EXPECT().ShowProduct(gomock.Any(), *res.Product).Return(nil)

	require.True(t, p.Present(context.Background(), res))
}

func TestPresenter_ShowsStatusOnFailure(t *testing.T) {
	sink, seq, _, p := newTestPresenter(t)
	seq.Next()

	sink.EXPECT().ShowProduct(gomock.Any(), gomock.Any()).Times(0)
	sink.EXPECT().ShowStatus(gomock.Any(), "Product registry unreachable").Return(nil)

	require.True(t, p.Present(context.Background(), reader.Result{
		Seq:   1,
		State: reader.StateFailed,
		Err:   serrors.With(serrors.ErrTransport, "connection refused"),
	}))
}

func TestPresenter_DiscardsStale(t *testing.T) {
	sink, seq, pipeline, p := newTestPresenter(t)
	seq.Next()
	seq.Next()

	sink.EXPECT().ShowProduct(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.False(t, p.Present(context.Background(), productResult(1)), "a newer run has started")
	require.True(t, p.Present(context.Background(), productResult(2)))
	require.False(t, p.Present(context.Background(), productResult(2)), "already shown")
	require.InDelta(t, 2, testutil.ToFloat64(pipeline.StaleDiscarded), 0)
}

func TestPresenter_SinkErrorIsLogged(t *testing.T) {
	sink, seq, _, p := newTestPresenter(t)
	seq.Next()

	sink.EXPECT().ShowProduct(gomock.Any(), gomock.Any()).Return(errors.New("screen off"))

	require.True(t, p.Present(context.Background(), productResult(1)))
}

func TestPresenter_ServeUntilClosed(t *testing.T) {
	sink, seq, _, p := newTestPresenter(t)
	seq.Next()

	results := make(chan reader.Result, 1)
	results <- productResult(1)
	close(results)

	sink.EXPECT().ShowProduct(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, p.Serve(context.Background(), results))
}

func TestPresenter_ServeUntilCancelled(t *testing.T) {
	_, _, _, p := newTestPresenter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, p.Serve(ctx, make(chan reader.Result)), context.Canceled)
}

// A slow query started first must not overwrite the product of a scan
// started after it.
func TestPipeline_LateResultIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockproductquery.NewMockClient(ctrl)
	sink := mockreader.NewMockSink(ctrl)
	seq := &reader.Sequencer{}
	pipeline := metrics.NewPipeline(prometheus.NewRegistry())

	r := reader.New(client, seq, pipeline, reader.Options{
		Authenticator: mifare.NewAuthenticator(1, mifare.DefaultKey, mifare.DefaultKey),
		Image:         decoder.Image{HostSuffix: host},
	})
	p := reader.NewPresenter(sink, seq, pipeline)

	newTag := func() *mockmifare.MockTag {
		first, second := addressBlocks()
		tag := mockmifare.NewMockTag(ctrl)
		tag.EXPECT().Connect().Return(nil)
		tag.EXPECT().AuthenticateSectorWithKeyA(gomock.Any(), gomock.Any()).Return(true, nil)
		tag.EXPECT().AuthenticateSectorWithKeyB(gomock.Any(), gomock.Any()).Return(true, nil)
		tag.EXPECT().ReadBlock(4).Return(first, nil)
		tag.EXPECT().ReadBlock(5).Return(second, nil)
		tag.EXPECT().Close().Return(nil)

		return tag
	}

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, domain.ProductAddress) (productquery.Tuple, error) {
				close(started)
				<-release

				return productquery.Tuple{owner, uint8(0), uint16(0), "slow", "old", uint8(0)}, nil
			}),
		client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(
			productquery.Tuple{owner, uint8(1), uint16(0), "fast", "new", uint8(0)}, nil),
	)
	sink.EXPECT().ShowProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, product domain.Product) error {
			require.Equal(t, "new", product.Record.Name)

			return nil
		}).Times(1)

	results := make(chan reader.Result, 2)
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Handle(context.Background(), newTag(), results)
	}()

	<-started
	r.Handle(context.Background(), newTag(), results)
	close(release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("slow scan did not finish")
	}
	close(results)

	require.NoError(t, p.Serve(context.Background(), results))
	require.InDelta(t, 1, testutil.ToFloat64(pipeline.StaleDiscarded), 0)
}

func TestPresenter_RecordsEveryResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mockreader.NewMockSink(ctrl)
	recorder := mockreader.NewMockRecorder(ctrl)
	seq := &reader.Sequencer{}
	p := reader.NewPresenter(sink, seq, nil, recorder)
	seq.Next()
	seq.Next()

	sink.EXPECT().ShowProduct(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		recorder.EXPECT().Record(gomock.Any(), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, res reader.Result, _ bool) error {
				require.Equal(t, uint64(1), res.Seq)

				return nil
			}),
		recorder.EXPECT().Record(gomock.Any(), gomock.Any(), true).Return(errors.New("db down")),
	)

	require.False(t, p.Present(context.Background(), productResult(1)))
	require.True(t, p.Present(context.Background(), productResult(2)), "a recorder error does not hide the result")
}
