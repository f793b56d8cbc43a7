package reader_test

import (
	"context"
	"errors"
	"productreader/internal/decoder"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"productreader/pkg/metrics"
	"productreader/pkg/mifare"
	mockmifare "productreader/pkg/mifare/mock"
	"productreader/pkg/productquery"
	mockproductquery "productreader/pkg/productquery/mock"
	"productreader/pkg/serrors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const host = "ipfs.nftstorage.link"

var owner = common.HexToAddress("0xABCD" + strings.Repeat("0", 34) + "EF") //nolint: gochecknoglobals

type fixture struct {
	ctrl      *gomock.Controller
	tag       *mockmifare.MockTag
	client    *mockproductquery.MockClient
	pipeline  *metrics.Pipeline
	sequencer *reader.Sequencer
	reader    *reader.Reader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		tag:       mockmifare.NewMockTag(ctrl),
		client:    mockproductquery.NewMockClient(ctrl),
		pipeline:  metrics.NewPipeline(prometheus.NewRegistry()),
		sequencer: &reader.Sequencer{},
	}
	f.reader = reader.New(f.client, f.sequencer, f.pipeline, reader.Options{
		Authenticator: mifare.NewAuthenticator(1, mifare.DefaultKey, mifare.DefaultKey),
		Image:         decoder.Image{HostSuffix: host},
	})

	return f
}

// addressBlocks returns sector 1 blocks holding 0x0102...14.
func addressBlocks() ([]byte, []byte) {
	first := make([]byte, mifare.BlockSize)
	second := make([]byte, mifare.BlockSize)
	for i := range first {
		first[i] = byte(i + 1)
	}
	for i := 0; i < 4; i++ {
		second[i] = byte(17 + i)
	}
	// trailing bytes are not part of the address
	second[4] = 0xEE

	return first, second
}

func expectedAddress() domain.ProductAddress {
	var a domain.ProductAddress
	for i := range a {
		a[i] = byte(i + 1)
	}

	return a
}

func cannedTuple(productType uint8, state uint8) productquery.Tuple {
	return productquery.Tuple{owner, productType, uint16(3), "ipfs://bafy123", "bottle1", state}
}

// expectReads wires a connected tag accepting both keys and returning blocks 4 and 5.
func (f *fixture) expectReads(first, second []byte) {
	gomock.InOrder(
		f.tag.EXPECT().Connect().Return(nil),
		f.tag.EXPECT().AuthenticateSectorWithKeyA(1, mifare.DefaultKey).Return(true, nil),
		f.tag.EXPECT().AuthenticateSectorWithKeyB(1, mifare.DefaultKey).Return(true, nil),
		f.tag.EXPECT().ReadBlock(4).Return(first, nil),
		f.tag.EXPECT().ReadBlock(5).Return(second, nil),
	)
}

func TestRun_Success(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), expectedAddress()).Return(cannedTuple(1, 0), nil)
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.NoError(t, res.Err)
	require.False(t, res.Failed())
	require.Equal(t, uint64(1), res.Seq)
	require.Equal(t, reader.StatePresenting, res.State)
	require.Equal(t, expectedAddress(), res.Address)
	require.Equal(t, "0x0102030405060708090A0B0C0D0E0F1011121314", res.Address.String())

	require.NotNil(t, res.Product)
	require.Equal(t, owner.Hex(), res.Product.Record.Owner)
	require.Equal(t, "Can", res.Product.Record.Type.String())
	require.Equal(t, uint16(3), res.Product.Record.TimesRecycled)
	require.Equal(t, "bafy123", res.Product.Record.ContentID)
	require.Equal(t, "Usable", res.Product.Record.State.String())
	require.Equal(t, domain.ImageReference("https://bafy123.ipfs.nftstorage.link/bottle1.jpg"), res.Product.Image)

	require.InDelta(t, 1, testutil.ToFloat64(f.pipeline.Runs.WithLabelValues("presented")), 0)
	require.InDelta(t, 0, testutil.ToFloat64(f.pipeline.InFlight), 0)
}

func TestRun_CloseErrorKeepsOutcome(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(cannedTuple(0, 1), nil)
	f.tag.EXPECT().Close().Return(errors.New("tag lost")).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.NoError(t, res.Err)
	require.Equal(t, reader.StatePresenting, res.State)
	require.Equal(t, "Pending to recycle", res.Product.Record.State.String())
}

func TestRun_CloseErrorKeepsFailure(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrReverted, "execution reverted"))
	f.tag.EXPECT().Close().Return(errors.New("tag lost")).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrReverted)
	require.Equal(t, "Product not registered", reader.StatusMessage(res.Err))
}

func TestRun_AuthenticationFailed(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.tag.EXPECT().Connect().Return(nil),
		f.tag.EXPECT().AuthenticateSectorWithKeyA(1, mifare.DefaultKey).Return(false, nil),
	)
	f.tag.EXPECT().AuthenticateSectorWithKeyB(gomock.Any(), gomock.Any()).Times(0)
	f.tag.EXPECT().ReadBlock(gomock.Any()).Times(0)
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Times(0)
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrAuthentication)
	require.Equal(t, reader.StateFailed, res.State)
	require.Equal(t, reader.StateAuthenticating, res.FailedAt)
	require.Nil(t, res.Product)
	require.Equal(t, "Wrong authentication", reader.StatusMessage(res.Err))
	require.InDelta(t, 1, testutil.ToFloat64(f.pipeline.Runs.WithLabelValues("authentication_failure")), 0)
}

func TestRun_ConnectFailed(t *testing.T) {
	f := newFixture(t)
	f.tag.EXPECT().Connect().Return(errors.New("rf field lost"))
	f.tag.EXPECT().AuthenticateSectorWithKeyA(gomock.Any(), gomock.Any()).Times(0)
	f.tag.EXPECT().Close().Return(errors.New("not connected")).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrHardwareFault)
	require.Equal(t, reader.StateAuthenticating, res.FailedAt)
	require.Equal(t, "Smart card read failed", reader.StatusMessage(res.Err))
}

func TestRun_UnboundTag(t *testing.T) {
	f := newFixture(t)
	f.expectReads(make([]byte, mifare.BlockSize), make([]byte, mifare.BlockSize))
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Times(0)
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrUnboundTag)
	require.Equal(t, reader.StateExtracting, res.FailedAt)
	require.Equal(t, "Void address read", reader.StatusMessage(res.Err))
}

func TestRun_ShortBlock(t *testing.T) {
	f := newFixture(t)
	first, _ := addressBlocks()
	f.expectReads(first, []byte{1, 2})
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrHardwareFault)
	require.Equal(t, reader.StateExtracting, res.FailedAt)
}

func TestRun_TransportFailure(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrTransport, context.DeadlineExceeded, "eth_call timed out"))
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrTransport)
	require.ErrorIs(t, res.Err, context.DeadlineExceeded)
	require.Equal(t, reader.StateQuerying, res.FailedAt)
	require.Equal(t, "Product registry unreachable", reader.StatusMessage(res.Err))
}

func TestRun_MalformedTuple(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(productquery.Tuple{owner, "1"}, nil)
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrMalformedResponse)
	require.Equal(t, reader.StateDecoding, res.FailedAt)
	require.Equal(t, "Unexpected product registry response", reader.StatusMessage(res.Err))
}

func TestRun_UnknownCategoryCompletes(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(cannedTuple(99, 7), nil)
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.NoError(t, res.Err)
	require.Equal(t, reader.StatePresenting, res.State)
	require.Equal(t, "Unknown(99)", res.Product.Record.Type.String())
	require.Equal(t, "Unknown(7)", res.Product.Record.State.String())

	require.InDelta(t, 1, testutil.ToFloat64(f.pipeline.UnknownCategories.WithLabelValues("productType")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(f.pipeline.UnknownCategories.WithLabelValues("state")), 0)
}

func TestRun_NilTag(t *testing.T) {
	f := newFixture(t)

	res := f.reader.Run(context.Background(), nil)
	require.ErrorIs(t, res.Err, serrors.ErrHardwareFault)
	require.ErrorIs(t, res.Err, reader.ErrUnsupportedTag)
	require.Equal(t, reader.StateIdle, res.FailedAt)
	require.Equal(t, "Smart card read with unexpected format", reader.StatusMessage(res.Err))
}

func TestRun_PanicRecovered(t *testing.T) {
	f := newFixture(t)
	f.expectReads(addressBlocks())
	f.client.EXPECT().GetProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.ProductAddress) (productquery.Tuple, error) {
			panic("boom")
		})
	f.tag.EXPECT().Close().Return(nil).Times(1)

	res := f.reader.Run(context.Background(), f.tag)
	require.ErrorIs(t, res.Err, serrors.ErrInternal)
	require.Equal(t, reader.StateQuerying, res.FailedAt)
	require.Equal(t, "Unexpected error", reader.StatusMessage(res.Err))
	require.InDelta(t, 0, testutil.ToFloat64(f.pipeline.InFlight), 0)
}

func TestRun_SequenceIncreases(t *testing.T) {
	f := newFixture(t)

	first := f.reader.Run(context.Background(), nil)
	second := f.reader.Run(context.Background(), nil)
	require.Equal(t, uint64(1), first.Seq)
	require.Equal(t, uint64(2), second.Seq)
	require.NotEqual(t, first.ScanID, second.ScanID)
	require.Equal(t, uint64(2), f.sequencer.Latest())
}

func TestHandle_DeliversResult(t *testing.T) {
	f := newFixture(t)
	results := make(chan reader.Result, 1)

	f.reader.Handle(context.Background(), nil, results)

	res := <-results
	require.Equal(t, uint64(1), res.Seq)
	require.ErrorIs(t, res.Err, reader.ErrUnsupportedTag)
}

func TestHandle_ContextDone(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// unbuffered and never drained
	f.reader.Handle(ctx, nil, make(chan reader.Result))
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{serrors.Wrap(serrors.ErrHardwareFault, reader.ErrUnsupportedTag, "x"), "Smart card read with unexpected format"},
		{serrors.With(serrors.ErrHardwareFault, "x"), "Smart card read failed"},
		{serrors.With(serrors.ErrAuthentication, "x"), "Wrong authentication"},
		{serrors.With(serrors.ErrUnboundTag, "x"), "Void address read"},
		{serrors.With(serrors.ErrTransport, "x"), "Product registry unreachable"},
		{serrors.With(serrors.ErrReverted, "x"), "Product not registered"},
		{serrors.With(serrors.ErrMalformedResponse, "x"), "Unexpected product registry response"},
		{serrors.With(serrors.ErrInternal, "x"), "Unexpected error"},
		{errors.New("anything"), "Unexpected error"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, reader.StatusMessage(tt.err), "%v", tt.err)
	}
}

func TestState_String(t *testing.T) {
	require.Equal(t, "idle", reader.StateIdle.String())
	require.Equal(t, "presenting", reader.StatePresenting.String())
	require.Equal(t, "failed", reader.StateFailed.String())
	require.Equal(t, "unknown", reader.State(42).String())
}

func TestResult_Outcome(t *testing.T) {
	require.Equal(t, reader.OutcomePresented, reader.Result{}.Outcome())
	require.Equal(t, "unbound_tag", reader.Result{Err: serrors.With(serrors.ErrUnboundTag, "zero")}.Outcome())
	require.Equal(t, "error", reader.Result{Err: errors.New("plain")}.Outcome())
}
