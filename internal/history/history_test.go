package history_test

import (
	"context"
	"errors"
	"productreader/internal/history"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"productreader/pkg/serrors"
	mockstorage "productreader/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func product() *domain.Product {
	return &domain.Product{
		Address: domain.ProductAddress{0x01, 0x02},
		Record: domain.ProductRecord{
			Owner: "0xAbCd",
			Type:  domain.ProductTypeCan,
			Name:  "can1",
		},
		Image: "https://bafy123.ipfs.nftstorage.link/can1.jpg",
	}
}

func TestToRecord_Presented(t *testing.T) {
	id := uuid.New()
	p := product()
	rec := history.ToRecord(reader.Result{
		Seq:     3,
		ScanID:  id,
		State:   reader.StatePresenting,
		Address: p.Address,
		Product: p,
	}, true)

	require.Equal(t, id, rec.ID)
	require.Equal(t, uint64(3), rec.Seq)
	require.Equal(t, p.Address, rec.Address)
	require.Equal(t, reader.OutcomePresented, rec.Outcome)
	require.Empty(t, rec.Status)
	require.True(t, rec.Shown)
	require.Equal(t, p.Record, *rec.Product)
	require.Equal(t, p.Image, rec.Image)

	// the record does not alias the product
	rec.Product.Name = "changed"
	require.Equal(t, "can1", p.Record.Name)
}

func TestToRecord_Failed(t *testing.T) {
	rec := history.ToRecord(reader.Result{
		Seq:      4,
		State:    reader.StateFailed,
		FailedAt: reader.StateQuerying,
		Address:  domain.ProductAddress{0x05},
		Err:      serrors.With(serrors.ErrReverted, "getProduct reverted"),
	}, false)

	require.Equal(t, "reverted", rec.Outcome)
	require.Equal(t, "Product not registered", rec.Status)
	require.False(t, rec.Shown)
	require.Nil(t, rec.Product)
	require.Empty(t, rec.Image)
	require.False(t, rec.Address.IsZero())
}

func TestRecorder_Record(t *testing.T) {
	s := mockstorage.NewMockScanStorage(gomock.NewController(t))
	r := history.New(s)

	s.EXPECT().StoreScans(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, scans ...domain.ScanRecord) ([]domain.ScanRecord, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			require.WithinDuration(t, time.Now().Add(history.DefaultTimeout), deadline, time.Second)
			require.Len(t, scans, 1)
			require.Equal(t, "authentication_failure", scans[0].Outcome)

			return scans, nil
		})

	require.NoError(t, r.Record(context.Background(), reader.Result{
		Seq: 1,
		Err: serrors.With(serrors.ErrAuthentication, "key A rejected"),
	}, true))
}

func TestRecorder_StorageError(t *testing.T) {
	s := mockstorage.NewMockScanStorage(gomock.NewController(t))
	r := &history.Recorder{Storage: s}

	s.EXPECT().StoreScans(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	err := r.Record(context.Background(), reader.Result{Seq: 1, Product: product()}, true)
	require.ErrorContains(t, err, "connection reset")
}
