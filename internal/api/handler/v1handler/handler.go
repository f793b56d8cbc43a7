// Package v1handler serves the read-only v1 status API: the latest
// presentation, on-demand product lookups and the scan history.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"productreader/internal/api/specs/v1specs"
	"productreader/internal/decoder"
	"productreader/internal/display"
	"productreader/pkg/logger"
	"productreader/pkg/productquery"
	"productreader/pkg/serrors"
	"productreader/pkg/storage"

	"github.com/go-faster/jx"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// LatestSource exposes the last presentation.
type LatestSource interface {
	Snapshot() display.Snapshot
}

// Deps holds the collaborators of the v1 handlers.
type Deps struct {
	// Latest feeds /v1/product/latest.
	Latest LatestSource
	// Client feeds /v1/product/{address}. Lookups answer 503 when nil.
	Client productquery.Client
	// Image builds image URLs of looked up products.
	Image decoder.Image
	// History feeds the /v1/scans routes. They answer 503 when nil.
	History storage.ScanStorage
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// statusOf maps an error kind to the HTTP status reported to clients.
func statusOf(err error) int {
	switch k := serrors.KindOf(err); {
	case errors.Is(k, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(k, serrors.ErrReverted), errors.Is(k, serrors.ErrUnboundTag), errors.Is(k, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(k, serrors.ErrTransport), errors.Is(k, serrors.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.Is(k, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewError maps err to {"code": KIND, "message": ...}. Messages of internal
// errors are not exposed.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	status := statusOf(err)

	code, message := serrors.ErrInternal.Error(), "internal error"
	var se *serrors.Error
	if k := serrors.KindOf(err); k != nil && status != http.StatusInternalServerError {
		code = k.Error()
		message = k.Error()
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    code,
			Message: message,
		},
	}
}

// ErrorHandler writes the errors the generated server raises before or
// after calling a handler, such as undecodable parameters, in the same shape
// as NewError.
func (h *Handler) ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var paramsErr *ogenerrors.DecodeParamsError
	switch {
	case errors.As(err, &paramsErr):
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid parameters")
	case errors.Is(err, ht.ErrNotImplemented):
		err = serrors.Wrap(serrors.ErrUnavailable, err, "not implemented")
	}

	res := h.NewError(ctx, err)

	var e jx.Encoder
	res.Response.Encode(&e)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}
