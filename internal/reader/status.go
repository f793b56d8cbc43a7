package reader

import (
	"errors"
	"productreader/pkg/serrors"
)

// ErrUnsupportedTag is wrapped in the hardware fault reported for tags that
// are not MIFARE Classic cards.
var ErrUnsupportedTag = errors.New("unsupported tag technology")

// StatusMessage maps a scan failure to the short message shown to the user.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedTag):
		return "Smart card read with unexpected format"
	case errors.Is(err, serrors.ErrAuthentication):
		return "Wrong authentication"
	case errors.Is(err, serrors.ErrUnboundTag):
		return "Void address read"
	case errors.Is(err, serrors.ErrHardwareFault):
		return "Smart card read failed"
	case errors.Is(err, serrors.ErrReverted):
		return "Product not registered"
	case errors.Is(err, serrors.ErrTransport):
		return "Product registry unreachable"
	case errors.Is(err, serrors.ErrMalformedResponse):
		return "Unexpected product registry response"
	default:
		return "Unexpected error"
	}
}
