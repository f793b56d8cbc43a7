// Package tagaddress turns the raw blocks stored on a tag into the product
// address they encode. The address occupies the whole first block of the
// sector and the first four bytes of the second one.
package tagaddress

import (
	"productreader/pkg/domain"
	"productreader/pkg/mifare"
	"productreader/pkg/serrors"
)

// SecondBlockBytes is how many bytes of the second block belong to the address.
const SecondBlockBytes = domain.AddressLength - mifare.BlockSize

// Extract concatenates first (16 bytes) and the first four bytes of second
// into a product address. A short block is a hardware fault; the reserved
// all-zero address yields ErrUnboundTag. Extract does no I/O.
func Extract(first, second []byte) (domain.ProductAddress, error) {
	var addr domain.ProductAddress

	if len(first) != mifare.BlockSize {
		return addr, serrors.With(serrors.ErrHardwareFault,
			"first address block has %d bytes, want %d", len(first), mifare.BlockSize)
	}
	if len(second) < SecondBlockBytes {
		return addr, serrors.With(serrors.ErrHardwareFault,
			"second address block has %d bytes, want at least %d", len(second), SecondBlockBytes)
	}

	n := copy(addr[:], first)
	copy(addr[n:], second[:SecondBlockBytes])

	if addr.IsZero() {
		return domain.ProductAddress{}, serrors.With(serrors.ErrUnboundTag, "tag holds the void address")
	}

	return addr, nil
}
