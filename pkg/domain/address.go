package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the size in bytes of a product address.
const AddressLength = 20

// ProductAddress is the 20-byte identifier stored on a tag. The all-zero
// value is reserved and means that no product is bound to the tag.
type ProductAddress [AddressLength]byte

// String renders the address as "0x" followed by 40 uppercase hex digits.
func (a ProductAddress) String() string {
	return "0x" + strings.ToUpper(hex.EncodeToString(a[:]))
}

// IsZero reports whether a is the reserved unbound value.
func (a ProductAddress) IsZero() bool {
	return a == ProductAddress{}
}

// Bytes returns a copy of the raw address bytes.
func (a ProductAddress) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])

	return b
}

// ParseProductAddress parses 40 hex digits with an optional 0x prefix, in any case.
func ParseProductAddress(s string) (ProductAddress, error) {
	var a ProductAddress

	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(raw) != 2*AddressLength {
		return a, fmt.Errorf("address %q must have %d hex digits", s, 2*AddressLength)
	}
	if _, err := hex.Decode(a[:], []byte(raw)); err != nil {
		return a, fmt.Errorf("could not decode address %q: %w", s, err)
	}

	return a, nil
}
