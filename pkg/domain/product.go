package domain

import (
	"fmt"
	"productreader/pkg/serrors"
	"strconv"
	"strings"
)

// ProductType is the packaging category published by the registry.
// Values outside the known set are kept as-is and render as Unknown(raw).
type ProductType uint8

const (
	// ProductTypePlasticBottle is a plastic bottle.
	ProductTypePlasticBottle ProductType = 0
	// ProductTypeCan is a metal can.
	ProductTypeCan ProductType = 1
	// ProductTypeGlassBottle is a glass bottle.
	ProductTypeGlassBottle ProductType = 2
	// ProductTypeCardboard is a cardboard package.
	ProductTypeCardboard ProductType = 3
)

var productTypeLabels = map[ProductType]string{ //nolint: gochecknoglobals
	ProductTypePlasticBottle: "Plastic Bottle",
	ProductTypeCan:           "Can",
	ProductTypeGlassBottle:   "Glass Bottle",
	ProductTypeCardboard:     "Cardboard",
}

// Known reports whether t is one of the defined product types.
func (t ProductType) Known() bool {
	_, ok := productTypeLabels[t]

	return ok
}

func (t ProductType) String() string {
	if label, ok := productTypeLabels[t]; ok {
		return label
	}

	return unknownLabel(uint8(t))
}

// ProductState is the lifecycle state of a product.
type ProductState uint8

const (
	// ProductStateUsable means the product is in use.
	ProductStateUsable ProductState = 0
	// ProductStatePendingRecycle means the product waits to be recycled.
	ProductStatePendingRecycle ProductState = 1
)

var productStateLabels = map[ProductState]string{ //nolint: gochecknoglobals
	ProductStateUsable:         "Usable",
	ProductStatePendingRecycle: "Pending to recycle",
}

// Known reports whether s is one of the defined product states.
func (s ProductState) Known() bool {
	_, ok := productStateLabels[s]

	return ok
}

func (s ProductState) String() string {
	if label, ok := productStateLabels[s]; ok {
		return label
	}

	return unknownLabel(uint8(s))
}

func unknownLabel(raw uint8) string {
	return "Unknown(" + strconv.Itoa(int(raw)) + ")"
}

// ProductRecord is the product metadata returned by the registry contract
// for one address. It is built once per successful query.
type ProductRecord struct {
	// Owner is the checksummed hex address of the product owner.
	Owner string `json:"owner"`
	// Type is the packaging category.
	Type ProductType `json:"productType"`
	// TimesRecycled counts completed recycling cycles.
	TimesRecycled uint16 `json:"timesRecycled"`
	// ContentID identifies the product image folder on IPFS, without scheme.
	ContentID string `json:"cid"`
	// Name is the product name, also the image file name.
	Name string `json:"productName"`
	// State is the lifecycle state.
	State ProductState `json:"state"`
}

// Validate reports enumerated fields holding values outside their known
// sets. The returned error is of kind ErrUnknownCategory; the record itself
// stays usable.
func (r ProductRecord) Validate() error {
	var fields []string
	if !r.Type.Known() {
		fields = append(fields, fmt.Sprintf("productType=%d", uint8(r.Type)))
	}
	if !r.State.Known() {
		fields = append(fields, fmt.Sprintf("state=%d", uint8(r.State)))
	}
	if len(fields) == 0 {
		return nil
	}

	return serrors.With(serrors.ErrUnknownCategory, "unknown category: %s", strings.Join(fields, ", "))
}

// ImageReference is the HTTP URL of the product picture.
type ImageReference string

func (i ImageReference) String() string { return string(i) }

// Product is what a display sink receives for a successful scan.
type Product struct {
	Address ProductAddress
	Record  ProductRecord
	Image   ImageReference
}
