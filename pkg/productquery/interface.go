// Package productquery defines how the product registry contract is queried
// for the metadata bound to a product address.
package productquery

import (
	"context"
	"productreader/pkg/domain"
)

// GetProductSignature is the canonical signature of the registry getter. Its
// return tuple is (address,uint8,uint16,string,string,uint8).
const GetProductSignature = "getProduct(address)"

// Tuple holds the positional values returned by getProduct, already decoded
// from their ABI slots: owner, productType, timesRecycled, cid, productName
// and state.
type Tuple []any

// Client is the abstraction for read-only registry queries.
//
//go:generate mockgen -package mockproductquery -source=interface.go -destination=mock/mockproductquery.go *
type Client interface {
	// GetProduct calls getProduct(addr) against the latest chain state.
	GetProduct(ctx context.Context, addr domain.ProductAddress) (Tuple, error)
}
