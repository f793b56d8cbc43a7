// Package decoder maps the values returned by the registry contract into a
// domain.ProductRecord and derives the image URL of the product.
package decoder

import (
	"fmt"
	"productreader/pkg/domain"
	"productreader/pkg/productquery"
	"productreader/pkg/serrors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
)

// ContentScheme is the URI scheme prefix stripped from content IDs.
const ContentScheme = "ipfs://"

// tupleSize is the number of values getProduct returns.
const tupleSize = 6

// Decode maps the getProduct return values positionally into a record.
// A wrong arity or value type yields ErrMalformedResponse. Enum values outside
// their known set are kept: see domain.ProductRecord.Validate.
func Decode(values productquery.Tuple) (domain.ProductRecord, error) {
	if len(values) != tupleSize {
		return domain.ProductRecord{}, serrors.With(serrors.ErrMalformedResponse,
			"getProduct returned %d values, want %d", len(values), tupleSize)
	}

	owner, ok := values[0].(common.Address)
	if !ok {
		return domain.ProductRecord{}, unexpected(0, "owner", values[0])
	}
	productType, ok := values[1].(uint8)
	if !ok {
		return domain.ProductRecord{}, unexpected(1, "productType", values[1])
	}
	timesRecycled, ok := values[2].(uint16)
	if !ok {
		return domain.ProductRecord{}, unexpected(2, "timesRecycled", values[2])
	}
	contentID, ok := values[3].(string)
	if !ok {
		return domain.ProductRecord{}, unexpected(3, "cid", values[3])
	}
	name, ok := values[4].(string)
	if !ok {
		return domain.ProductRecord{}, unexpected(4, "productName", values[4])
	}
	state, ok := values[5].(uint8)
	if !ok {
		return domain.ProductRecord{}, unexpected(5, "state", values[5])
	}

	return domain.ProductRecord{
		Owner:         owner.Hex(),
		Type:          domain.ProductType(productType),
		TimesRecycled: timesRecycled,
		ContentID:     StripContentScheme(contentID),
		Name:          name,
		State:         domain.ProductState(state),
	}, nil
}

func unexpected(pos int, field string, v any) error {
	return serrors.With(serrors.ErrMalformedResponse, "value %d (%s) has type %T", pos, field, v)
}

// StripContentScheme removes one leading "ipfs://" if present.
func StripContentScheme(s string) string {
	return strings.TrimPrefix(s, ContentScheme)
}

// ImageURL builds https://<contentID>.<hostSuffix>/<name>.jpg from the
// values verbatim. The resource is not checked for existence.
func ImageURL(contentID, name, hostSuffix string) domain.ImageReference {
	return domain.ImageReference(fmt.Sprintf("https://%s.%s/%s.jpg", contentID, hostSuffix, name))
}

// Image configures image URL derivation.
type Image struct {
	// HostSuffix is the IPFS subdomain gateway host.
	HostSuffix string
	// NormalizeCID renders content IDs that parse as CIDs in base32 CIDv1,
	// the only form a subdomain gateway accepts as a DNS label. Off by default.
	NormalizeCID bool
}

// URL derives the image URL of a product.
func (i Image) URL(contentID, name string) domain.ImageReference {
	if i.NormalizeCID {
		contentID = GatewayLabel(contentID)
	}

	return ImageURL(contentID, name, i.HostSuffix)
}

// GatewayLabel returns the base32 CIDv1 form of contentID, or contentID
// unchanged when it is not a CID.
func GatewayLabel(contentID string) string {
	c, err := cid.Decode(contentID)
	if err != nil {
		return contentID
	}
	if c.Version() == 0 {
		c = cid.NewCidV1(cid.DagProtobuf, c.Hash())
	}

	label, err := c.StringOfBase(multibase.Base32)
	if err != nil {
		return contentID
	}

	return label
}
