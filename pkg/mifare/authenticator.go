package mifare

import (
	"context"
	"productreader/pkg/logger"
	"productreader/pkg/serrors"

	"go.uber.org/zap"
)

// Authenticator grants read access to a single sector once both of its keys
// have been accepted by the tag.
type Authenticator struct {
	// Sector is the sector index to authenticate.
	Sector int
	// KeyA is presented in the key A role.
	KeyA Key
	// KeyB is presented in the key B role.
	KeyB Key
}

// NewAuthenticator returns an Authenticator for sector using the given keys.
func NewAuthenticator(sector int, keyA, keyB Key) Authenticator {
	return Authenticator{Sector: sector, KeyA: keyA, KeyB: keyB}
}

// Authenticate runs key A then key B authentication against an already
// connected tag. Both must succeed: a rejected key yields ErrAuthentication
// and an I/O fault yields ErrHardwareFault. When key A is rejected key B is
// not tried, since a failed authentication leaves the card halted.
func (a Authenticator) Authenticate(ctx context.Context, tag Tag) (*Sector, error) {
	okA, err := tag.AuthenticateSectorWithKeyA(a.Sector, a.KeyA)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrHardwareFault, err, "could not authenticate sector %d with key A", a.Sector)
	}
	if !okA {
		logger.Debug(ctx, "key A rejected", zap.Int("sector", a.Sector))

		return nil, serrors.With(serrors.ErrAuthentication, "sector %d rejected key A", a.Sector)
	}

	okB, err := tag.AuthenticateSectorWithKeyB(a.Sector, a.KeyB)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrHardwareFault, err, "could not authenticate sector %d with key B", a.Sector)
	}
	if !okB {
		logger.Debug(ctx, "key B rejected", zap.Int("sector", a.Sector))

		return nil, serrors.With(serrors.ErrAuthentication, "sector %d rejected key B", a.Sector)
	}

	return &Sector{
		tag:   tag,
		index: a.Sector,
		first: SectorToBlock(a.Sector),
		count: BlockCountInSector(a.Sector),
	}, nil
}

// Sector is read access to the blocks of one authenticated sector.
type Sector struct {
	tag   Tag
	index int
	first int
	count int
}

// Index returns the sector number.
func (s *Sector) Index() int { return s.index }

// ReadBlock reads the block at offset within the sector (0 is the first
// block). Offsets outside the sector are rejected without touching the tag.
func (s *Sector) ReadBlock(offset int) ([]byte, error) {
	if offset < 0 || offset >= s.count {
		return nil, serrors.With(serrors.ErrBadRequest,
			"block offset %d outside sector %d (%d blocks)", offset, s.index, s.count)
	}

	block := s.first + offset
	data, err := s.tag.ReadBlock(block)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrHardwareFault, err, "could not read block %d", block)
	}
	if len(data) != BlockSize {
		return nil, serrors.With(serrors.ErrHardwareFault, "block %d has %d bytes, want %d", block, len(data), BlockSize)
	}

	return data, nil
}
