// Package mifare defines the MIFARE Classic tag abstraction consumed by the
// reader and the sector authentication that gates block access.
package mifare

// BlockSize is the size in bytes of a MIFARE Classic block.
const BlockSize = 16

// Tag is a MIFARE Classic tag as exposed by a reader driver. All methods may
// fail with an I/O error. Implementations are not required to be safe for
// concurrent use; a connection belongs to a single scan.
//
//go:generate mockgen -package mockmifare -source=interface.go -destination=mock/mockmifare.go *
type Tag interface {
	// Connect opens the connection to the tag.
	Connect() error
	// AuthenticateSectorWithKeyA authenticates the sector with key A. It
	// returns false when the tag rejects the key.
	AuthenticateSectorWithKeyA(sector int, key Key) (bool, error)
	// AuthenticateSectorWithKeyB authenticates the sector with key B.
	AuthenticateSectorWithKeyB(sector int, key Key) (bool, error)
	// ReadBlock reads one block by absolute index.
	ReadBlock(block int) ([]byte, error)
	// Close releases the connection.
	Close() error
}

// SectorToBlock returns the absolute index of the first block of sector.
// Sectors 0-31 hold 4 blocks each, sectors 32-39 (4K cards only) hold 16.
func SectorToBlock(sector int) int {
	if sector < 32 {
		return sector * 4
	}

	return 32*4 + (sector-32)*16
}

// BlockCountInSector returns the number of blocks in sector, trailer included.
func BlockCountInSector(sector int) int {
	if sector < 32 {
		return 4
	}

	return 16
}

// BlockToSector returns the sector holding the absolute block index.
func BlockToSector(block int) int {
	if block < 32*4 {
		return block / 4
	}

	return 32 + (block-32*4)/16
}
