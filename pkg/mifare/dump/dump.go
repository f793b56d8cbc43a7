// Package dump provides a mifare.Tag backed by a MIFARE Classic memory
// image, the ".mfd" files produced by common card dumping tools. It stands in
// for a radio driver during development and tests.
package dump

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"productreader/pkg/mifare"
	"sync"
)

// Supported image sizes.
const (
	SizeMini = 320
	Size1K   = 1024
	Size4K   = 4096
)

var (
	// ErrNotConnected is returned by tag operations outside Connect/Close.
	ErrNotConnected = errors.New("tag not connected")
	// ErrNotAuthenticated is returned when reading a block of a sector that
	// has not been authenticated.
	ErrNotAuthenticated = errors.New("sector not authenticated")
	// ErrUnsupportedSize is returned for images that are not a MIFARE
	// Classic Mini, 1K or 4K memory.
	ErrUnsupportedSize = errors.New("unsupported image size")
)

// Tag is a memory image presented as a MIFARE Classic tag. Keys are checked
// against each sector trailer: bytes 0-5 hold key A and bytes 10-15 key B.
// It is safe for concurrent use.
type Tag struct {
	mu            sync.Mutex
	image         []byte
	sectors       int
	connected     bool
	authenticated map[int]bool
}

// Ensure Tag conforms to the mifare.Tag interface at compile time.
var _ mifare.Tag = (*Tag)(nil)

// New returns a tag holding a copy of image.
func New(image []byte) (*Tag, error) {
	var sectors int
	switch len(image) {
	case SizeMini:
		sectors = 5
	case Size1K:
		sectors = 16
	case Size4K:
		sectors = 40
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedSize, len(image))
	}

	return &Tag{
		image:         bytes.Clone(image),
		sectors:       sectors,
		authenticated: map[int]bool{},
	}, nil
}

// Open reads a memory image from path.
func Open(path string) (*Tag, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read image: %w", err)
	}

	return New(b)
}

// Blank returns an image of the given size with every sector trailer
// carrying key for both roles and the transport access bits.
func Blank(size int, key mifare.Key) ([]byte, error) {
	image := make([]byte, size)
	t, err := New(image)
	if err != nil {
		return nil, err
	}
	for s := 0; s < t.sectors; s++ {
		SetKeys(t.image, s, key, key)
	}

	return t.image, nil
}

// SetKeys writes key A and key B into the trailer of sector in image.
func SetKeys(image []byte, sector int, keyA, keyB mifare.Key) {
	off := trailerOffset(sector)
	copy(image[off:off+6], keyA[:])
	// transport configuration access bits FF 07 80 and user byte 69
	copy(image[off+6:off+10], []byte{0xFF, 0x07, 0x80, 0x69})
	copy(image[off+10:off+16], keyB[:])
}

// SetBlock writes data into the absolute block of image.
func SetBlock(image []byte, block int, data []byte) {
	copy(image[block*mifare.BlockSize:(block+1)*mifare.BlockSize], data)
}

func trailerOffset(sector int) int {
	last := mifare.SectorToBlock(sector) + mifare.BlockCountInSector(sector) - 1

	return last * mifare.BlockSize
}

// Connect opens the connection and clears any previous authentication.
func (t *Tag) Connect() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.connected = true
	clear(t.authenticated)

	return nil
}

// AuthenticateSectorWithKeyA compares key with the key A stored in the trailer.
func (t *Tag) AuthenticateSectorWithKeyA(sector int, key mifare.Key) (bool, error) {
	return t.authenticate(sector, key, 0)
}

// AuthenticateSectorWithKeyB compares key with the key B stored in the trailer.
func (t *Tag) AuthenticateSectorWithKeyB(sector int, key mifare.Key) (bool, error) {
	return t.authenticate(sector, key, 10)
}

func (t *Tag) authenticate(sector int, key mifare.Key, keyOffset int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return false, ErrNotConnected
	}
	if sector < 0 || sector >= t.sectors {
		return false, fmt.Errorf("sector %d out of range", sector)
	}

	off := trailerOffset(sector) + keyOffset
	if !bytes.Equal(t.image[off:off+mifare.KeyLength], key[:]) {
		// a rejected key drops the authentication state, as on a real card
		clear(t.authenticated)

		return false, nil
	}
	t.authenticated[sector] = true

	return true, nil
}

// ReadBlock returns a copy of the block if its sector is authenticated.
func (t *Tag) ReadBlock(block int) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return nil, ErrNotConnected
	}
	if block < 0 || block*mifare.BlockSize >= len(t.image) {
		return nil, fmt.Errorf("block %d out of range", block)
	}
	if !t.authenticated[mifare.BlockToSector(block)] {
		return nil, ErrNotAuthenticated
	}

	return bytes.Clone(t.image[block*mifare.BlockSize : (block+1)*mifare.BlockSize]), nil
}

// Close ends the connection.
func (t *Tag) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return ErrNotConnected
	}
	t.connected = false
	clear(t.authenticated)

	return nil
}
