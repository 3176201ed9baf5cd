// Package backing provides read-only, random-access views of the
// immutable backing store that supplies page contents on a page fault.
package backing

import (
	"io"

	"github.com/pkg/errors"
)

// PageSize is the number of bytes in one page-sized block.
const PageSize = 256

// ErrSeekFailed and ErrReadFailed are the two fatal I/O error kinds a
// Store can surface, matching spec.md's backing-store-seek-failed and
// backing-store-read-failed error kinds. There is no seek concept left in
// an io.ReaderAt-based implementation, but the sentinel is kept so callers
// can still distinguish "the offset is invalid" from "the underlying read
// failed" the way the original seek/read split did.
var (
	ErrSeekFailed = errors.New("backing store: seek failed")
	ErrReadFailed = errors.New("backing store: read failed")
)

// Store is a read-only, random-access byte source addressed by page
// number.
type Store interface {
	// ReadPage returns the PageSize bytes that make up page. Fails with
	// ErrSeekFailed if the offset lies outside the store, or
	// ErrReadFailed if fewer than PageSize bytes could be read.
	ReadPage(page int) ([]byte, error)
}

// ReaderAtStore adapts any io.ReaderAt (typically an *os.File opened
// read-only) into a Store.
type ReaderAtStore struct {
	r io.ReaderAt
}

// NewReaderAtStore wraps r as a page-addressed Store.
func NewReaderAtStore(r io.ReaderAt) *ReaderAtStore {
	return &ReaderAtStore{r: r}
}

// ReadPage implements Store.
func (s *ReaderAtStore) ReadPage(page int) ([]byte, error) {
	buf := make([]byte, PageSize)
	off := int64(page) * PageSize
	n, err := s.r.ReadAt(buf, off)
	if n == 0 && err != nil {
		return nil, errors.Wrapf(ErrSeekFailed, "page %d at offset %d: %v", page, off, err)
	}
	if n < PageSize {
		return nil, errors.Wrapf(ErrReadFailed, "page %d at offset %d: short read (%d of %d bytes)", page, off, n, PageSize)
	}
	return buf, nil
}

// MemStore is an in-memory Store backed by a byte slice, used by tests in
// place of a file on disk.
type MemStore struct {
	data []byte
}

// NewMemStore returns a Store over data, which must be a multiple of
// PageSize bytes long.
func NewMemStore(data []byte) *MemStore {
	return &MemStore{data: data}
}

// ReadPage implements Store.
func (s *MemStore) ReadPage(page int) ([]byte, error) {
	off := page * PageSize
	if off < 0 || off+PageSize > len(s.data) {
		return nil, errors.Wrapf(ErrSeekFailed, "page %d at offset %d: out of range (store is %d bytes)", page, off, len(s.data))
	}
	out := make([]byte, PageSize)
	copy(out, s.data[off:off+PageSize])
	return out, nil
}
