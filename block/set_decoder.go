package block

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/internal/hash"
	"github.com/arloliu/qint4/section"
)

// SetDecoder gives random access to the blocks of an encoded block set.
//
// Blocks are decoded on demand; the decoder itself only holds the parsed index.
type SetDecoder struct {
	data    []byte
	header  section.SetHeader
	entries []section.SetIndexEntry
}

// NewSetDecoder parses and validates the set header and index.
//
// Returns:
//   - *SetDecoder: Decoder ready for lookups
//   - error: Header errors, errs.ErrEmptyBlockSet, or errs.ErrInvalidIndexEntry when the
//     index is unsorted or points outside the data
func NewSetDecoder(data []byte) (*SetDecoder, error) {
	if len(data) < section.SetHeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	d := &SetDecoder{data: data}
	if err := d.header.Parse(data[:section.SetHeaderSize]); err != nil {
		return nil, err
	}

	if d.header.BlockCount == 0 {
		return nil, errs.ErrEmptyBlockSet
	}

	indexEnd := uint64(section.SetHeaderSize) + uint64(d.header.BlockCount)*section.SetIndexEntrySize
	if uint64(len(data)) < indexEnd || uint64(d.header.PayloadOffset) != indexEnd {
		return nil, fmt.Errorf("%w: index of %d entries does not fit", errs.ErrInvalidIndexEntry, d.header.BlockCount)
	}

	if err := d.parseIndex(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *SetDecoder) parseIndex() error {
	engine := d.header.GetEndianEngine()
	payloadLen := uint64(len(d.data)) - uint64(d.header.PayloadOffset)

	d.entries = make([]section.SetIndexEntry, d.header.BlockCount)
	for i := range d.entries {
		start := section.SetHeaderSize + i*section.SetIndexEntrySize
		entry, err := section.ParseSetIndexEntry(engine, d.data[start:start+section.SetIndexEntrySize])
		if err != nil {
			return err
		}

		if entry.Length < section.HeaderSize || entry.End() > payloadLen {
			return fmt.Errorf("%w: block %#x spans [%d, %d) of %d payload bytes",
				errs.ErrInvalidIndexEntry, entry.ID, entry.Offset, entry.End(), payloadLen)
		}

		if i > 0 && entry.ID <= d.entries[i-1].ID {
			return fmt.Errorf("%w: ids are not strictly ascending at entry %d", errs.ErrInvalidIndexEntry, i)
		}

		d.entries[i] = entry
	}

	return nil
}

// Header returns the parsed set header.
func (d *SetDecoder) Header() section.SetHeader {
	return d.header
}

// Len returns the number of blocks in the set.
func (d *SetDecoder) Len() int {
	return len(d.entries)
}

// IDs returns the block IDs in ascending order.
func (d *SetDecoder) IDs() []uint64 {
	ids := make([]uint64, len(d.entries))
	for i, e := range d.entries {
		ids[i] = e.ID
	}

	return ids
}

// Has reports whether a block with the given name exists.
func (d *SetDecoder) Has(name string) bool {
	_, ok := d.find(hash.ID(name))
	return ok
}

// Block decodes the block stored under name.
func (d *SetDecoder) Block(name string) (Block, error) {
	b, err := d.BlockByID(hash.ID(name))
	if err != nil {
		return Block{}, fmt.Errorf("block %q: %w", name, err)
	}

	return b, nil
}

// BlockByID decodes the block with the given ID.
//
// Returns errs.ErrBlockNotFound if the set has no such block, or the block's decoding error.
func (d *SetDecoder) BlockByID(id uint64) (Block, error) {
	entry, ok := d.find(id)
	if !ok {
		return Block{}, errs.ErrBlockNotFound
	}

	return Decode(d.blockData(entry))
}

// HeaderByID parses the header of the block with the given ID without touching its payload.
func (d *SetDecoder) HeaderByID(id uint64) (section.BlockHeader, error) {
	entry, ok := d.find(id)
	if !ok {
		return section.BlockHeader{}, errs.ErrBlockNotFound
	}

	decoder, err := NewDecoder(d.blockData(entry))
	if err != nil {
		return section.BlockHeader{}, err
	}

	return decoder.Header(), nil
}

// DecodeAll decodes every block, keyed by ID.
func (d *SetDecoder) DecodeAll() (map[uint64]Block, error) {
	blocks := make(map[uint64]Block, len(d.entries))
	for _, entry := range d.entries {
		b, err := Decode(d.blockData(entry))
		if err != nil {
			return nil, fmt.Errorf("block %#x: %w", entry.ID, err)
		}
		blocks[entry.ID] = b
	}

	return blocks, nil
}

// All returns a sequence of (ID, Block) in ascending ID order.
//
// Iteration stops at the first block that fails to decode; use DecodeAll or BlockByID
// when the error itself is needed.
//
// Example:
//
//	for id, b := range decoder.All() {
//	    fmt.Printf("%#x: %d values, scale=%g\n", id, b.Len(), b.Scale)
//	}
func (d *SetDecoder) All() iter.Seq2[uint64, Block] {
	return func(yield func(uint64, Block) bool) {
		for _, entry := range d.entries {
			b, err := Decode(d.blockData(entry))
			if err != nil {
				return
			}

			if !yield(entry.ID, b) {
				return
			}
		}
	}
}

func (d *SetDecoder) find(id uint64) (section.SetIndexEntry, bool) {
	i, ok := slices.BinarySearchFunc(d.entries, id, func(e section.SetIndexEntry, target uint64) int {
		return cmp.Compare(e.ID, target)
	})
	if !ok {
		return section.SetIndexEntry{}, false
	}

	return d.entries[i], true
}

func (d *SetDecoder) blockData(entry section.SetIndexEntry) []byte {
	start := uint64(d.header.PayloadOffset) + uint64(entry.Offset)
	return d.data[start : start+uint64(entry.Length)]
}
