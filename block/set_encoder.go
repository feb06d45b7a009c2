package block

import (
	"cmp"
	"fmt"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/internal/collision"
	"github.com/arloliu/qint4/internal/hash"
	"github.com/arloliu/qint4/internal/options"
	"github.com/arloliu/qint4/internal/pool"
	"github.com/arloliu/qint4/section"
)

// SetEncoderConfig holds the settings of a SetEncoder.
type SetEncoderConfig struct {
	blockOpts   []EncoderOption
	concurrency int
}

// SetEncoderOption represents a functional option for configuring a SetEncoderConfig.
type SetEncoderOption = options.Option[*SetEncoderConfig]

// WithBlockOptions configures the Encoder used for every block of the set.
// The block endianness also applies to the set header and index.
func WithBlockOptions(opts ...EncoderOption) SetEncoderOption {
	return options.NoError(func(c *SetEncoderConfig) {
		c.blockOpts = append(c.blockOpts, opts...)
	})
}

// WithConcurrency bounds the number of blocks encoded in parallel by Finish.
// The default is GOMAXPROCS.
func WithConcurrency(n int) SetEncoderOption {
	return options.New(func(c *SetEncoderConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency must be at least 1, got %d", errs.ErrInvalidArgument, n)
		}
		c.concurrency = n

		return nil
	})
}

type pendingBlock struct {
	id      uint64
	name    string
	samples []float32
}

// SetEncoder collects named float32 sequences and encodes them into one block set.
//
// Note: The SetEncoder is NOT thread-safe. Add and Finish must be called from a single goroutine.
//
// Note: The SetEncoder is NOT reusable. After calling Finish, a new encoder must be created.
type SetEncoder struct {
	encoder     *Encoder
	concurrency int
	pending     []pendingBlock
	names       *collision.Tracker
	finished    bool
}

// NewSetEncoder creates a new SetEncoder.
//
// Returns:
//   - *SetEncoder: The configured set encoder
//   - error: Configuration error if an option is invalid
func NewSetEncoder(opts ...SetEncoderOption) (*SetEncoder, error) {
	config := &SetEncoderConfig{concurrency: runtime.GOMAXPROCS(0)}
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	encoder, err := NewEncoder(config.blockOpts...)
	if err != nil {
		return nil, err
	}

	return &SetEncoder{
		encoder:     encoder,
		concurrency: config.concurrency,
		names:       collision.NewTracker(),
	}, nil
}

// Add queues samples under name. Blocks are identified by the xxHash64 of their name.
//
// The samples slice is retained until Finish and must not be modified before then.
//
// Returns errs.ErrInvalidArgument for an empty name, and errs.ErrDuplicateBlock if name, or
// another name with the same hash, was already added.
func (e *SetEncoder) Add(name string, samples []float32) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	id := hash.ID(name)
	if err := e.names.Track(name, id); err != nil {
		return err
	}

	e.pending = append(e.pending, pendingBlock{id: id, name: name, samples: samples})

	return nil
}

// Len returns the number of blocks added so far.
func (e *SetEncoder) Len() int {
	return e.names.Count()
}

// Names returns the block names added so far, in the order they were added.
func (e *SetEncoder) Names() []string {
	return e.names.Names()
}

// Finish encodes all queued blocks in parallel and assembles the block set.
//
// Blocks are laid out in ascending ID order, so the output does not depend on the order
// of Add calls or on scheduling.
//
// Returns:
//   - []byte: The encoded block set
//   - error: errs.ErrEmptyBlockSet, the first block encoding error, or errs.ErrTooManyValues
//     if the set exceeds 4GiB
func (e *SetEncoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	if len(e.pending) == 0 {
		return nil, errs.ErrEmptyBlockSet
	}

	slices.SortFunc(e.pending, func(a, b pendingBlock) int {
		return cmp.Compare(a.id, b.id)
	})

	encoded := make([][]byte, len(e.pending))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, p := range e.pending {
		g.Go(func() error {
			data, err := e.encoder.Encode(p.samples)
			if err != nil {
				return fmt.Errorf("block %q: %w", p.name, err)
			}
			encoded[i] = data

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	header := section.NewSetHeader()
	if !e.encoder.IsLittleEndian() {
		header.WithBigEndian()
	}
	header.BlockCount = uint32(len(encoded))
	header.PayloadOffset = uint32(header.IndexEnd())

	total := uint64(header.PayloadOffset)
	for _, data := range encoded {
		total += uint64(len(data))
	}
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: block set of %d bytes", errs.ErrTooManyValues, total)
	}

	buf := pool.GetSetBuffer()
	defer pool.PutSetBuffer(buf)

	buf.Grow(int(total))
	buf.MustWrite(header.Bytes())

	engine := header.GetEndianEngine()
	offset := uint32(0)
	for i, data := range encoded {
		entry := section.SetIndexEntry{ID: e.pending[i].id, Offset: offset, Length: uint32(len(data))}
		buf.B = entry.AppendTo(engine, buf.B)
		offset += entry.Length
	}

	for _, data := range encoded {
		buf.MustWrite(data)
	}

	e.pending = nil

	return buf.Clone(), nil
}
