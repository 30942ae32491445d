package allocator

import (
	"math"
	"strconv"
	"strings"

	"github.com/QuangTung97/smemlayout/errors"
	"go.uber.org/zap"
)

// ChunkPlan is the immutable layout of one pool. Offsets and the total size
// are computed once by NewChunkPlan; every query afterwards is a lookup.
type ChunkPlan struct {
	chunks []ChunkConfig

	// reserved[j] is the space reserved by chunks 0..j-1
	reserved []int
	offsets  []int
}

func chunkPath(index int) []string {
	return []string{strconv.Itoa(index)}
}

func chunkPlanValidateConfig(chunks []ChunkConfig) error {
	for i, c := range chunks {
		if c.Size < 0 {
			return errors.New(errors.PhaseConfig, errors.KindInvalidSize).
				Path(chunkPath(i)...).
				Value(c.Size).
				Detail("size %d is negative", c.Size).
				Build()
		}
		if !IsPowerOfTwo(c.Alignment) {
			return errors.InvalidAlignment(chunkPath(i), c.Alignment)
		}
		if c.Policy != PolicyAppend && c.Policy != PolicyAliasFirst {
			return errors.New(errors.PhaseConfig, errors.KindInvalidAlias).
				Path(chunkPath(i)...).
				Value(c.Policy).
				Detail("unknown policy %s", c.Policy).
				Build()
		}
		if i == 0 && c.Aliases() {
			return errors.New(errors.PhaseConfig, errors.KindInvalidAlias).
				Path(chunkPath(i)...).
				Detail("the first chunk can not alias itself").
				Build()
		}
		if c.Size > math.MaxInt-(c.Alignment-1) {
			return overflowError(i, c.Size)
		}
	}
	return nil
}

func overflowError(index int, value int) error {
	return errors.New(errors.PhaseConfig, errors.KindOverflow).
		Path(chunkPath(index)...).
		Value(value).
		Detail("reserved size overflows int").
		Build()
}

// reserve applies one chunk to the running reservation. This is the only
// place that decides how a chunk grows the pool.
//
// An appended chunk also reserves the gap left by aligning its start, so the
// total never ends before the last chunk does. Empty chunks reserve nothing.
func reserve(reserved int, c ChunkConfig) int {
	padded := c.PaddedSize()
	switch c.Policy {
	case PolicyAliasFirst:
		if padded > reserved {
			return padded
		}
		return reserved
	default:
		if padded == 0 {
			return reserved
		}
		return AlignUp(reserved, c.Alignment) + padded
	}
}

// NewChunkPlan validates chunks and computes the layout. The slice is copied.
func NewChunkPlan(chunks []ChunkConfig) (*ChunkPlan, error) {
	if err := chunkPlanValidateConfig(chunks); err != nil {
		return nil, err
	}

	n := len(chunks)
	p := &ChunkPlan{
		chunks:   append(make([]ChunkConfig, 0, n), chunks...),
		reserved: make([]int, n+1),
		offsets:  make([]int, n),
	}

	for i, c := range p.chunks {
		prev := p.reserved[i]
		if prev > math.MaxInt-(c.Alignment-1)-c.PaddedSize() {
			return nil, overflowError(i, prev)
		}

		if c.Aliases() {
			p.offsets[i] = p.offsets[0]
		} else {
			p.offsets[i] = AlignUp(prev, c.Alignment)
		}

		p.reserved[i+1] = reserve(prev, c)

		if c.Aliases() && p.reserved[i+1] > prev {
			Logger().Debug("aliasing chunk grows reservation",
				zap.Int("index", i),
				zap.Int("from", prev),
				zap.Int("to", p.reserved[i+1]))
		}
	}

	Logger().Debug("chunk plan built",
		zap.Int("chunks", n),
		zap.Int("total", p.TotalSize()))

	return p, nil
}

// MustNewChunkPlan is like NewChunkPlan but panics on invalid config
func MustNewChunkPlan(chunks []ChunkConfig) *ChunkPlan {
	p, err := NewChunkPlan(chunks)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of chunks
func (p *ChunkPlan) Len() int {
	return len(p.chunks)
}

// TotalSize returns the minimum pool capacity holding every chunk
func (p *ChunkPlan) TotalSize() int {
	return p.reserved[len(p.chunks)]
}

// Offset returns the start of the chunk at index
func (p *ChunkPlan) Offset(index int) (int, error) {
	if index < 0 || index >= len(p.chunks) {
		return 0, errors.OutOfRange(chunkPath(index), index, len(p.chunks))
	}
	return p.offsets[index], nil
}

// MustOffset is like Offset but panics when index is out of range
func (p *ChunkPlan) MustOffset(index int) int {
	offset, err := p.Offset(index)
	if err != nil {
		panic(err)
	}
	return offset
}

// ReservedBefore returns the space reserved by chunks 0..index-1, before the
// chunk at index is aligned. index may equal Len().
func (p *ChunkPlan) ReservedBefore(index int) (int, error) {
	if index < 0 || index > len(p.chunks) {
		return 0, errors.OutOfRange(chunkPath(index), index, len(p.chunks)+1)
	}
	return p.reserved[index], nil
}

// Chunk ...
func (p *ChunkPlan) Chunk(index int) (ChunkConfig, error) {
	if index < 0 || index >= len(p.chunks) {
		return ChunkConfig{}, errors.OutOfRange(chunkPath(index), index, len(p.chunks))
	}
	return p.chunks[index], nil
}

// Chunks returns a copy of the chunk configs
func (p *ChunkPlan) Chunks() []ChunkConfig {
	return append([]ChunkConfig(nil), p.chunks...)
}

func (p *ChunkPlan) String() string {
	var b strings.Builder
	b.WriteString("ChunkPlan{total=")
	b.WriteString(strconv.Itoa(p.TotalSize()))
	for i, c := range p.chunks {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("@")
		b.WriteString(strconv.Itoa(p.offsets[i]))
		b.WriteString(c.String())
	}
	b.WriteString("}")
	return b.String()
}
