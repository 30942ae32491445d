package smemlayout

import (
	"fmt"

	"github.com/QuangTung97/smemlayout/allocator"
)

// Pool names of the two-pool kernel layout
const (
	SmemPool = "smem"
	TmemPool = "tmem"
)

// Alignments used by the reference kernels
const (
	SmemTmaAlignment    = 1024
	SmemSmallAlignment  = 16
	TmemColsAlignmentD  = 2
	TmemColsAlignmentA  = 4
	TmemColsAlignmentSf = 2
)

// Chunk names of the shared memory pool, in placement order.
//
//	[loadA][loadB][shuffleB][gmemC0][gmemC1][rowMax][sliceK]
//
// gmemC0 usually aliases loadA to reuse the operand buffers for the output.
const (
	SmemLoadA    = "loadA"
	SmemLoadB    = "loadB"
	SmemShuffleB = "shuffleB"
	SmemGmemC0   = "gmemC0"
	SmemGmemC1   = "gmemC1"
	SmemRowMax   = "rowMax"
	SmemSliceK   = "sliceK"
)

// Chunk names of the tensor memory pool, in placement order.
//
//	[d][a][sfA][sfB]
const (
	TmemD   = "d"
	TmemA   = "a"
	TmemSfA = "sfA"
	TmemSfB = "sfB"
)

var smemChunkNames = []string{
	SmemLoadA,
	SmemLoadB,
	SmemShuffleB,
	SmemGmemC0,
	SmemGmemC1,
	SmemRowMax,
	SmemSliceK,
}

var tmemChunkNames = []string{
	TmemD,
	TmemA,
	TmemSfA,
	TmemSfB,
}

var smemGmemCNames = [2]string{SmemGmemC0, SmemGmemC1}

// KernelLayoutConfig holds the chunk of every named region. Sizes are decided
// by the caller from its tile shapes and data types; a size of 0 marks a
// region that the kernel does not use.
type KernelLayoutConfig struct {
	LoadA    allocator.ChunkConfig
	LoadB    allocator.ChunkConfig
	ShuffleB allocator.ChunkConfig
	GmemC    [2]allocator.ChunkConfig
	RowMax   allocator.ChunkConfig
	SliceK   allocator.ChunkConfig

	D   allocator.ChunkConfig
	A   allocator.ChunkConfig
	SfA allocator.ChunkConfig
	SfB allocator.ChunkConfig
}

// KernelLayout is the shared memory and tensor memory plan of one kernel
// configuration.
type KernelLayout struct {
	planner *Planner
	smem    *Pool
	tmem    *Pool
}

func namedChunks(names []string, chunks []allocator.ChunkConfig) []ChunkSpec {
	result := make([]ChunkSpec, 0, len(names))
	for i, name := range names {
		result = append(result, ChunkSpec{Name: name, ChunkConfig: chunks[i]})
	}
	return result
}

// SmemPoolConfig returns the shared memory pool in table order
func (c KernelLayoutConfig) SmemPoolConfig() PoolConfig {
	return PoolConfig{
		Name: SmemPool,
		Chunks: namedChunks(smemChunkNames, []allocator.ChunkConfig{
			c.LoadA, c.LoadB, c.ShuffleB, c.GmemC[0], c.GmemC[1], c.RowMax, c.SliceK,
		}),
	}
}

// TmemPoolConfig returns the tensor memory pool in table order
func (c KernelLayoutConfig) TmemPoolConfig() PoolConfig {
	return PoolConfig{
		Name:   TmemPool,
		Chunks: namedChunks(tmemChunkNames, []allocator.ChunkConfig{c.D, c.A, c.SfA, c.SfB}),
	}
}

// NewKernelLayout ...
func NewKernelLayout(conf KernelLayoutConfig) (*KernelLayout, error) {
	planner, err := NewPlanner(conf.SmemPoolConfig(), conf.TmemPoolConfig())
	if err != nil {
		return nil, err
	}
	return &KernelLayout{
		planner: planner,
		smem:    planner.byName[SmemPool],
		tmem:    planner.byName[TmemPool],
	}, nil
}

// Planner returns both pools for generic queries
func (k *KernelLayout) Planner() *Planner {
	return k.planner
}

// SmemSize ...
func (k *KernelLayout) SmemSize() int {
	return k.smem.TotalSize()
}

// TmemSize returns the number of tensor memory columns needed
func (k *KernelLayout) TmemSize() int {
	return k.tmem.TotalSize()
}

// SmemOffsetLoadA ...
func (k *KernelLayout) SmemOffsetLoadA() int {
	return k.smem.MustOffset(SmemLoadA)
}

// SmemOffsetLoadB ...
func (k *KernelLayout) SmemOffsetLoadB() int {
	return k.smem.MustOffset(SmemLoadB)
}

// SmemOffsetLoadAb returns the start of the combined A and B operand buffers
func (k *KernelLayout) SmemOffsetLoadAb() int {
	return k.SmemOffsetLoadA()
}

// SmemOffsetShuffleB ...
func (k *KernelLayout) SmemOffsetShuffleB() int {
	return k.smem.MustOffset(SmemShuffleB)
}

// SmemOffsetGmemC returns the output staging buffer of epilogue resIdx,
// which must be 0 or 1.
func (k *KernelLayout) SmemOffsetGmemC(resIdx int) int {
	if resIdx < 0 || resIdx >= len(smemGmemCNames) {
		panic(fmt.Sprintf("gmemC index %d out of range", resIdx))
	}
	return k.smem.MustOffset(smemGmemCNames[resIdx])
}

// SmemOffsetRowMax ...
func (k *KernelLayout) SmemOffsetRowMax() int {
	return k.smem.MustOffset(SmemRowMax)
}

// SmemOffsetSliceK ...
func (k *KernelLayout) SmemOffsetSliceK() int {
	return k.smem.MustOffset(SmemSliceK)
}

// TmemOffsetD ...
func (k *KernelLayout) TmemOffsetD() int {
	return k.tmem.MustOffset(TmemD)
}

// TmemOffsetA ...
func (k *KernelLayout) TmemOffsetA() int {
	return k.tmem.MustOffset(TmemA)
}

// TmemOffsetSfA ...
func (k *KernelLayout) TmemOffsetSfA() int {
	return k.tmem.MustOffset(TmemSfA)
}

// TmemOffsetSfB ...
func (k *KernelLayout) TmemOffsetSfB() int {
	return k.tmem.MustOffset(TmemSfB)
}
