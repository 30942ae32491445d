// Package smemlayout plans the placement of named buffers inside the fixed
// scratch pools of a kernel.
//
// A Planner owns one Pool per physical memory. Each Pool wraps an
// allocator.ChunkPlan and maps chunk names to chunk indices, so callers never
// hardcode positions:
//
//	planner, err := smemlayout.NewPlanner(smemlayout.PoolConfig{
//		Name: "smem",
//		Chunks: []smemlayout.ChunkSpec{
//			{Name: "loadA", ChunkConfig: allocator.Append(65536, 1024)},
//			{Name: "gmemC0", ChunkConfig: allocator.AliasFirst(32768, 1024)},
//		},
//	})
//	offset, err := planner.Offset("smem", "gmemC0")
//
// KernelLayout is the fixed two-pool layout (shared memory and tensor memory)
// with one accessor per region.
package smemlayout
