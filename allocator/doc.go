// Package allocator computes static layouts for fixed-capacity scratch pools.
//
// A pool is described by an ordered list of chunks. Each chunk has a size, a
// power-of-two alignment and a Policy:
//
//   - PolicyAppend chunks are packed one after another, each start rounded
//     up to the chunk's alignment.
//   - PolicyAliasFirst chunks start where chunk 0 starts and reuse the space
//     reserved so far. The pool only grows when the aliasing chunk's padded
//     size exceeds that reservation.
//
// For example, {1,1}, {1,1} followed by an aliasing {1024,1} gives a total
// size of 1024, with the last chunk at offset 0.
//
// An appended chunk also reserves the gap left by aligning its start. When
// alignments increase along the list, the total is therefore larger than the
// plain sum of padded sizes: {258,2} followed by {8,4} needs 268 units, not
// 266, because the second chunk starts at 260.
//
// Plans never allocate memory. The caller reserves TotalSize units and places
// data at the reported offsets.
package allocator
