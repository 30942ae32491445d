package allocator

import "fmt"

// Policy decides where a chunk is placed relative to the chunks before it.
type Policy uint8

const (
	// PolicyAppend places the chunk after everything reserved so far.
	PolicyAppend Policy = 0
	// PolicyAliasFirst places the chunk at the offset of chunk 0. The pool
	// grows only if the chunk's padded size exceeds what is already reserved.
	PolicyAliasFirst Policy = 1
)

func (p Policy) String() string {
	switch p {
	case PolicyAppend:
		return "append"
	case PolicyAliasFirst:
		return "alias-first"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ChunkConfig describes one chunk of a pool
type ChunkConfig struct {
	Size      int
	Alignment int
	Policy    Policy
}

// Append ...
func Append(size int, alignment int) ChunkConfig {
	return ChunkConfig{
		Size:      size,
		Alignment: alignment,
		Policy:    PolicyAppend,
	}
}

// AliasFirst ...
func AliasFirst(size int, alignment int) ChunkConfig {
	return ChunkConfig{
		Size:      size,
		Alignment: alignment,
		Policy:    PolicyAliasFirst,
	}
}

// Aliases reports whether the chunk reuses the space of chunk 0
func (c ChunkConfig) Aliases() bool {
	return c.Policy == PolicyAliasFirst
}

// PaddedSize returns the size rounded up to the alignment. The config must
// already be validated.
func (c ChunkConfig) PaddedSize() int {
	return AlignUp(c.Size, c.Alignment)
}

func (c ChunkConfig) String() string {
	return fmt.Sprintf("{%d/%d %s}", c.Size, c.Alignment, c.Policy)
}
