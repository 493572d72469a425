package encryption

import (
	"sync"
)

// defaultBufferSize is a multiple of every supported block size.
const defaultBufferSize = 32 * 1024

// bufferPool provides a pool of reusable read buffers for file I/O operations.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultBufferSize)

		return &buf
	},
}
