package encryption

import (
	"sync"
)

// DefaultChunkSize is the read granularity for streaming jobs.
const DefaultChunkSize = 16384

// bufferPool provides reusable read buffers for streaming I/O.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, DefaultChunkSize)
	},
}

// getBuffer returns a read buffer of the given size, pooled when possible.
// The release func must be called when the buffer is no longer needed.
func getBuffer(size int) ([]byte, func()) {
	if size == DefaultChunkSize {
		buf := bufferPool.Get().([]byte)

		return buf, func() { bufferPool.Put(buf) } //nolint:staticcheck
	}

	return make([]byte, size), func() {}
}
