package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles buffers used when encoding JSON responses.
// 512 bytes covers most progress and leaderboard payloads.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf before handing it back to the pool.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
