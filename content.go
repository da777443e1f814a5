package rtfdecap

import "github.com/valyala/bytebufferpool"

// contentPool backs the decoder's accumulation buffer. Every decoded
// literal run in a document gets appended to one buffer as the tree is
// walked (the de-encapsulation pipeline's hot path, since every surviving
// leaf across the whole tree feeds a single output), so pooling it avoids
// one `bytes.Buffer` allocation per call to Deencapsulate. Grounded on
// valyala-fasthttp's bytebuffer.go (`defaultByteBufferPool`,
// `AcquireByteBuffer`/`ReleaseByteBuffer`), adapted from pooling
// HTTP-response bodies to pooling decode-pass output; the teacher itself
// just allocated a fresh `bytes.Buffer` per interpreter run.
var contentPool bytebufferpool.Pool

// acquireContent borrows a zeroed buffer from the pool.
func acquireContent() *bytebufferpool.ByteBuffer {
	return contentPool.Get()
}

// releaseContent returns buf to the pool once its bytes have been copied
// out (Deencapsulate always copies before returning, since callers must
// not retain a pool-owned slice past the call).
func releaseContent(buf *bytebufferpool.ByteBuffer) {
	contentPool.Put(buf)
}
