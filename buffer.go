package ajson

import "fmt"

// Buffer is a growable byte buffer, the emitters' in-memory sink. It
// mirrors the external growable byte-buffer contract the engine is
// specified against: init, append_*, length, data, resize, shrink_by.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer with the given initial capacity.
func NewBuffer(cap int) *Buffer {
	return &Buffer{data: make([]byte, 0, cap)}
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.data = append(b.data, c)
}

// AppendBytes appends p verbatim.
func (b *Buffer) AppendBytes(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString appends s verbatim.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Appendf appends a formatted string.
func (b *Buffer) Appendf(format string, args ...interface{}) {
	fmt.Fprintf(b, format, args...)
}

// Write implements io.Writer so Appendf (and any stream emitter) can
// target a Buffer directly.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Length returns the number of bytes currently held.
func (b *Buffer) Length() int {
	return len(b.data)
}

// Data returns the current contents. The slice aliases the buffer's
// backing array and is only valid until the next mutating call.
func (b *Buffer) Data() []byte {
	return b.data
}

// Resize grows or truncates the buffer to exactly n bytes.
func (b *Buffer) Resize(n int) {
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	grown := make([]byte, n)
	copy(grown, b.data)
	b.data = grown
}

// ShrinkBy truncates the buffer by k bytes.
func (b *Buffer) ShrinkBy(k int) {
	n := len(b.data) - k
	if n < 0 {
		n = 0
	}
	b.data = b.data[:n]
}

// Destroy releases the buffer's backing storage. With a garbage
// collector this is advisory only; it exists so callers written against
// the arena/buffer contract have a symmetrical teardown call.
func (b *Buffer) Destroy() {
	b.data = nil
}
