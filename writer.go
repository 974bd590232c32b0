package binio

import "math"

// Writer encodes fixed-width little-endian values by appending them to a
// growable buffer it owns. Writes are pure appends, previously written bytes
// are never rewritten, and no write can fail: every method takes the exact
// fixed-width Go type, so out-of-range values cannot reach the encoder
// (callers converting wider values get Go's truncating conversion).
type Writer struct {
	buffer []byte
}

// NewWriter creates a Writer with an empty buffer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize creates a Writer with an empty buffer and capacity for n
// bytes already reserved.
func NewWriterSize(n int) *Writer {
	return &Writer{buffer: make([]byte, 0, n)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buffer) }

// Bytes returns the encoded bytes. The slice shares the Writer's internal
// storage, so it is only valid until the next write.
func (w *Writer) Bytes() []byte { return w.buffer }

// grow extends the buffer by n bytes, doubling the capacity when it runs
// out, and returns the offset the new bytes start at.
func (w *Writer) grow(n int) int {
	off := len(w.buffer)
	if off+n <= cap(w.buffer) {
		w.buffer = w.buffer[:off+n]
		return off
	}

	buffer := make([]byte, off+n, 2*(off+n))
	copy(buffer, w.buffer)
	w.buffer = buffer
	return off
}

// WriteUint8 appends an unsigned 8-bit value.
func (w *Writer) WriteUint8(val uint8) {
	off := w.grow(1)
	w.buffer[off] = val
}

// WriteInt8 appends a signed 8-bit two's complement value.
func (w *Writer) WriteInt8(val int8) {
	off := w.grow(1)
	w.buffer[off] = byte(val)
}

// WriteUint16 appends an unsigned little-endian 16-bit value.
func (w *Writer) WriteUint16(val uint16) {
	off := w.grow(2)
	byteOrder.PutUint16(w.buffer[off:], val)
}

// WriteInt16 appends a signed little-endian 16-bit two's complement value.
func (w *Writer) WriteInt16(val int16) {
	off := w.grow(2)
	byteOrder.PutUint16(w.buffer[off:], uint16(val))
}

// WriteUint32 appends an unsigned little-endian 32-bit value.
func (w *Writer) WriteUint32(val uint32) {
	off := w.grow(4)
	byteOrder.PutUint32(w.buffer[off:], val)
}

// WriteInt32 appends a signed little-endian 32-bit two's complement value.
func (w *Writer) WriteInt32(val int32) {
	off := w.grow(4)
	byteOrder.PutUint32(w.buffer[off:], uint32(val))
}

// WriteFloat32 appends a little-endian IEEE-754 single precision value.
func (w *Writer) WriteFloat32(val float32) {
	off := w.grow(4)
	byteOrder.PutUint32(w.buffer[off:], math.Float32bits(val))
}

// WriteFloat64 appends a little-endian IEEE-754 double precision value.
func (w *Writer) WriteFloat64(val float64) {
	off := w.grow(8)
	byteOrder.PutUint64(w.buffer[off:], math.Float64bits(val))
}

// WriteBytes appends the given bytes verbatim, with no length prefix. A
// caller that needs to read the span back must record its length separately,
// typically by writing a length field first.
func (w *Writer) WriteBytes(val []byte) {
	off := w.grow(len(val))
	copy(w.buffer[off:], val)
}
