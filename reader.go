package binio

import (
	"math"

	"github.com/pkg/errors"
)

// Reader decodes fixed-width little-endian values sequentially from a byte
// slice. Each successful read advances the cursor by exactly the number of
// bytes consumed; a failed read leaves the cursor where it was.
//
// The Reader borrows the slice it is given and never modifies it.
type Reader struct {
	pos  int
	data []byte
}

// NewReader creates a Reader over data with its cursor at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{
		pos:  0,
		data: data,
	}
}

// Pos returns the current read offset of the Reader. There is no
// corresponding setter: the cursor only moves forward, through reads.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total size of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of bytes left to read.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Bytes returns the underlying buffer the Reader was constructed over.
func (r *Reader) Bytes() []byte { return r.data }

// need reports an out of bounds error if width bytes are not available at
// the current offset. The comparison leaves width on its own side so huge
// lengths cannot overflow the sum.
func (r *Reader) need(op string, width int) error {
	if width > len(r.data)-r.pos {
		return errors.Wrapf(ErrOutOfBounds,
			"%v: need %v bytes at offset %v, %v remaining",
			op, width, r.pos, len(r.data)-r.pos)
	}
	return nil
}

// ReadUint8 decodes an unsigned 8-bit value.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.need("uint8", 1); err != nil {
		return 0, err
	}

	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadInt8 decodes a signed 8-bit two's complement value.
func (r *Reader) ReadInt8() (int8, error) {
	if err := r.need("int8", 1); err != nil {
		return 0, err
	}

	v := int8(r.data[r.pos])
	r.pos++
	return v, nil
}

// ReadUint16 decodes an unsigned little-endian 16-bit value.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.need("uint16", 2); err != nil {
		return 0, err
	}

	v := byteOrder.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadInt16 decodes a signed little-endian 16-bit two's complement value.
func (r *Reader) ReadInt16() (int16, error) {
	if err := r.need("int16", 2); err != nil {
		return 0, err
	}

	v := int16(byteOrder.Uint16(r.data[r.pos:]))
	r.pos += 2
	return v, nil
}

// ReadUint32 decodes an unsigned little-endian 32-bit value.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.need("uint32", 4); err != nil {
		return 0, err
	}

	v := byteOrder.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadInt32 decodes a signed little-endian 32-bit two's complement value.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need("int32", 4); err != nil {
		return 0, err
	}

	v := int32(byteOrder.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadFloat32 decodes a little-endian IEEE-754 single precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.need("float32", 4); err != nil {
		return 0, err
	}

	v := math.Float32frombits(byteOrder.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadFloat64 decodes a little-endian IEEE-754 double precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.need("float64", 8); err != nil {
		return 0, err
	}

	v := math.Float64frombits(byteOrder.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

// ReadBytes reads the next n raw bytes. The returned slice is a view sharing
// the Reader's underlying storage, not a copy, so later mutation of the
// source buffer is observable through it; callers that need the span to
// outlive the buffer must copy it themselves.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeLength, "bytes: length %v", n)
	}
	if err := r.need("bytes", n); err != nil {
		return nil, err
	}

	v := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return v, nil
}
