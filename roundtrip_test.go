package binio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripIntegers(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xFF)
	w.WriteInt8(-128)
	w.WriteUint16(0xDEAD)
	w.WriteInt16(-32768)
	w.WriteUint32(0xFEEDFACE)
	w.WriteInt32(-2147483648)

	r := NewReader(w.Bytes())

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), u8)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(-128), i8)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xDEAD), u16)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(-32768), i16)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xFEEDFACE), u32)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-2147483648), i32)

	require.Equal(t, 0, r.Remaining())
}

func TestRoundTripFloats(t *testing.T) {
	cases := []float64{0, 1, -1, 0.5, 123.456, math.Inf(1), math.Inf(-1),
		math.MaxFloat64, math.SmallestNonzeroFloat64}

	for _, val := range cases {
		w := NewWriter()
		w.WriteFloat64(val)

		r := NewReader(w.Bytes())
		got, err := r.ReadFloat64()
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(val), math.Float64bits(got))
	}

	cases32 := []float32{0, 1, -1, 0.5, 123.456, float32(math.Inf(1)),
		math.MaxFloat32, math.SmallestNonzeroFloat32}

	for _, val := range cases32 {
		w := NewWriter()
		w.WriteFloat32(val)

		r := NewReader(w.Bytes())
		got, err := r.ReadFloat32()
		require.NoError(t, err)
		require.Equal(t, math.Float32bits(val), math.Float32bits(got))
	}
}

// NaN payloads and the sign of zero must survive a round trip bit for bit
func TestRoundTripFloatBitPatterns(t *testing.T) {
	patterns := []uint64{
		math.Float64bits(math.NaN()),
		0x7FF8000000000001, // NaN with a payload
		0xFFF8000000000000, // negative NaN
		0x8000000000000000, // negative zero
	}

	for _, bits := range patterns {
		w := NewWriter()
		w.WriteFloat64(math.Float64frombits(bits))

		r := NewReader(w.Bytes())
		got, err := r.ReadFloat64()
		require.NoError(t, err)
		require.Equal(t, bits, math.Float64bits(got))
	}

	patterns32 := []uint32{
		math.Float32bits(float32(math.NaN())),
		0x7FC00001,
		0x80000000,
	}

	for _, bits := range patterns32 {
		w := NewWriter()
		w.WriteFloat32(math.Float32frombits(bits))

		r := NewReader(w.Bytes())
		got, err := r.ReadFloat32()
		require.NoError(t, err)
		require.Equal(t, bits, math.Float32bits(got))
	}
}

// byte spans are unframed, so the length travels as an explicit field
func TestRoundTripLengthPrefixedBytes(t *testing.T) {
	payload := []byte("a reasonably sized payload")

	w := NewWriter()
	w.WriteUint32(uint32(len(payload)))
	w.WriteBytes(payload)

	r := NewReader(w.Bytes())

	n, err := r.ReadUint32()
	require.NoError(t, err)

	got, err := r.ReadBytes(int(n))
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Equal(t, 0, r.Remaining())
}

func TestRoundTripMixedSequence(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xFF)
	w.WriteUint16(0xDEAD)
	w.WriteUint16(0xBEEF)
	w.WriteUint32(0xFEEDFACE)
	w.WriteInt8(2)
	w.WriteInt8(-2)
	w.WriteInt16(0x0304)
	w.WriteInt32(int32(0x05060708))
	w.WriteFloat64(123.456)

	require.Equal(t, []byte{
		0xFF,
		0xAD, 0xDE,
		0xEF, 0xBE,
		0xCE, 0xFA, 0xED, 0xFE,
		0x02,
		0xFE,
		0x04, 0x03,
		0x08, 0x07, 0x06, 0x05,
		0x77, 0xBE, 0x9F, 0x1A, 0x2F, 0xDD, 0x5E, 0x40,
	}, w.Bytes())

	r := NewReader(w.Bytes())

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), u8)

	dead, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xDEAD), dead)

	beef, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), beef)

	face, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xFEEDFACE), face)

	two, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(2), two)

	minusTwo, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(-2), minusTwo)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(0x0304), i16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(0x05060708), i32)

	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, 123.456, f64)

	require.Equal(t, 0, r.Remaining())
}
