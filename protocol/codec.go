// Package protocol implements the fixed-size framing used to talk to the
// PSVR's HID control endpoint: a 4-byte command header followed by a
// command-specific payload, zero-padded out to a 64-byte report.
package protocol

import (
	"bytes"
	"encoding/binary"
)

// FrameSize is the size in bytes of every outbound control report.
const FrameSize = 64

// maxPayload is the largest payload a single frame can carry once the
// header is accounted for.
const maxPayload = FrameSize - headerSize

// Writer accumulates a command payload using the device's little-endian
// wire format. It mirrors the byte-by-byte style used to build USB
// descriptors: no reliance on struct layout, only explicit field writes.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty payload writer.
func NewWriter() *Writer { return &Writer{} }

// U8 appends a single byte.
func (w *Writer) U8(v uint8) *Writer {
	w.buf.WriteByte(v)
	return w
}

// U16 appends a little-endian uint16.
func (w *Writer) U16(v uint16) *Writer {
	_ = binary.Write(&w.buf, binary.LittleEndian, v)
	return w
}

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) *Writer {
	_ = binary.Write(&w.buf, binary.LittleEndian, v)
	return w
}

// Bytes appends raw bytes verbatim (used for reserved padding and fixed
// byte arrays such as LED values).
func (w *Writer) Bytes(b []byte) *Writer {
	w.buf.Write(b)
	return w
}

// Zeros appends n zero bytes.
func (w *Writer) Zeros(n int) *Writer {
	w.buf.Write(make([]byte, n))
	return w
}

// Payload returns the accumulated payload bytes.
func (w *Writer) Payload() []byte {
	return w.buf.Bytes()
}

// Reader walks a fixed byte slice field by field using the device's
// little-endian wire format. It never panics; reads past the end of the
// backing slice return zero values, since the caller is expected to
// validate the input length up front (see sensor.Decode).
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps raw bytes for sequential little-endian field reads.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int { return r.pos }

func (r *Reader) slice(n int) []byte {
	if r.pos+n > len(r.data) {
		r.pos = len(r.data)
		return make([]byte, n)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

// U8 reads a single byte.
func (r *Reader) U8() uint8 {
	return r.slice(1)[0]
}

// I16 reads a little-endian int16.
func (r *Reader) I16() int16 {
	return int16(binary.LittleEndian.Uint16(r.slice(2)))
}

// Skip advances the cursor past n reserved bytes without interpreting them.
func (r *Reader) Skip(n int) {
	r.slice(n)
}
