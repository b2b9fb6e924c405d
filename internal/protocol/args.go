package protocol

import (
	"encoding/binary"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Format selects the fixed-width encoding used by PutPacked and PutAll.
type Format int

const (
	U8 Format = iota
	U16   // little-endian
	U16BE // big-endian, for wire-order protocol fields
	U32   // little-endian
	U32BE
)

func (f Format) width() int {
	switch f {
	case U8:
		return 1
	case U16, U16BE:
		return 2
	case U32, U32BE:
		return 4
	}
	return 0
}

func (f Format) max() uint64 {
	switch f {
	case U8:
		return math.MaxUint8
	case U16, U16BE:
		return math.MaxUint16
	case U32, U32BE:
		return math.MaxUint32
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case U8:
		return "u8"
	case U16:
		return "u16le"
	case U16BE:
		return "u16be"
	case U32:
		return "u32le"
	case U32BE:
		return "u32be"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Opcode is implemented by command and argument enumerations that
// serialize as a single protocol byte.
type Opcode interface {
	Opcode() byte
}

// ByteArgs assembles heterogeneous argument values into a fixed-capacity
// byte buffer with a monotonically advancing write cursor. Storage beyond
// the cursor stays zero, so a partially filled buffer is already in padded
// wire form. All appends check capacity before touching the buffer; a
// failed call leaves both the cursor and the contents unchanged.
type ByteArgs struct {
	buf []byte
	cur int
}

// NewByteArgs allocates a zero-filled buffer of the given capacity.
// A capacity of 0 is legal and rejects every non-empty append.
func NewByteArgs(capacity int) *ByteArgs {
	return &ByteArgs{buf: make([]byte, capacity)}
}

// Wrap builds a ByteArgs over existing bytes without copying. The cursor
// starts at 0 regardless of content; this is the view used when picking
// apart received data, not for appending to it.
func Wrap(data []byte) *ByteArgs {
	return &ByteArgs{buf: data}
}

// Size returns the fixed capacity.
func (a *ByteArgs) Size() int { return len(a.buf) }

// Len returns the number of bytes written so far.
func (a *ByteArgs) Len() int { return a.cur }

// Bytes returns the full backing buffer, length Size, including the
// zero padding past the cursor.
func (a *ByteArgs) Bytes() []byte { return a.buf }

// Clear zeroes the storage and resets the cursor.
func (a *ByteArgs) Clear() *ByteArgs {
	for i := range a.buf {
		a.buf[i] = 0
	}
	a.cur = 0
	return a
}

func (a *ByteArgs) ensure(n int) error {
	if a.cur+n > len(a.buf) {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrNoSpace, n, len(a.buf)-a.cur)
	}
	return nil
}

// PutByte appends a single byte.
func (a *ByteArgs) PutByte(v byte) error {
	if err := a.ensure(1); err != nil {
		return err
	}
	a.buf[a.cur] = v
	a.cur++
	return nil
}

// PutUint16 appends a little-endian 16-bit value.
func (a *ByteArgs) PutUint16(v uint16) error {
	if err := a.ensure(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(a.buf[a.cur:], v)
	a.cur += 2
	return nil
}

// PutUint16BE appends a big-endian 16-bit value.
func (a *ByteArgs) PutUint16BE(v uint16) error {
	if err := a.ensure(2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(a.buf[a.cur:], v)
	a.cur += 2
	return nil
}

// PutUint32 appends a little-endian 32-bit value.
func (a *ByteArgs) PutUint32(v uint32) error {
	if err := a.ensure(4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(a.buf[a.cur:], v)
	a.cur += 4
	return nil
}

// PutBytes appends p verbatim. An empty slice is a no-op.
func (a *ByteArgs) PutBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := a.ensure(len(p)); err != nil {
		return err
	}
	copy(a.buf[a.cur:], p)
	a.cur += len(p)
	return nil
}

// PutColor appends a color as exactly three bytes, red green blue, each
// scaled from the 0.0-1.0 float component to 0-255 by truncation, the
// scale the hardware expects (0.5 is 127, not 128). Alpha is never
// written.
func (a *ByteArgs) PutColor(c colorful.Color) error {
	if err := a.ensure(3); err != nil {
		return err
	}
	clamped := c.Clamped()
	a.buf[a.cur+0] = byte(clamped.R * 255)
	a.buf[a.cur+1] = byte(clamped.G * 255)
	a.buf[a.cur+2] = byte(clamped.B * 255)
	a.cur += 3
	return nil
}

// PutOpcode appends the single protocol byte of an opcode-bearing value.
func (a *ByteArgs) PutOpcode(op Opcode) error {
	return a.PutByte(op.Opcode())
}

// PutPacked appends v in the given fixed-width format. A value that does
// not fit the format is an error, never a truncation.
func (a *ByteArgs) PutPacked(v uint64, f Format) error {
	w := f.width()
	if w == 0 {
		return fmt.Errorf("%w: unknown format %s", ErrValueRange, f)
	}
	if v > f.max() {
		return fmt.Errorf("%w: %d does not fit %s", ErrValueRange, v, f)
	}
	if err := a.ensure(w); err != nil {
		return err
	}
	switch f {
	case U8:
		a.buf[a.cur] = byte(v)
	case U16:
		binary.LittleEndian.PutUint16(a.buf[a.cur:], uint16(v))
	case U16BE:
		binary.BigEndian.PutUint16(a.buf[a.cur:], uint16(v))
	case U32:
		binary.LittleEndian.PutUint32(a.buf[a.cur:], uint32(v))
	case U32BE:
		binary.BigEndian.PutUint32(a.buf[a.cur:], uint32(v))
	}
	a.cur += w
	return nil
}

// PutAll appends every value in the same format. The whole call is atomic:
// capacity and range are checked up front, so a failure writes nothing.
func (a *ByteArgs) PutAll(f Format, values ...uint64) error {
	w := f.width()
	if w == 0 {
		return fmt.Errorf("%w: unknown format %s", ErrValueRange, f)
	}
	for _, v := range values {
		if v > f.max() {
			return fmt.Errorf("%w: %d does not fit %s", ErrValueRange, v, f)
		}
	}
	if err := a.ensure(w * len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := a.PutPacked(v, f); err != nil {
			return err
		}
	}
	return nil
}
