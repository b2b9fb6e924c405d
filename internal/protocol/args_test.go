package protocol

import (
	"bytes"
	"errors"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestByteArgs_SingleByteCapacity(t *testing.T) {
	a := NewByteArgs(1)
	if err := a.PutByte(0x42); err != nil {
		t.Fatalf("PutByte: %v", err)
	}
	if !bytes.Equal(a.Bytes(), []byte{0x42}) {
		t.Fatalf("buffer = %v, want [0x42]", a.Bytes())
	}
	if err := a.PutByte(0x01); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("second PutByte error = %v, want ErrNoSpace", err)
	}
}

func TestByteArgs_ZeroCapacity(t *testing.T) {
	a := NewByteArgs(0)
	if err := a.PutByte(0); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("PutByte error = %v, want ErrNoSpace", err)
	}
	if err := a.PutBytes(nil); err != nil {
		t.Fatalf("empty PutBytes should be a no-op, got %v", err)
	}
}

func TestByteArgs_OverflowIsAtomic(t *testing.T) {
	a := NewByteArgs(4)
	if err := a.PutUint16(0x0201); err != nil {
		t.Fatalf("PutUint16: %v", err)
	}

	before := append([]byte(nil), a.Bytes()...)
	cur := a.Len()

	// 4 bytes would land at offset 2..5, one past capacity.
	if err := a.PutUint32(0xDEADBEEF); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("PutUint32 error = %v, want ErrNoSpace", err)
	}
	if a.Len() != cur {
		t.Fatalf("cursor moved on failed put: %d != %d", a.Len(), cur)
	}
	if !bytes.Equal(a.Bytes(), before) {
		t.Fatalf("contents changed on failed put: %v != %v", a.Bytes(), before)
	}
}

func TestByteArgs_PutAllIsAtomic(t *testing.T) {
	a := NewByteArgs(3)
	if err := a.PutAll(U16, 1, 2); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("PutAll error = %v, want ErrNoSpace", err)
	}
	if a.Len() != 0 {
		t.Fatalf("cursor = %d after failed PutAll, want 0", a.Len())
	}
	if err := a.PutAll(U8, 1, 300); !errors.Is(err, ErrValueRange) {
		t.Fatalf("PutAll error = %v, want ErrValueRange", err)
	}
	if a.Len() != 0 {
		t.Fatalf("cursor = %d after out-of-range PutAll, want 0", a.Len())
	}
}

func TestByteArgs_ChainedOrderAndOffsets(t *testing.T) {
	a := NewByteArgs(16)
	if err := a.PutByte(0x01); err != nil {
		t.Fatal(err)
	}
	if err := a.PutUint16(0x0203); err != nil {
		t.Fatal(err)
	}
	if err := a.PutUint32(0x04050607); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x01, 0x03, 0x02, 0x07, 0x06, 0x05, 0x04}
	if !bytes.Equal(a.Bytes()[:7], want) {
		t.Fatalf("buffer = %v, want prefix %v", a.Bytes()[:7], want)
	}
	if a.Len() != 7 {
		t.Fatalf("cursor = %d, want 7", a.Len())
	}

	if err := a.PutByte(0xEE); err != nil {
		t.Fatal(err)
	}
	if a.Bytes()[7] != 0xEE {
		t.Fatalf("next put landed at wrong offset: %v", a.Bytes())
	}
}

func TestByteArgs_BigEndian(t *testing.T) {
	a := NewByteArgs(4)
	if err := a.PutUint16BE(0x0203); err != nil {
		t.Fatal(err)
	}
	if err := a.PutPacked(0x0405, U16BE); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x02, 0x03, 0x04, 0x05}
	if !bytes.Equal(a.Bytes(), want) {
		t.Fatalf("buffer = %v, want %v", a.Bytes(), want)
	}
}

func TestByteArgs_PutColor(t *testing.T) {
	a := NewByteArgs(8)
	// 0.5 and 0.25 separate truncation from rounding: 127 and 63, not
	// 128 and 64.
	c := colorful.Color{R: 1.0, G: 0.5, B: 0.25}
	if err := a.PutColor(c); err != nil {
		t.Fatal(err)
	}

	want := []byte{255, 127, 63}
	if !bytes.Equal(a.Bytes()[:3], want) {
		t.Fatalf("color bytes = %v, want %v", a.Bytes()[:3], want)
	}

	// Exactly three bytes: the next put lands at offset 3.
	if err := a.PutByte(0xAA); err != nil {
		t.Fatal(err)
	}
	if a.Bytes()[3] != 0xAA {
		t.Fatalf("next put landed at offset %d content %v", a.Len()-1, a.Bytes())
	}

	// Components outside 0.0-1.0 clamp instead of wrapping.
	b := NewByteArgs(3)
	if err := b.PutColor(colorful.Color{R: 1.5, G: -0.2, B: 1.0}); err != nil {
		t.Fatal(err)
	}
	if got := b.Bytes(); got[0] != 255 || got[1] != 0 || got[2] != 255 {
		t.Fatalf("clamped color bytes = %v, want [255 0 255]", got)
	}
}

type fakeOpcode byte

func (f fakeOpcode) Opcode() byte { return byte(f) }

func TestByteArgs_PutOpcode(t *testing.T) {
	a := NewByteArgs(2)
	if err := a.PutOpcode(fakeOpcode(0x05)); err != nil {
		t.Fatal(err)
	}
	if a.Bytes()[0] != 0x05 || a.Len() != 1 {
		t.Fatalf("opcode put wrote %v len %d", a.Bytes(), a.Len())
	}
}

func TestByteArgs_PutPackedRange(t *testing.T) {
	tests := []struct {
		name   string
		value  uint64
		format Format
		ok     bool
	}{
		{"u8 max", 255, U8, true},
		{"u8 overflow", 256, U8, false},
		{"u16 max", 65535, U16, true},
		{"u16 overflow", 65536, U16BE, false},
		{"u32 max", 1<<32 - 1, U32, true},
		{"u32 overflow", 1 << 32, U32BE, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewByteArgs(8)
			err := a.PutPacked(tt.value, tt.format)
			if tt.ok && err != nil {
				t.Fatalf("PutPacked: %v", err)
			}
			if !tt.ok {
				if !errors.Is(err, ErrValueRange) {
					t.Fatalf("error = %v, want ErrValueRange", err)
				}
				if a.Len() != 0 {
					t.Fatalf("cursor moved on rejected value")
				}
			}
		})
	}
}

func TestByteArgs_Clear(t *testing.T) {
	a := NewByteArgs(4)
	if err := a.PutAll(U8, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("cursor = %d after Clear, want 0", a.Len())
	}
	if err := a.PutByte(0xAA); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), []byte{0xAA, 0, 0, 0}) {
		t.Fatalf("residual bytes after Clear: %v", a.Bytes())
	}
}

func TestWrap(t *testing.T) {
	data := []byte{9, 8, 7}
	a := Wrap(data)
	if a.Size() != 3 || a.Len() != 0 {
		t.Fatalf("Wrap: size %d cursor %d", a.Size(), a.Len())
	}
	// Appends overwrite from the front; wrapping is a view, not a seek.
	if err := a.PutByte(1); err != nil {
		t.Fatal(err)
	}
	if data[0] != 1 {
		t.Fatalf("Wrap did not alias caller bytes: %v", data)
	}
}
