package protocol

import "testing"

func TestStatusValues(t *testing.T) {
	tests := []struct {
		status Status
		raw    byte
	}{
		{StatusUnknown, 0x00},
		{StatusBusy, 0x01},
		{StatusOK, 0x02},
		{StatusFail, 0x03},
		{StatusTimeout, 0x04},
		{StatusUnsupported, 0x05},
		{StatusBadCRC, 0xFE},
		{StatusOSError, 0xFF},
	}

	for _, tt := range tests {
		if tt.status != Status(tt.raw) {
			t.Errorf("%v != 0x%02X", tt.status, tt.raw)
		}
		if got := StatusFromByte(tt.raw); got != tt.status {
			t.Errorf("StatusFromByte(0x%02X) = %v, want %v", tt.raw, got, tt.status)
		}
	}

	if StatusBusy == Status(0x02) {
		t.Error("BUSY compares equal to the OK byte value")
	}
}

func TestStatusFromByte_UnrecognizedCollapsesToUnknown(t *testing.T) {
	for _, b := range []byte{0x06, 0x10, 0x80, 0xFD} {
		if got := StatusFromByte(b); got != StatusUnknown {
			t.Errorf("StatusFromByte(0x%02X) = %v, want UNKNOWN", b, got)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusOK.OK() || StatusFail.OK() {
		t.Error("OK predicate wrong")
	}
	for _, s := range []Status{StatusBusy, StatusTimeout} {
		if !s.Retryable() {
			t.Errorf("%v should be retryable", s)
		}
	}
	for _, s := range []Status{StatusOK, StatusFail, StatusUnsupported, StatusBadCRC, StatusOSError, StatusUnknown} {
		if s.Retryable() {
			t.Errorf("%v should not be retryable", s)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusBadCRC.String() != "BAD_CRC" {
		t.Errorf("String() = %q", StatusBadCRC.String())
	}
	if Status(0x42).String() != "Status(0x42)" {
		t.Errorf("String() = %q", Status(0x42).String())
	}
}
