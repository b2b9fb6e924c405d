package protocol

import "fmt"

// Status is the single-byte outcome code the hardware places at offset 0
// of a response frame.
type Status byte

const (
	StatusUnknown     Status = 0x00
	StatusBusy        Status = 0x01
	StatusOK          Status = 0x02
	StatusFail        Status = 0x03
	StatusTimeout     Status = 0x04
	StatusUnsupported Status = 0x05
	StatusBadCRC      Status = 0xFE
	StatusOSError     Status = 0xFF
)

// StatusFromByte maps a raw status byte to its Status value. Bytes outside
// the documented set collapse to StatusUnknown; the mapping is total and
// never an error.
func StatusFromByte(b byte) Status {
	switch s := Status(b); s {
	case StatusBusy, StatusOK, StatusFail, StatusTimeout,
		StatusUnsupported, StatusBadCRC, StatusOSError:
		return s
	}
	return StatusUnknown
}

// OK reports whether the transaction succeeded.
func (s Status) OK() bool { return s == StatusOK }

// Retryable reports whether the device asked for the command to be resent.
func (s Status) Retryable() bool { return s == StatusBusy || s == StatusTimeout }

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "UNKNOWN"
	case StatusBusy:
		return "BUSY"
	case StatusOK:
		return "OK"
	case StatusFail:
		return "FAIL"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusUnsupported:
		return "UNSUPPORTED"
	case StatusBadCRC:
		return "BAD_CRC"
	case StatusOSError:
		return "OS_ERROR"
	}
	return fmt.Sprintf("Status(0x%02X)", byte(s))
}
