// Package protocol implements the Razer Chroma HID report codec: 90-byte
// request/response frames with an XOR checksum, the argument buffer used
// to fill them, and the device status codes carried in replies.
//
// The frame layout is fixed:
//
//	Byte        Contents
//	---------   ----------------------
//	0           Status code (zero on requests)
//	1           Transaction id
//	2 - 3       Remaining packets (little-endian)
//	4           Protocol type
//	5           Data size
//	6           Command class
//	7           Command id
//	8 - 87      Argument data
//	88          CRC (XOR of bytes 1-87)
//	89          Reserved, zero
package protocol

import (
	"encoding/binary"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// ReportSize is the total length of every frame on the wire.
	ReportSize = 90
	// DataSize is the capacity of the argument region.
	DataSize = 80

	// DefaultTransactionID is used unless a model quirk requires another.
	DefaultTransactionID = 0xFF

	offStatus      = 0
	offTransaction = 1
	offRemaining   = 2
	offProtocol    = 4
	offDataSize    = 5
	offClass       = 6
	offCommand     = 7
	offData        = 8
	offCRC         = 88
)

// Checksum returns the XOR reduction of buf.
func Checksum(buf []byte) byte {
	var c byte
	for _, b := range buf {
		c ^= b
	}
	return c
}

// Report builds one outbound command frame. Header fields are set at
// construction or through setters; argument bytes accumulate in an owned
// ByteArgs of DataSize capacity. A Report is not safe for concurrent
// mutation; callers run one instance per in-flight transaction.
type Report struct {
	class byte
	id    byte

	transactionID byte
	remaining     uint16
	protocolType  byte

	// Declared data size for models that expect a fixed, padded length.
	// Negative means "report however many bytes were actually written".
	dataSize int

	args *ByteArgs
}

// NewReport creates a frame for the given command class and id with the
// default transaction id and a computed data size.
func NewReport(class, id byte) *Report {
	return &Report{
		class:         class,
		id:            id,
		transactionID: DefaultTransactionID,
		dataSize:      -1,
		args:          NewByteArgs(DataSize),
	}
}

// SetTransactionID overrides the transaction id header byte.
func (r *Report) SetTransactionID(id byte) { r.transactionID = id }

// TransactionID returns the transaction id that Pack will emit.
func (r *Report) TransactionID() byte { return r.transactionID }

// SetDataSize fixes the declared argument length, independent of how many
// bytes are actually written. Some commands expect a padded length.
func (r *Report) SetDataSize(n int) error {
	if n < 0 || n > DataSize {
		return fmt.Errorf("%w: declared data size %d", ErrValueRange, n)
	}
	r.dataSize = n
	return nil
}

// SetRemainingPackets sets the two-byte continuation counter. Multi-frame
// sequences are managed by the caller; the codec only carries the field.
func (r *Report) SetRemainingPackets(n uint16) { r.remaining = n }

// RemainingPackets returns the continuation counter.
func (r *Report) RemainingPackets() uint16 { return r.remaining }

// Args exposes the argument buffer for direct use.
func (r *Report) Args() *ByteArgs { return r.args }

// ArgsSize returns the number of argument bytes written so far.
func (r *Report) ArgsSize() int { return r.args.Len() }

// Clear empties the argument region and resets the continuation counter
// so the frame can be reused for the next transaction. Command class, id
// and transaction id survive.
func (r *Report) Clear() {
	r.args.Clear()
	r.remaining = 0
}

// PutByte appends one argument byte.
func (r *Report) PutByte(v byte) error { return r.args.PutByte(v) }

// PutUint16 appends a little-endian 16-bit argument.
func (r *Report) PutUint16(v uint16) error { return r.args.PutUint16(v) }

// PutUint16BE appends a big-endian 16-bit argument.
func (r *Report) PutUint16BE(v uint16) error { return r.args.PutUint16BE(v) }

// PutRGB appends three raw color bytes.
func (r *Report) PutRGB(red, green, blue byte) error {
	return r.args.PutBytes([]byte{red, green, blue})
}

// PutColor appends a float color as three scaled RGB bytes.
func (r *Report) PutColor(c colorful.Color) error { return r.args.PutColor(c) }

// PutBytes appends raw argument bytes.
func (r *Report) PutBytes(p []byte) error { return r.args.PutBytes(p) }

// PutOpcode appends the protocol byte of an opcode-bearing value.
func (r *Report) PutOpcode(op Opcode) error { return r.args.PutOpcode(op) }

func (r *Report) declaredSize() byte {
	if r.dataSize >= 0 {
		return byte(r.dataSize)
	}
	return byte(r.args.Len())
}

// Pack serializes the frame. The checksum is computed from scratch over
// bytes [1, 88) on every call; packing is pure with respect to the
// report's state and may be repeated, e.g. when resending after BUSY.
func (r *Report) Pack() []byte {
	buf := make([]byte, ReportSize)
	buf[offTransaction] = r.transactionID
	binary.LittleEndian.PutUint16(buf[offRemaining:], r.remaining)
	buf[offProtocol] = r.protocolType
	buf[offDataSize] = r.declaredSize()
	buf[offClass] = r.class
	buf[offCommand] = r.id
	copy(buf[offData:offData+DataSize], r.args.Bytes())
	buf[offCRC] = Checksum(buf[offTransaction:offCRC])
	return buf
}

// Response is the decoded form of one inbound frame.
type Response struct {
	Status           Status
	TransactionID    byte
	RemainingPackets uint16
	ProtocolType     byte
	CommandClass     byte
	CommandID        byte

	// Data is the argument region truncated to the declared length.
	Data []byte
}

// ParseResponse decodes a received frame. The input must be exactly
// ReportSize bytes; anything else is an ErrBadLength, there is no
// tolerance for truncated reads. A frame whose stored CRC does not match
// the computed one decodes with StatusBadCRC in place of a claimed OK.
// The decode is pure: buf is copied, nothing else is touched.
func ParseResponse(buf []byte) (Response, error) {
	if len(buf) != ReportSize {
		return Response{}, fmt.Errorf("%w: got %d bytes, want %d", ErrBadLength, len(buf), ReportSize)
	}
	size := int(buf[offDataSize])
	if size > DataSize {
		return Response{}, fmt.Errorf("%w: declared data size %d exceeds %d", ErrBadLength, size, DataSize)
	}

	resp := Response{
		Status:           StatusFromByte(buf[offStatus]),
		TransactionID:    buf[offTransaction],
		RemainingPackets: binary.LittleEndian.Uint16(buf[offRemaining:]),
		ProtocolType:     buf[offProtocol],
		CommandClass:     buf[offClass],
		CommandID:        buf[offCommand],
		Data:             make([]byte, size),
	}
	copy(resp.Data, buf[offData:offData+size])

	if resp.Status == StatusOK && buf[offCRC] != Checksum(buf[offTransaction:offCRC]) {
		resp.Status = StatusBadCRC
	}
	return resp, nil
}
