// Package razer implements the command layer of the Razer Chroma HID
// protocol on top of the report codec in internal/protocol: the known
// command opcodes, LED and effect enumerations, and the session logic
// that exchanges report frames with an open device.
package razer

// VendorID is Razer's USB vendor id.
const VendorID uint16 = 0x1532

// Feature report ids used for the control exchange. The request goes out
// as a set-feature on id 2, the reply comes back as a get-feature on id 0.
const (
	RequestReportID  byte = 0x02
	ResponseReportID byte = 0x00
)
