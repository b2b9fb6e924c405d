package razer

import (
	"fmt"

	"github.com/seagrayinc/razerctl/internal/protocol"
)

// Command identifies one hardware operation: a command class, an id
// within the class, and the declared data size the hardware expects in
// the report's length byte. A negative DataSize means the length is
// computed from the bytes actually written (variable-size commands).
type Command struct {
	Class    byte
	ID       byte
	DataSize int
	Name     string
}

func (c Command) String() string { return c.Name }

// NewReport builds a report frame for this command with its declared
// data size applied.
func (c Command) NewReport() *protocol.Report {
	r := protocol.NewReport(c.Class, c.ID)
	if c.DataSize >= 0 {
		if err := r.SetDataSize(c.DataSize); err != nil {
			// The command tables below are package constants; a size
			// outside the argument region is a programming error.
			panic(fmt.Sprintf("razer: bad data size for %s: %v", c.Name, err))
		}
	}
	return r
}

// Class 0x00 - device info and control.
var (
	GetFirmware    = Command{0x00, 0x81, 2, "GET_FIRMWARE"}
	GetSerial      = Command{0x00, 0x82, 22, "GET_SERIAL"}
	SetDeviceMode  = Command{0x00, 0x04, 2, "SET_DEVICE_MODE"}
	GetDeviceMode  = Command{0x00, 0x84, 2, "GET_DEVICE_MODE"}
	SetPollingRate = Command{0x00, 0x05, 1, "SET_POLLING_RATE"}
	GetPollingRate = Command{0x00, 0x85, 1, "GET_POLLING_RATE"}
)

// Class 0x03 - standard LED and effect control.
var (
	SetLEDState      = Command{0x03, 0x00, 3, "SET_LED_STATE"}
	SetLEDColor      = Command{0x03, 0x01, 5, "SET_LED_COLOR"}
	SetLEDMode       = Command{0x03, 0x02, 3, "SET_LED_MODE"}
	SetLEDBrightness = Command{0x03, 0x03, 3, "SET_LED_BRIGHTNESS"}

	GetLEDState      = Command{0x03, 0x80, 3, "GET_LED_STATE"}
	GetLEDColor      = Command{0x03, 0x81, 5, "GET_LED_COLOR"}
	GetLEDMode       = Command{0x03, 0x82, 3, "GET_LED_MODE"}
	GetLEDBrightness = Command{0x03, 0x83, 3, "GET_LED_BRIGHTNESS"}

	SetEffect          = Command{0x03, 0x0A, -1, "SET_EFFECT"}
	SetFrameDataMatrix = Command{0x03, 0x0B, -1, "SET_FRAME_DATA_MATRIX"}
	SetFrameDataSingle = Command{0x03, 0x0C, -1, "SET_FRAME_DATA_SINGLE"}
)

// Class 0x0F - extended matrix controls, newer models only.
var (
	SetLEDBrightnessExt = Command{0x0F, 0x04, 3, "SET_LED_BRIGHTNESS_EXT"}
	GetLEDBrightnessExt = Command{0x0F, 0x84, 3, "GET_LED_BRIGHTNESS_EXT"}
)
