package razer

import (
	"errors"
	"fmt"

	"github.com/seagrayinc/razerctl/internal/protocol"
)

// DeviceError is returned when the hardware answers a command with a
// terminal status, or keeps answering BUSY/TIMEOUT after all retries.
type DeviceError struct {
	Command string
	Status  protocol.Status
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%02X)", e.Command, e.Status, byte(e.Status))
}

// IsDeviceError reports whether err is or wraps a DeviceError.
func IsDeviceError(err error) bool {
	var de *DeviceError
	return errors.As(err, &de)
}
