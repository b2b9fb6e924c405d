package razer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/seagrayinc/razerctl/internal/protocol"
)

func TestIsDeviceError(t *testing.T) {
	de := &DeviceError{Command: "SET_EFFECT", Status: protocol.StatusUnsupported}

	if !IsDeviceError(de) {
		t.Fatal("bare DeviceError not recognized")
	}
	// Errors travel up through fmt.Errorf wrapping.
	if !IsDeviceError(fmt.Errorf("set effect: %w", de)) {
		t.Fatal("wrapped DeviceError not recognized")
	}
	if IsDeviceError(errors.New("set effect: device unplugged")) {
		t.Fatal("unrelated error recognized as DeviceError")
	}
	if IsDeviceError(nil) {
		t.Fatal("nil recognized as DeviceError")
	}
}
