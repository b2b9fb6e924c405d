// Package razerusb enumerates Razer hardware through libusb. It backs up
// the hidraw-based manager: on hosts where udev rules hide the hidraw
// nodes the USB descriptors are usually still readable, which is enough
// to tell the user which supported devices are attached.
package razerusb

import (
	"fmt"

	"github.com/karalabe/usb"

	"github.com/seagrayinc/razerctl/internal/hid"
)

// VendorID is Razer's USB vendor id.
const VendorID uint16 = 0x1532

// Supported reports whether libusb enumeration is available on this
// platform and build.
func Supported() bool {
	return usb.Supported()
}

// Enumerate lists Razer HID interfaces via libusb.
func Enumerate() ([]hid.Info, error) {
	infos, err := usb.EnumerateHid(VendorID, 0)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}

	out := make([]hid.Info, 0, len(infos))
	for _, d := range infos {
		// A device exposes one HID interface per function (keyboard,
		// media keys, control). Interface 0 carries the control
		// endpoint we care about; the rest are duplicates for listing
		// purposes.
		if d.Interface != 0 {
			continue
		}
		out = append(out, hid.Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Product:      d.Product,
			Manufacturer: d.Manufacturer,
		})
	}
	return out, nil
}
