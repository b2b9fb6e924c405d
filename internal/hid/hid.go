// Package hid abstracts the HID backends used to reach Razer hardware.
package hid

// Device is an opened HID handle. Razer control traffic runs entirely
// over feature reports: the request frame is written with a set-feature
// on the request report id and the reply is read back with a get-feature
// on report id 0.
type Device interface {
	SendFeatureReport(reportID byte, data []byte) error
	GetFeatureReport(reportID byte) ([]byte, error)
	Close() error
}

// Info describes an enumerated HID device.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the backend selected at build time.
func NewManager() (Manager, error) {
	return newManager()
}
