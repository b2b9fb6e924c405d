//go:build windows || hidapi

package hid

// hidapi backend via sstallion/go-hid. This is the only backend on
// Windows; on other platforms it can be selected with -tags hidapi when
// the hidraw path is unavailable.

import (
	"fmt"

	sshid "github.com/sstallion/go-hid"
)

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := sshid.Init(); err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	var out []Info
	err := sshid.Enumerate(sshid.VendorIDAny, sshid.ProductIDAny, func(info *sshid.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type hidapiDevice struct{ d *sshid.Device }

func (m *hidapiManager) Open(info Info) (Device, error) {
	d, err := sshid.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

func (m *hidapiManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := sshid.OpenFirst(vendorID, productID)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

func (d *hidapiDevice) SendFeatureReport(reportID byte, data []byte) error {
	buf := make([]byte, len(data)+1)
	buf[0] = reportID
	copy(buf[1:], data)
	_, err := d.d.SendFeatureReport(buf)
	return err
}

func (d *hidapiDevice) GetFeatureReport(reportID byte) ([]byte, error) {
	// hidapi prefixes the report id; callers want the bare frame.
	buf := make([]byte, 256+1)
	buf[0] = reportID
	n, err := d.d.GetFeatureReport(buf)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, nil
	}
	return buf[1:n], nil
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
