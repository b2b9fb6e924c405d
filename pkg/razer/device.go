package razer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/seagrayinc/razerctl/internal/hid"
	"github.com/seagrayinc/razerctl/internal/hwdb"
	"github.com/seagrayinc/razerctl/internal/protocol"
)

// Mode is the device operating mode, class 0x00 id 0x04/0x84.
type Mode byte

const (
	ModeNormal Mode = 0x00
	ModeDriver Mode = 0x03
)

// Opcode implements protocol.Opcode.
func (m Mode) Opcode() byte { return byte(m) }

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDriver:
		return "driver"
	}
	return fmt.Sprintf("Mode(0x%02X)", byte(m))
}

// Device pairs a session with the hardware-database entry for the model,
// applying per-model quirks (transaction ids, extended commands) to every
// report it issues.
type Device struct {
	session   *Session
	model     hwdb.Model
	productID uint16

	transactionID byte
}

// Open looks the product up in the database, opens its HID handle and
// wraps it in a Device. Unsupported products are rejected before any I/O.
func Open(mgr hid.Manager, db *hwdb.DB, productID uint16, log *slog.Logger) (*Device, error) {
	model, ok := db.Lookup(productID)
	if !ok {
		return nil, fmt.Errorf("unsupported device 0x%04X", productID)
	}

	h, err := mgr.OpenVIDPID(VendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", model.Name, err)
	}
	return NewDevice(NewSession(h, log), productID, model), nil
}

// NewDevice builds a Device over an existing session. Used directly by
// tests and by callers that do their own enumeration.
func NewDevice(session *Session, productID uint16, model hwdb.Model) *Device {
	tid := byte(protocol.DefaultTransactionID)
	if model.HasQuirk(hwdb.QuirkTransaction3F) {
		tid = 0x3F
	}
	return &Device{
		session:       session,
		model:         model,
		productID:     productID,
		transactionID: tid,
	}
}

// Close releases the underlying handle.
func (d *Device) Close() error { return d.session.Close() }

// Model returns the hardware-database entry.
func (d *Device) Model() hwdb.Model { return d.model }

// ProductID returns the USB product id.
func (d *Device) ProductID() uint16 { return d.productID }

func (d *Device) newReport(c Command) *protocol.Report {
	r := c.NewReport()
	r.SetTransactionID(d.transactionID)
	return r
}

// run builds a report for c, fills its arguments via build (which may be
// nil) and executes it.
func (d *Device) run(ctx context.Context, c Command, build func(*protocol.Report) error) (protocol.Response, error) {
	r := d.newReport(c)
	if build != nil {
		if err := build(r); err != nil {
			return protocol.Response{}, fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return d.session.Run(ctx, c.Name, r)
}

// FirmwareVersion queries the firmware revision, formatted "vMAJOR.MINOR".
func (d *Device) FirmwareVersion(ctx context.Context) (string, error) {
	resp, err := d.run(ctx, GetFirmware, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Data) < 2 {
		return "", fmt.Errorf("%s: truncated reply (%d bytes)", GetFirmware, len(resp.Data))
	}
	return fmt.Sprintf("v%d.%d", resp.Data[0], resp.Data[1]), nil
}

// SerialNumber queries the serial string, with NUL padding stripped.
func (d *Device) SerialNumber(ctx context.Context) (string, error) {
	resp, err := d.run(ctx, GetSerial, nil)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(resp.Data, "\x00")), nil
}

// DeviceMode queries the current operating mode.
func (d *Device) DeviceMode(ctx context.Context) (Mode, error) {
	resp, err := d.run(ctx, GetDeviceMode, nil)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 1 {
		return 0, fmt.Errorf("%s: empty reply", GetDeviceMode)
	}
	return Mode(resp.Data[0]), nil
}

// SetMode switches between normal and driver mode.
func (d *Device) SetMode(ctx context.Context, m Mode) error {
	_, err := d.run(ctx, SetDeviceMode, func(r *protocol.Report) error {
		if err := r.PutOpcode(m); err != nil {
			return err
		}
		return r.PutByte(0x00)
	})
	return err
}

// ledArgs writes the (store, led) prefix every LED command starts with.
func ledArgs(r *protocol.Report, led LEDType) error {
	if err := r.PutOpcode(VarStorage); err != nil {
		return err
	}
	return r.PutOpcode(led)
}

// LEDState reports whether a zone is lit.
func (d *Device) LEDState(ctx context.Context, led LEDType) (bool, error) {
	resp, err := d.run(ctx, GetLEDState, func(r *protocol.Report) error {
		return ledArgs(r, led)
	})
	if err != nil {
		return false, err
	}
	if len(resp.Data) < 3 {
		return false, fmt.Errorf("%s: truncated reply", GetLEDState)
	}
	return resp.Data[2] != 0, nil
}

// SetLEDState switches a zone on or off.
func (d *Device) SetLEDState(ctx context.Context, led LEDType, on bool) error {
	_, err := d.run(ctx, SetLEDState, func(r *protocol.Report) error {
		if err := ledArgs(r, led); err != nil {
			return err
		}
		var v byte
		if on {
			v = 1
		}
		return r.PutByte(v)
	})
	return err
}

// LEDColor queries the static color of a zone.
func (d *Device) LEDColor(ctx context.Context, led LEDType) (colorful.Color, error) {
	resp, err := d.run(ctx, GetLEDColor, func(r *protocol.Report) error {
		return ledArgs(r, led)
	})
	if err != nil {
		return colorful.Color{}, err
	}
	if len(resp.Data) < 5 {
		return colorful.Color{}, fmt.Errorf("%s: truncated reply", GetLEDColor)
	}
	return colorful.Color{
		R: float64(resp.Data[2]) / 255.0,
		G: float64(resp.Data[3]) / 255.0,
		B: float64(resp.Data[4]) / 255.0,
	}, nil
}

// SetLEDColor sets the static color of a zone.
func (d *Device) SetLEDColor(ctx context.Context, led LEDType, c colorful.Color) error {
	_, err := d.run(ctx, SetLEDColor, func(r *protocol.Report) error {
		if err := ledArgs(r, led); err != nil {
			return err
		}
		return r.PutColor(c)
	})
	return err
}

// LEDMode queries the animation mode of a zone.
func (d *Device) LEDMode(ctx context.Context, led LEDType) (LEDMode, error) {
	resp, err := d.run(ctx, GetLEDMode, func(r *protocol.Report) error {
		return ledArgs(r, led)
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 3 {
		return 0, fmt.Errorf("%s: truncated reply", GetLEDMode)
	}
	return LEDMode(resp.Data[2]), nil
}

// SetLEDMode sets the animation mode of a zone.
func (d *Device) SetLEDMode(ctx context.Context, led LEDType, mode LEDMode) error {
	_, err := d.run(ctx, SetLEDMode, func(r *protocol.Report) error {
		if err := ledArgs(r, led); err != nil {
			return err
		}
		return r.PutOpcode(mode)
	})
	return err
}

// brightnessCommands picks the standard or extended opcode pair for the
// model.
func (d *Device) brightnessCommands() (get, set Command) {
	if d.model.HasQuirk(hwdb.QuirkExtendedFX) {
		return GetLEDBrightnessExt, SetLEDBrightnessExt
	}
	return GetLEDBrightness, SetLEDBrightness
}

// LEDBrightness queries a zone's brightness, 0-255.
func (d *Device) LEDBrightness(ctx context.Context, led LEDType) (byte, error) {
	get, _ := d.brightnessCommands()
	resp, err := d.run(ctx, get, func(r *protocol.Report) error {
		return ledArgs(r, led)
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 3 {
		return 0, fmt.Errorf("%s: truncated reply", get)
	}
	return resp.Data[2], nil
}

// SetLEDBrightness sets a zone's brightness, 0-255.
func (d *Device) SetLEDBrightness(ctx context.Context, led LEDType, value byte) error {
	_, set := d.brightnessCommands()
	_, err := d.run(ctx, set, func(r *protocol.Report) error {
		if err := ledArgs(r, led); err != nil {
			return err
		}
		return r.PutByte(value)
	})
	return err
}

// SetEffect activates a built-in lighting effect with optional raw
// arguments (effect-specific speeds, directions or colors).
func (d *Device) SetEffect(ctx context.Context, fx Effect, args ...byte) error {
	_, err := d.run(ctx, SetEffect, func(r *protocol.Report) error {
		if err := r.PutOpcode(fx); err != nil {
			return err
		}
		return r.PutBytes(args)
	})
	return err
}
