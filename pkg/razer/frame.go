package razer

import (
	"context"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/seagrayinc/razerctl/internal/hwdb"
	"github.com/seagrayinc/razerctl/internal/protocol"
)

// DefaultFrameID addresses the active frame buffer on matrix devices.
const DefaultFrameID byte = 0xFF

// frameTransactionID returns the transaction id custom-frame data must
// carry on this model.
func (d *Device) frameTransactionID() byte {
	if d.model.HasQuirk(hwdb.QuirkCustomFrame80) {
		return 0x80
	}
	return protocol.DefaultTransactionID
}

// SetCustomFrame streams a full key-matrix frame, one report per row,
// then activates the custom effect so the hardware latches it. The
// remaining-packets field counts down across the row reports; the device
// only acknowledges the final one.
func (d *Device) SetCustomFrame(ctx context.Context, rows [][]colorful.Color) error {
	if len(rows) == 0 {
		return fmt.Errorf("custom frame: no rows")
	}
	if m := d.model.Matrix; m != nil {
		if len(rows) > m.Rows {
			return fmt.Errorf("custom frame: %d rows exceed matrix height %d", len(rows), m.Rows)
		}
		for i, row := range rows {
			if len(row) > m.Cols {
				return fmt.Errorf("custom frame: row %d has %d columns, matrix width is %d", i, len(row), m.Cols)
			}
		}
	}

	// Empty rows send nothing, so the countdown runs over the rows that
	// actually go on the wire; otherwise the last report would claim
	// more packets follow and the device would never latch.
	var send []int
	for i, row := range rows {
		if len(row) > 0 {
			send = append(send, i)
		}
	}
	if len(send) == 0 {
		return fmt.Errorf("custom frame: all rows empty")
	}

	for n, i := range send {
		row := rows[i]

		c := SetFrameDataMatrix
		r := protocol.NewReport(c.Class, c.ID)
		r.SetTransactionID(d.frameTransactionID())
		r.SetRemainingPackets(uint16(len(send) - 1 - n))

		if err := r.PutByte(DefaultFrameID); err != nil {
			return err
		}
		if err := r.PutByte(byte(i)); err != nil {
			return err
		}
		if err := r.PutByte(0); err != nil {
			return err
		}
		if err := r.PutByte(byte(len(row) - 1)); err != nil {
			return err
		}
		for _, col := range row {
			if err := r.PutColor(col); err != nil {
				return fmt.Errorf("custom frame row %d: %w", i, err)
			}
		}

		if _, err := d.session.Run(ctx, c.Name, r); err != nil {
			return err
		}
	}

	return d.SetEffect(ctx, EffectCustom, 0x00)
}

// SetSingleRowFrame writes one row of color data on devices without a
// full matrix (mousepads, mice with LED strips).
func (d *Device) SetSingleRowFrame(ctx context.Context, row []colorful.Color) error {
	if len(row) == 0 {
		return fmt.Errorf("single-row frame: no colors")
	}

	c := SetFrameDataSingle
	r := protocol.NewReport(c.Class, c.ID)
	r.SetTransactionID(d.frameTransactionID())

	if err := r.PutByte(DefaultFrameID); err != nil {
		return err
	}
	if err := r.PutByte(0); err != nil {
		return err
	}
	if err := r.PutByte(byte(len(row) - 1)); err != nil {
		return err
	}
	for _, col := range row {
		if err := r.PutColor(col); err != nil {
			return fmt.Errorf("single-row frame: %w", err)
		}
	}

	if _, err := d.session.Run(ctx, c.Name, r); err != nil {
		return err
	}
	return d.SetEffect(ctx, EffectCustom, 0x00)
}
