package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/razerctl/pkg/razer"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show firmware, serial and mode of a device",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		ctx := cmd.Context()
		model := dev.Model()

		fmt.Printf("model:    %s (%s)\n", model.Name, model.Type)
		fmt.Printf("usb id:   %04x:%04x\n", razer.VendorID, dev.ProductID())

		if fw, err := dev.FirmwareVersion(ctx); err == nil {
			fmt.Printf("firmware: %s\n", fw)
		} else {
			fmt.Printf("firmware: unavailable (%v)\n", err)
		}
		if serial, err := dev.SerialNumber(ctx); err == nil {
			fmt.Printf("serial:   %s\n", serial)
		} else {
			fmt.Printf("serial:   unavailable (%v)\n", err)
		}
		if mode, err := dev.DeviceMode(ctx); err == nil {
			fmt.Printf("mode:     %s\n", mode)
		}
		if model.Matrix != nil {
			fmt.Printf("matrix:   %dx%d\n", model.Matrix.Rows, model.Matrix.Cols)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
