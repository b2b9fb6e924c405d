package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/razerctl/internal/hid"
	"github.com/seagrayinc/razerctl/internal/hwdb"
	"github.com/seagrayinc/razerctl/pkg/razer"
)

var (
	verbose   bool
	productID uint16
)

var rootCmd = &cobra.Command{
	Use:   "razerctl",
	Short: "Control Razer Chroma devices over HID",
	Long: `razerctl talks to Razer Chroma hardware directly over USB HID
feature reports: device info, LED zones, built-in effects and custom
key-matrix frames.

Devices are matched against a built-in hardware database. With no
--device flag the first supported device found is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Uint16VarP(&productID, "device", "d", 0, "USB product id of the device to use (0 = first supported)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "razerctl: %v\n", err)
	}
	return err
}

// openDevice finds and opens the target device.
func openDevice() (*razer.Device, error) {
	db, err := hwdb.Load()
	if err != nil {
		return nil, err
	}
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, err
	}

	pid := productID
	if pid == 0 {
		infos, err := listRazerDevices(mgr, db)
		if err != nil {
			return nil, err
		}
		if len(infos) == 0 {
			return nil, fmt.Errorf("no supported Razer device found")
		}
		pid = infos[0].ProductID
	}

	return razer.Open(mgr, db, pid, slog.Default())
}

// listRazerDevices enumerates attached devices present in the hardware
// database, falling back to libusb when the HID backend cannot list.
func listRazerDevices(mgr hid.Manager, db *hwdb.DB) ([]hid.Info, error) {
	infos, err := mgr.List()
	if err != nil {
		slog.Warn("HID enumeration failed, trying libusb", slog.Any("error", err))
		infos, err = fallbackEnumerate()
		if err != nil {
			return nil, err
		}
	}

	var out []hid.Info
	seen := map[uint16]bool{}
	for _, info := range infos {
		if info.VendorID != razer.VendorID || seen[info.ProductID] {
			continue
		}
		if _, ok := db.Lookup(info.ProductID); !ok {
			continue
		}
		seen[info.ProductID] = true
		out = append(out, info)
	}
	return out, nil
}
