package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/razerctl/internal/hid"
	"github.com/seagrayinc/razerctl/internal/hwdb"
	"github.com/seagrayinc/razerctl/internal/razerusb"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached Razer devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := hwdb.Load()
		if err != nil {
			return err
		}
		mgr, err := hid.NewManager()
		if err != nil {
			return err
		}

		var infos []hid.Info
		if listAll {
			infos, err = mgr.List()
			if err != nil {
				return err
			}
		} else {
			infos, err = listRazerDevices(mgr, db)
			if err != nil {
				return err
			}
		}

		if len(infos) == 0 {
			fmt.Println("no Razer devices found")
			return nil
		}
		for _, info := range infos {
			if info.VendorID != razerusb.VendorID && !listAll {
				continue
			}
			name := info.Product
			kind := ""
			if m, ok := db.Lookup(info.ProductID); ok && info.VendorID == razerusb.VendorID {
				name = m.Name
				kind = string(m.Type)
			}
			fmt.Printf("%04x:%04x  %-30s %s\n", info.VendorID, info.ProductID, name, kind)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "List every HID device, not just supported Razer models")
	rootCmd.AddCommand(listCmd)
}

func fallbackEnumerate() ([]hid.Info, error) {
	if !razerusb.Supported() {
		return nil, fmt.Errorf("libusb enumeration not available on this platform")
	}
	return razerusb.Enumerate()
}
