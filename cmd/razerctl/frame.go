package main

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

var frameColorHex string

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Fill the key matrix with a solid color",
	Long: `Streams a full custom frame to a matrix-capable device and
activates the custom effect. Mostly useful to verify that per-key
addressing works on a model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorful.Hex(frameColorHex)
		if err != nil {
			return fmt.Errorf("bad color %q: %w", frameColorHex, err)
		}

		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		m := dev.Model().Matrix
		if m == nil {
			return fmt.Errorf("%s has no addressable matrix", dev.Model().Name)
		}

		rows := make([][]colorful.Color, m.Rows)
		for i := range rows {
			row := make([]colorful.Color, m.Cols)
			for j := range row {
				row[j] = c
			}
			rows[i] = row
		}

		if m.Rows == 1 {
			return dev.SetSingleRowFrame(cmd.Context(), rows[0])
		}
		return dev.SetCustomFrame(cmd.Context(), rows)
	},
}

func init() {
	frameCmd.Flags().StringVarP(&frameColorHex, "color", "c", "#00ff00", "Fill color as #rrggbb")
	rootCmd.AddCommand(frameCmd)
}
