package main

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/seagrayinc/razerctl/pkg/razer"
)

var (
	ledZone       string
	ledColorHex   string
	ledBrightness int
	ledMode       string
	ledOff        bool
)

var ledCmd = &cobra.Command{
	Use:   "led",
	Short: "Control a single LED zone",
	Long: `Set the color, brightness or animation mode of one LED zone.
Zones: scroll, misc, battery, logo, backlight, macro, game,
profile-red, profile-green, profile-blue.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		led, err := razer.ParseLEDType(ledZone)
		if err != nil {
			return err
		}

		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		ctx := cmd.Context()

		if ledOff {
			return dev.SetLEDState(ctx, led, false)
		}

		touched := false
		if ledColorHex != "" {
			c, err := colorful.Hex(ledColorHex)
			if err != nil {
				return fmt.Errorf("bad color %q: %w", ledColorHex, err)
			}
			if err := dev.SetLEDState(ctx, led, true); err != nil {
				return err
			}
			if err := dev.SetLEDColor(ctx, led, c); err != nil {
				return err
			}
			touched = true
		}
		if cmd.Flags().Changed("brightness") {
			if ledBrightness < 0 || ledBrightness > 255 {
				return fmt.Errorf("brightness %d out of range 0-255", ledBrightness)
			}
			if err := dev.SetLEDBrightness(ctx, led, byte(ledBrightness)); err != nil {
				return err
			}
			touched = true
		}
		if ledMode != "" {
			mode, err := parseLEDMode(ledMode)
			if err != nil {
				return err
			}
			if err := dev.SetLEDMode(ctx, led, mode); err != nil {
				return err
			}
			touched = true
		}

		if !touched {
			return showLED(cmd, dev, led)
		}
		return nil
	},
}

func parseLEDMode(s string) (razer.LEDMode, error) {
	for _, m := range []razer.LEDMode{
		razer.LEDModeStatic, razer.LEDModeBlink, razer.LEDModePulse, razer.LEDModeSpectrum,
	} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown LED mode %q", s)
}

// showLED prints the current state of a zone when no flag asked for a
// change.
func showLED(cmd *cobra.Command, dev *razer.Device, led razer.LEDType) error {
	ctx := cmd.Context()

	on, err := dev.LEDState(ctx, led)
	if err != nil {
		return err
	}
	fmt.Printf("%s: on=%v", led, on)
	if c, err := dev.LEDColor(ctx, led); err == nil {
		fmt.Printf(" color=%s", c.Hex())
	}
	if b, err := dev.LEDBrightness(ctx, led); err == nil {
		fmt.Printf(" brightness=%d", b)
	}
	if m, err := dev.LEDMode(ctx, led); err == nil {
		fmt.Printf(" mode=%s", m)
	}
	fmt.Println()
	return nil
}

func init() {
	ledCmd.Flags().StringVarP(&ledZone, "zone", "z", "backlight", "LED zone to control")
	ledCmd.Flags().StringVarP(&ledColorHex, "color", "c", "", "Static color as #rrggbb")
	ledCmd.Flags().IntVarP(&ledBrightness, "brightness", "b", -1, "Brightness 0-255")
	ledCmd.Flags().StringVarP(&ledMode, "mode", "m", "", "Animation mode (static, blink, pulse, spectrum)")
	ledCmd.Flags().BoolVar(&ledOff, "off", false, "Switch the zone off")
	rootCmd.AddCommand(ledCmd)
}
