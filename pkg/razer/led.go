package razer

import "fmt"

// LEDType identifies an addressable LED zone. Values are the protocol
// opcodes sent on the wire.
type LEDType byte

const (
	LEDScrollWheel  LEDType = 0x01
	LEDMisc         LEDType = 0x02
	LEDBattery      LEDType = 0x03
	LEDLogo         LEDType = 0x04
	LEDBacklight    LEDType = 0x05
	LEDMacro        LEDType = 0x07
	LEDGame         LEDType = 0x08
	LEDProfileGreen LEDType = 0x0C
	LEDProfileBlue  LEDType = 0x0D
	LEDProfileRed   LEDType = 0x0E
)

// Opcode implements protocol.Opcode.
func (t LEDType) Opcode() byte { return byte(t) }

func (t LEDType) String() string {
	switch t {
	case LEDScrollWheel:
		return "scroll"
	case LEDMisc:
		return "misc"
	case LEDBattery:
		return "battery"
	case LEDLogo:
		return "logo"
	case LEDBacklight:
		return "backlight"
	case LEDMacro:
		return "macro"
	case LEDGame:
		return "game"
	case LEDProfileGreen:
		return "profile-green"
	case LEDProfileBlue:
		return "profile-blue"
	case LEDProfileRed:
		return "profile-red"
	}
	return fmt.Sprintf("LEDType(0x%02X)", byte(t))
}

// ParseLEDType maps a CLI zone name to its LEDType.
func ParseLEDType(s string) (LEDType, error) {
	for _, t := range []LEDType{
		LEDScrollWheel, LEDMisc, LEDBattery, LEDLogo, LEDBacklight,
		LEDMacro, LEDGame, LEDProfileGreen, LEDProfileBlue, LEDProfileRed,
	} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown LED zone %q", s)
}

// LEDMode is the animation mode of a single LED zone.
type LEDMode byte

const (
	LEDModeStatic   LEDMode = 0x00
	LEDModeBlink    LEDMode = 0x01
	LEDModePulse    LEDMode = 0x02
	LEDModeSpectrum LEDMode = 0x04
)

// Opcode implements protocol.Opcode.
func (m LEDMode) Opcode() byte { return byte(m) }

func (m LEDMode) String() string {
	switch m {
	case LEDModeStatic:
		return "static"
	case LEDModeBlink:
		return "blink"
	case LEDModePulse:
		return "pulse"
	case LEDModeSpectrum:
		return "spectrum"
	}
	return fmt.Sprintf("LEDMode(0x%02X)", byte(m))
}

// VarStore selects whether a setting persists across power cycles.
type VarStore byte

const (
	NoStore    VarStore = 0x00
	VarStorage VarStore = 0x01
)

// Opcode implements protocol.Opcode.
func (v VarStore) Opcode() byte { return byte(v) }
