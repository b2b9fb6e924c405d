package razer

import "fmt"

// Effect is a built-in lighting effect, class 0x03 id 0x0A.
type Effect byte

const (
	EffectDisable   Effect = 0x00
	EffectWave      Effect = 0x01
	EffectReactive  Effect = 0x02
	EffectBreathe   Effect = 0x03
	EffectSpectrum  Effect = 0x04
	EffectCustom    Effect = 0x05
	EffectStatic    Effect = 0x06
	EffectStarlight Effect = 0x19
)

// Opcode implements protocol.Opcode.
func (e Effect) Opcode() byte { return byte(e) }

func (e Effect) String() string {
	switch e {
	case EffectDisable:
		return "disable"
	case EffectWave:
		return "wave"
	case EffectReactive:
		return "reactive"
	case EffectBreathe:
		return "breathe"
	case EffectSpectrum:
		return "spectrum"
	case EffectCustom:
		return "custom"
	case EffectStatic:
		return "static"
	case EffectStarlight:
		return "starlight"
	}
	return fmt.Sprintf("Effect(0x%02X)", byte(e))
}
