// Package hwdb is the static database of supported Razer models. Model
// metadata lives in an embedded YAML file; the daemon and CLI consult it
// to name devices and to select per-model protocol quirks.
package hwdb

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed devices.yaml
var rawDB []byte

// DeviceType classifies a model by form factor.
type DeviceType string

const (
	Keyboard DeviceType = "keyboard"
	Mouse    DeviceType = "mouse"
	Mousepad DeviceType = "mousepad"
	Headset  DeviceType = "headset"
	Keypad   DeviceType = "keypad"
	Laptop   DeviceType = "laptop"
)

var deviceTypes = map[DeviceType]bool{
	Keyboard: true, Mouse: true, Mousepad: true,
	Headset: true, Keypad: true, Laptop: true,
}

// Quirk names a per-model protocol deviation.
type Quirk string

const (
	QuirkTransaction3F    Quirk = "txn_3f"
	QuirkExtendedFX       Quirk = "extended_fx"
	QuirkCustomFrame80    Quirk = "custom_frame_80"
	QuirkWireless         Quirk = "wireless"
	QuirkScrollBrightness Quirk = "scroll_brightness"
	QuirkLogoBrightness   Quirk = "logo_brightness"
)

var quirks = map[Quirk]bool{
	QuirkTransaction3F: true, QuirkExtendedFX: true, QuirkCustomFrame80: true,
	QuirkWireless: true, QuirkScrollBrightness: true, QuirkLogoBrightness: true,
}

// Matrix is the addressable LED grid of a model, if it has one.
type Matrix struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Model describes one supported device.
type Model struct {
	Name   string     `yaml:"name"`
	Type   DeviceType `yaml:"type"`
	Quirks []Quirk    `yaml:"quirks"`
	Matrix *Matrix    `yaml:"matrix"`
}

// HasQuirk reports whether the model carries the given quirk.
func (m Model) HasQuirk(q Quirk) bool {
	for _, mq := range m.Quirks {
		if mq == q {
			return true
		}
	}
	return false
}

// DB maps product ids to model metadata.
type DB struct {
	models map[uint16]Model
}

// Load parses and validates the embedded database.
func Load() (*DB, error) {
	var parsed map[int]Model
	if err := yaml.Unmarshal(rawDB, &parsed); err != nil {
		return nil, fmt.Errorf("hwdb parse: %w", err)
	}

	models := make(map[uint16]Model, len(parsed))
	for pid, m := range parsed {
		if pid < 0 || pid > 0xFFFF {
			return nil, fmt.Errorf("hwdb: product id 0x%X out of range", pid)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("hwdb: product id 0x%04X has no name", pid)
		}
		if !deviceTypes[m.Type] {
			return nil, fmt.Errorf("hwdb: %s: unknown device type %q", m.Name, m.Type)
		}
		for _, q := range m.Quirks {
			if !quirks[q] {
				return nil, fmt.Errorf("hwdb: %s: unknown quirk %q", m.Name, q)
			}
		}
		if m.Matrix != nil && (m.Matrix.Rows <= 0 || m.Matrix.Cols <= 0) {
			return nil, fmt.Errorf("hwdb: %s: invalid matrix %dx%d", m.Name, m.Matrix.Rows, m.Matrix.Cols)
		}
		models[uint16(pid)] = m
	}
	return &DB{models: models}, nil
}

// Lookup returns the model for a product id.
func (db *DB) Lookup(productID uint16) (Model, bool) {
	m, ok := db.models[productID]
	return m, ok
}

// ProductIDs returns all known product ids in ascending order.
func (db *DB) ProductIDs() []uint16 {
	out := make([]uint16, 0, len(db.models))
	for pid := range db.models {
		out = append(out, pid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
