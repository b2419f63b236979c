// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tableFile mirrors the YAML layout accepted by LoadTable.
type tableFile struct {
	Isotopes []isotopeEntry `yaml:"isotopes"`
}

type isotopeEntry struct {
	Name   string       `yaml:"name"`
	I      float64      `yaml:"I"`
	GI     float64      `yaml:"gI"`
	S      *float64     `yaml:"S,omitempty"` // defaults to ElectronSpin
	Levels []levelEntry `yaml:"levels"`
}

type levelEntry struct {
	Name string  `yaml:"name"`
	L    float64 `yaml:"L"`
	J    float64 `yaml:"J"`
	AHF  float64 `yaml:"aHF"`
	BHF  float64 `yaml:"bHF,omitempty"`
}

// LoadTable parses a YAML isotope table and returns its levels keyed by
// Level.ID ("<isotope>-<level>").
//
// Every level goes through NewLevel; the first invalid entry aborts the load.
// Duplicate keys, empty names and isotopes without levels are rejected.
// All failures match ErrBadTable with errors.Is; invalid quantum numbers also
// match ErrInvalidLevel.
func LoadTable(r io.Reader) (map[string]Level, error) {
	var tf tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	if len(tf.Isotopes) == 0 {
		return nil, fmt.Errorf("%w: no isotopes", ErrBadTable)
	}

	out := make(map[string]Level)
	for _, ie := range tf.Isotopes {
		if ie.Name == "" {
			return nil, fmt.Errorf("%w: isotope without name", ErrBadTable)
		}
		if len(ie.Levels) == 0 {
			return nil, fmt.Errorf("%w: isotope %s has no levels", ErrBadTable, ie.Name)
		}
		iso := Isotope{Name: ie.Name, I: ie.I, GI: ie.GI, S: ElectronSpin}
		if ie.S != nil {
			iso.S = *ie.S
		}
		for _, le := range ie.Levels {
			if le.Name == "" {
				return nil, fmt.Errorf("%w: isotope %s: level without name", ErrBadTable, ie.Name)
			}
			lvl, err := NewLevel(iso, LevelSpec{Name: le.Name, L: le.L, J: le.J, AHF: le.AHF, BHF: le.BHF})
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
			}
			if _, dup := out[lvl.ID()]; dup {
				return nil, fmt.Errorf("%w: duplicate level %s", ErrBadTable, lvl.ID())
			}
			out[lvl.ID()] = lvl
		}
	}

	return out, nil
}
