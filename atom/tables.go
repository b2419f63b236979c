// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"
	"sort"
)

// Registry names of the built-in levels.
const (
	LevelK40S12  = "K40-4S1/2"
	LevelK40P32  = "K40-4P3/2"
	LevelRb87S12 = "Rb87-5S1/2"
	LevelRb87P32 = "Rb87-5P3/2"
)

// K40 is the potassium-40 nucleus.
var K40 = Isotope{Name: "K40", I: 4, GI: 0.000176490, S: ElectronSpin}

// Rb87 is the rubidium-87 nucleus.
var Rb87 = Isotope{Name: "Rb87", I: 1.5, GI: -0.0009951414, S: ElectronSpin}

var builtin = map[string]func() Level{
	LevelK40S12:  K40Ground,
	LevelK40P32:  K40Excited,
	LevelRb87S12: Rb87Ground,
	LevelRb87P32: Rb87Excited,
}

// K40Ground returns the 4S J=1/2 ground level of K40 (inverted hyperfine structure).
func K40Ground() Level {
	return mustLevel(K40, LevelSpec{Name: "4S1/2", L: 0, J: 0.5, AHF: -285.7308e6})
}

// K40Excited returns the 4P J=3/2 level of K40.
func K40Excited() Level {
	return mustLevel(K40, LevelSpec{Name: "4P3/2", L: 1, J: 1.5, AHF: -7.585e6, BHF: -3.445e6})
}

// Rb87Ground returns the 5S J=1/2 ground level of Rb87.
func Rb87Ground() Level {
	return mustLevel(Rb87, LevelSpec{Name: "5S1/2", L: 0, J: 0.5, AHF: 3417.34130545215e6})
}

// Rb87Excited returns the 5P J=3/2 level of Rb87.
func Rb87Excited() Level {
	return mustLevel(Rb87, LevelSpec{Name: "5P3/2", L: 1, J: 1.5, AHF: 84.7185e6, BHF: 12.4965e6})
}

// ByName looks up a built-in level by its registry name (see Names).
func ByName(name string) (Level, error) {
	f, ok := builtin[name]
	if !ok {
		return Level{}, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}

	return f(), nil
}

// Names lists the registry names of the built-in levels, sorted.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// mustLevel is used only for the hard-coded tables above.
func mustLevel(iso Isotope, spec LevelSpec) Level {
	l, err := NewLevel(iso, spec)
	if err != nil {
		panic(err)
	}

	return l
}
