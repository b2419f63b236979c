// SPDX-License-Identifier: MIT

package plotting

import "errors"

// ErrShape is returned when an axis and a trace matrix disagree in length,
// or when a stride is not positive.
var ErrShape = errors.New("plotting: shape mismatch")

// Font of the current-value label.
type Font struct {
	Size int `json:"size"`
}

// CurrentValue is the label above a slider.
type CurrentValue struct {
	Font    Font   `json:"font"`
	Visible bool   `json:"visible"`
	XAnchor string `json:"xanchor"`
	Prefix  string `json:"prefix,omitempty"`
}

// Transition is an animation transition.
type Transition struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

// Pad is a padding in pixels; zero sides are omitted.
type Pad struct {
	B int `json:"b,omitempty"`
	T int `json:"t,omitempty"`
	R int `json:"r,omitempty"`
	L int `json:"l,omitempty"`
}

// FrameTiming is the per-frame part of an animation call.
type FrameTiming struct {
	Duration int  `json:"duration"`
	Redraw   bool `json:"redraw"`
}

// AnimateArgs is the options object passed to an "animate" call.
type AnimateArgs struct {
	Frame       FrameTiming `json:"frame"`
	Mode        string      `json:"mode,omitempty"`
	FromCurrent bool        `json:"fromcurrent,omitempty"`
	Transition  Transition  `json:"transition"`
}

// Step is one slider position.
type Step struct {
	Args   []any  `json:"args"`
	Label  string `json:"label"`
	Method string `json:"method"`
}

// Slider is a frame slider.
type Slider struct {
	Active       int          `json:"active"`
	YAnchor      string       `json:"yanchor"`
	XAnchor      string       `json:"xanchor"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Transition   Transition   `json:"transition"`
	Pad          Pad          `json:"pad"`
	Len          float64      `json:"len"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Steps        []Step       `json:"steps"`
}

// AddStep appends a step to the slider.
func (s *Slider) AddStep(step Step) { s.Steps = append(s.Steps, step) }

// Button is one entry of an update menu.
type Button struct {
	Args   []any  `json:"args"`
	Label  string `json:"label"`
	Method string `json:"method"`
}

// UpdateMenu is a group of buttons.
type UpdateMenu struct {
	Buttons    []Button `json:"buttons"`
	Direction  string   `json:"direction"`
	Pad        Pad      `json:"pad"`
	ShowActive bool     `json:"showactive"`
	Type       string   `json:"type"`
	X          float64  `json:"x"`
	XAnchor    string   `json:"xanchor"`
	Y          float64  `json:"y"`
	YAnchor    string   `json:"yanchor"`
}

// Frame is a named animation frame.
type Frame struct {
	Data any    `json:"data"`
	Name string `json:"name"`
}

// Scatter is a line trace.
type Scatter struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	Name string    `json:"name,omitempty"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// Axis carries an axis title.
type Axis struct {
	Title AxisTitle `json:"title"`
}

// AxisTitle is the text of an axis title.
type AxisTitle struct {
	Text string `json:"text"`
}

// Layout is the subset of figure layout the animations use.
type Layout struct {
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
	Sliders     []Slider     `json:"sliders,omitempty"`
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
}

// Figure is a complete animated figure.
type Figure struct {
	Data   any     `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames,omitempty"`
}
