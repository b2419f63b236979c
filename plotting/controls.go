// SPDX-License-Identifier: MIT

package plotting

import "strconv"

const (
	easing        = "quad-in-out"
	methodAnimate = "animate"
	modeImmediate = "immediate"
)

// pauseFrameDuration is the frame duration sent with a pause.
const pauseFrameDuration = 10

// SliderNoSteps returns an empty slider at the bottom left of the plot. A
// non-empty prefix makes the current-value label visible with that prefix.
func SliderNoSteps(transitionDuration int, prefix string) Slider {
	s := Slider{
		Active:  0,
		YAnchor: "top",
		XAnchor: "left",
		CurrentValue: CurrentValue{
			Font:    Font{Size: 20},
			Visible: false,
			XAnchor: "right",
		},
		Transition: Transition{Duration: transitionDuration, Easing: easing},
		Pad:        Pad{B: 10, T: 50},
		Len:        0.9,
		X:          0.1,
		Y:          0,
		Steps:      []Step{},
	}
	if prefix != "" {
		s.CurrentValue.Visible = true
		s.CurrentValue.Prefix = prefix
	}

	return s
}

// SliderStep returns the step that jumps to frame frameNr.
func SliderStep(frameNr, frameDuration int) Step {
	name := strconv.Itoa(frameNr)

	return Step{
		Args: []any{
			[]string{name},
			AnimateArgs{
				Frame:      FrameTiming{Duration: frameDuration, Redraw: true},
				Mode:       modeImmediate,
				Transition: Transition{Duration: 0},
			},
		},
		Label:  name,
		Method: methodAnimate,
	}
}

// AnimationFrame wraps data as frame frameNr.
func AnimationFrame(data any, frameNr int) Frame {
	return Frame{Data: data, Name: strconv.Itoa(frameNr)}
}

// PausePlay returns the Play / Pause button pair.
func PausePlay(frameDuration, transitionDuration int) UpdateMenu {
	return UpdateMenu{
		Buttons: []Button{
			{
				Args: []any{
					nil,
					AnimateArgs{
						Frame:       FrameTiming{Duration: frameDuration, Redraw: true},
						FromCurrent: true,
						Transition:  Transition{Duration: transitionDuration, Easing: easing},
					},
				},
				Label:  "Play",
				Method: methodAnimate,
			},
			{
				Args: []any{
					[]any{nil},
					AnimateArgs{
						Frame:      FrameTiming{Duration: pauseFrameDuration, Redraw: true},
						Mode:       modeImmediate,
						Transition: Transition{Duration: transitionDuration},
					},
				},
				Label:  "Pause",
				Method: methodAnimate,
			},
		},
		Direction:  "left",
		Pad:        Pad{R: 10, T: 87},
		ShowActive: false,
		Type:       "buttons",
		X:          0.1,
		XAnchor:    "right",
		Y:          0,
		YAnchor:    "top",
	}
}
