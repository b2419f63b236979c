// SPDX-License-Identifier: MIT

// Package plotting builds animation controls and frames for a plotly-style
// front end. Values marshal with encoding/json into the key names that front
// end expects (active, yanchor, currentvalue, steps, buttons, frame,
// transition, ...), so the output can be handed to it unchanged.
//
// The builders mirror the usual slider + play/pause layout:
//
//	fig := plotting.Figure{Data: first, Frames: frames}
//	s := plotting.SliderNoSteps(0, "B = ")
//	for i := range frames {
//		s.AddStep(plotting.SliderStep(i, 500))
//	}
//	fig.Layout.Sliders = []plotting.Slider{s}
//	fig.Layout.UpdateMenus = []plotting.UpdateMenu{plotting.PausePlay(500, 0)}
//
// LevelFigure does all of the above for an eigenvalue trace matrix.
package plotting
