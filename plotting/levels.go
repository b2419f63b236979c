// SPDX-License-Identifier: MIT

package plotting

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Defaults used by LevelFigure.
const (
	DefaultFrameDuration = 500 // ms
	traceMode            = "lines"
	traceType            = "scatter"
)

// LevelTraces returns one line trace per column of energies, drawn over
// axis rows [0, upto). Trace i is named "level i".
func LevelTraces(axis []float64, energies mat.Matrix, upto int) ([]Scatter, error) {
	r, c := energies.Dims()
	if len(axis) != r {
		return nil, fmt.Errorf("axis %d vs %d rows: %w", len(axis), r, ErrShape)
	}
	if upto < 0 || upto > r {
		return nil, fmt.Errorf("upto %d outside [0, %d]: %w", upto, r, ErrShape)
	}

	traces := make([]Scatter, c)
	for j := range traces {
		y := make([]float64, upto)
		for i := range y {
			y[i] = energies.At(i, j)
		}
		traces[j] = Scatter{
			Type: traceType,
			Mode: traceMode,
			Name: fmt.Sprintf("level %d", j),
			X:    append([]float64(nil), axis[:upto]...),
			Y:    y,
		}
	}

	return traces, nil
}

// LevelFigure animates a trace matrix: frame k draws the sweep up to row
// min((k+1)·stride, rows), so the last frame shows the whole sweep. The
// figure starts on the first frame and carries a slider and Play / Pause.
//
// Errors: ErrShape for stride < 1 or an axis/row mismatch.
// Complexity: O(rows²·cols/stride).
func LevelFigure(axis []float64, energies mat.Matrix, stride int, xTitle, yTitle string) (Figure, error) {
	if stride < 1 {
		return Figure{}, fmt.Errorf("stride %d: %w", stride, ErrShape)
	}
	r, _ := energies.Dims()
	if len(axis) != r || r == 0 {
		return Figure{}, fmt.Errorf("axis %d vs %d rows: %w", len(axis), r, ErrShape)
	}

	var (
		n      = (r + stride - 1) / stride
		frames = make([]Frame, n)
		slider = SliderNoSteps(0, xTitle+" step ")
	)
	for k := range frames {
		traces, err := LevelTraces(axis, energies, min((k+1)*stride, r))
		if err != nil {
			return Figure{}, err
		}
		frames[k] = AnimationFrame(traces, k)
		slider.AddStep(SliderStep(k, DefaultFrameDuration))
	}

	return Figure{
		Data: frames[0].Data,
		Layout: Layout{
			XAxis:       Axis{Title: AxisTitle{Text: xTitle}},
			YAxis:       Axis{Title: AxisTitle{Text: yTitle}},
			Sliders:     []Slider{slider},
			UpdateMenus: []UpdateMenu{PausePlay(DefaultFrameDuration, 0)},
		},
		Frames: frames,
	}, nil
}
