// SPDX-License-Identifier: MIT

package plotting_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/katalvlaran/spintools/plotting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestSliderNoSteps(t *testing.T) {
	want := `{
		"active": 0, "yanchor": "top", "xanchor": "left",
		"currentvalue": {"font": {"size": 20}, "visible": false, "xanchor": "right"},
		"transition": {"duration": 300, "easing": "quad-in-out"},
		"pad": {"b": 10, "t": 50},
		"len": 0.9, "x": 0.1, "y": 0,
		"steps": []
	}`
	assert.JSONEq(t, want, marshal(t, plotting.SliderNoSteps(300, "")))

	s := plotting.SliderNoSteps(0, "B = ")
	assert.True(t, s.CurrentValue.Visible)
	assert.JSONEq(t,
		`{"font": {"size": 20}, "visible": true, "xanchor": "right", "prefix": "B = "}`,
		marshal(t, s.CurrentValue))
}

func TestSliderStep(t *testing.T) {
	want := `{
		"args": [["7"], {"frame": {"duration": 250, "redraw": true}, "mode": "immediate", "transition": {"duration": 0}}],
		"label": "7",
		"method": "animate"
	}`
	assert.JSONEq(t, want, marshal(t, plotting.SliderStep(7, 250)))
}

func TestAddStep(t *testing.T) {
	s := plotting.SliderNoSteps(0, "")
	s.AddStep(plotting.SliderStep(0, 500))
	s.AddStep(plotting.SliderStep(1, 500))
	require.Len(t, s.Steps, 2)
	assert.Equal(t, "1", s.Steps[1].Label)

	// a fresh slider does not share steps with an earlier one
	assert.Empty(t, plotting.SliderNoSteps(0, "").Steps)
}

func TestPausePlay(t *testing.T) {
	want := `{
		"buttons": [
			{"args": [null, {"frame": {"duration": 500, "redraw": true}, "fromcurrent": true,
				"transition": {"duration": 100, "easing": "quad-in-out"}}],
			 "label": "Play", "method": "animate"},
			{"args": [[null], {"frame": {"duration": 10, "redraw": true}, "mode": "immediate",
				"transition": {"duration": 100}}],
			 "label": "Pause", "method": "animate"}
		],
		"direction": "left",
		"pad": {"r": 10, "t": 87},
		"showactive": false,
		"type": "buttons",
		"x": 0.1, "xanchor": "right",
		"y": 0, "yanchor": "top"
	}`
	assert.JSONEq(t, want, marshal(t, plotting.PausePlay(500, 100)))
}

func TestAnimationFrame(t *testing.T) {
	f := plotting.AnimationFrame([]int{1, 2}, 3)
	assert.JSONEq(t, `{"data": [1, 2], "name": "3"}`, marshal(t, f))
}

func TestLevelFigure(t *testing.T) {
	axis := []float64{0, 1, 2, 3, 4}
	e := mat.NewDense(5, 2, []float64{
		0, 10,
		1, 11,
		2, 12,
		3, 13,
		4, 14,
	})

	fig, err := plotting.LevelFigure(axis, e, 2, "B (G)", "E/h (Hz)")
	require.NoError(t, err)

	require.Len(t, fig.Frames, 3)
	for k, want := range []int{2, 4, 5} {
		traces := fig.Frames[k].Data.([]plotting.Scatter)
		require.Len(t, traces, 2)
		assert.Len(t, traces[1].X, want, "frame %d", k)
		assert.Equal(t, fmt.Sprint(k), fig.Frames[k].Name)
	}
	last := fig.Frames[2].Data.([]plotting.Scatter)
	assert.Equal(t, []float64{10, 11, 12, 13, 14}, last[1].Y)
	assert.Equal(t, "level 1", last[1].Name)

	require.Len(t, fig.Layout.Sliders, 1)
	assert.Len(t, fig.Layout.Sliders[0].Steps, 3)
	assert.Equal(t, "B (G) step ", fig.Layout.Sliders[0].CurrentValue.Prefix)
	require.Len(t, fig.Layout.UpdateMenus, 1)
	assert.Equal(t, fig.Frames[0].Data, fig.Data)

	var back map[string]any
	require.NoError(t, json.Unmarshal([]byte(marshal(t, fig)), &back))
	assert.Contains(t, back, "frames")
	assert.Contains(t, back["layout"], "updatemenus")
}

func TestLevelFigure_Errors(t *testing.T) {
	e := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := plotting.LevelFigure([]float64{0, 1}, e, 1, "", "")
	assert.ErrorIs(t, err, plotting.ErrShape)
	_, err = plotting.LevelFigure([]float64{0, 1, 2}, e, 0, "", "")
	assert.ErrorIs(t, err, plotting.ErrShape)
	_, err = plotting.LevelTraces([]float64{0, 1, 2}, e, 4)
	assert.ErrorIs(t, err, plotting.ErrShape)
}

func ExamplePausePlay() {
	b, _ := json.Marshal(plotting.PausePlay(500, 0).Buttons[0].Label)
	fmt.Println(string(b))
	// Output: "Play"
}
