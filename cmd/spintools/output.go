// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/spintools/plotting"
	"github.com/katalvlaran/spintools/trace"
	"gonum.org/v1/gonum/mat"
)

// maxPlotFrames bounds the number of animation frames written by --plot.
const maxPlotFrames = 50

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func writeRows(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}

// writeTraces writes one CSV row per sweep point: the axis value followed
// by every column of m.
func writeTraces(w io.Writer, axisName string, axis []float64, m mat.Matrix) error {
	r, c := m.Dims()
	header := make([]string, 0, c+1)
	header = append(header, axisName)
	for j := 0; j < c; j++ {
		header = append(header, fmt.Sprintf("level_%d", j))
	}

	rows := make([][]string, r)
	for i := range rows {
		row := make([]string, 0, c+1)
		row = append(row, fmtFloat(axis[i]))
		for j := 0; j < c; j++ {
			row = append(row, fmtFloat(m.At(i, j)))
		}
		rows[i] = row
	}

	return writeRows(w, header, rows)
}

// finishTraces converts joules to the requested unit, optionally repairs
// crossings, and writes CSV plus the optional animated figure.
func finishTraces(a *app, w io.Writer, axisName, xTitle string, axis []float64, energies *mat.Dense, scale float64, correct bool, plotPath string) error {
	out := mat.NewDense(energies.RawMatrix().Rows, energies.RawMatrix().Cols, nil)
	out.Scale(scale, energies)
	if correct {
		a.log.V(1).Info("trace correction", "swaps", len(trace.Swaps(out)))
		out = trace.Correct(out)
	}
	if err := writeTraces(w, axisName, axis, out); err != nil {
		return err
	}
	if plotPath == "" {
		return nil
	}

	stride := max(1, len(axis)/maxPlotFrames)
	fig, err := plotting.LevelFigure(axis, out, stride, xTitle, "E/h (Hz)")
	if err != nil {
		return err
	}
	b, err := json.Marshal(fig)
	if err != nil {
		return err
	}
	a.log.Info("writing figure", "path", plotPath, "frames", len(fig.Frames))

	return os.WriteFile(plotPath, b, 0o644)
}
