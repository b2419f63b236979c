// SPDX-License-Identifier: MIT

package network

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Touchstone option-line defaults.
const (
	defaultUnit   = "GHZ"
	defaultFormat = "MA"
	defaultZ0     = 50.0
)

var frequencyUnits = map[string]float64{
	"HZ":  1,
	"KHZ": 1e3,
	"MHZ": 1e6,
	"GHZ": 1e9,
}

// ReadTouchstone parses Touchstone v1 data for a 1- or 2-port network.
//
// Supported: "!" comments (full-line and trailing), the "# <unit> S
// <format> R <z0>" option line with units Hz/kHz/MHz/GHz and formats
// RI/MA/DB, data records wrapped over several lines. 2-port records are in
// the Touchstone order S11 S21 S12 S22. Angles are in degrees.
//
// Errors: ErrTouchstone for any syntax or content problem, ErrBadNetwork
// via New for an unsorted frequency axis.
func ReadTouchstone(r io.Reader, name string, ports int) (*Network, error) {
	if ports != 1 && ports != 2 {
		return nil, fmt.Errorf("%s: %d ports: %w", name, ports, ErrTouchstone)
	}

	var (
		unit     = defaultUnit
		format   = defaultFormat
		z0       = defaultZ0
		seenOpt  bool
		values   []float64
		scanner  = bufio.NewScanner(r)
		lineNo   int
		perEntry = 1 + 2*ports*ports
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "["):
			return nil, fmt.Errorf("%s:%d: touchstone v2 keyword %q: %w", name, lineNo, line, ErrTouchstone)
		case strings.HasPrefix(line, "#"):
			if seenOpt {
				continue // only the first option line counts
			}
			seenOpt = true
			var err error
			if unit, format, z0, err = parseOptions(line[1:]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %q: %w", name, lineNo, field, ErrTouchstone)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrTouchstone, err)
	}
	if len(values) == 0 || len(values)%perEntry != 0 {
		return nil, fmt.Errorf("%s: %d values do not form %d-port records: %w", name, len(values), ports, ErrTouchstone)
	}

	n := len(values) / perEntry
	freq := make([]float64, n)
	s := make([]SParams, n)
	// Touchstone 2-port order is S11 S21 S12 S22
	order := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i := 0; i < n; i++ {
		rec := values[i*perEntry : (i+1)*perEntry]
		freq[i] = rec[0] * frequencyUnits[unit]
		for k := 0; k < ports*ports; k++ {
			s[i][order[k][0]][order[k][1]] = toComplex(format, rec[1+2*k], rec[2+2*k])
		}
	}

	return New(name, freq, s, ports, z0)
}

// LoadTouchstone reads a .s1p or .s2p file; the port count comes from the
// extension and the network is named after the file.
func LoadTouchstone(path string) (*Network, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var ports int
	switch ext {
	case ".s1p":
		ports = 1
	case ".s2p":
		ports = 2
	default:
		return nil, fmt.Errorf("%s: unsupported extension %q: %w", path, ext, ErrTouchstone)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTouchstone(f, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), ports)
}

func parseOptions(opt string) (unit, format string, z0 float64, err error) {
	unit, format, z0 = defaultUnit, defaultFormat, defaultZ0
	fields := strings.Fields(strings.ToUpper(opt))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case frequencyUnits[f] != 0:
			unit = f
		case f == "RI" || f == "MA" || f == "DB":
			format = f
		case f == "S":
		case f == "Y" || f == "Z" || f == "H" || f == "G":
			return "", "", 0, fmt.Errorf("parameter type %s: %w", f, ErrTouchstone)
		case f == "R":
			if i+1 >= len(fields) {
				return "", "", 0, fmt.Errorf("missing reference impedance: %w", ErrTouchstone)
			}
			i++
			if z0, err = strconv.ParseFloat(fields[i], 64); err != nil || !(z0 > 0) || math.IsInf(z0, 0) {
				return "", "", 0, fmt.Errorf("reference impedance %q: %w", fields[i], ErrTouchstone)
			}
		default:
			return "", "", 0, fmt.Errorf("option %q: %w", f, ErrTouchstone)
		}
	}

	return unit, format, z0, nil
}

func toComplex(format string, a, b float64) complex128 {
	switch format {
	case "RI":
		return complex(a, b)
	case "DB":
		return cmplx.Rect(math.Pow(10, a/20), b*math.Pi/180)
	default: // MA
		return cmplx.Rect(a, b*math.Pi/180)
	}
}
