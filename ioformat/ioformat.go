// Package ioformat reads and writes the problem and result file formats.
// Parsing and formatting are treated as external collaborators of the
// solver proper: neither package imports the other way.
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cehbz/hungarianwells/geometry"
	"github.com/cehbz/hungarianwells/wells"
)

// ErrInputStructure is the sentinel wrapped by every InputStructureError,
// so callers can match with errors.Is.
var ErrInputStructure = errors.New("malformed input file")

// InputStructureError reports a malformed input file: a row-count
// mismatch, a non-numeric token, or N/K < 1.
type InputStructureError struct {
	Path   string
	Reason string
}

func (e *InputStructureError) Error() string {
	return fmt.Sprintf("ioformat: %s: %s", e.Path, e.Reason)
}

func (e *InputStructureError) Unwrap() error { return ErrInputStructure }

// maxInputFileSize guards against absurd inputs the same way a config
// loader bounds the size of the files it parses.
const maxInputFileSize = 10 * 1024 * 1024

// ProblemInput is the parsed contents of an input file: N wells, K houses
// per well, and the two coordinate sets.
type ProblemInput struct {
	N, K   int
	Wells  []geometry.Point
	Houses []geometry.Point
}

// ReadInput parses the input file format:
//
//	N K
//	x,y   (N well lines)
//	x,y   (N*K house lines)
func ReadInput(path string) (ProblemInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ProblemInput{}, fmt.Errorf("ioformat: stat input file: %w", err)
	}
	if info.Size() > maxInputFileSize {
		return ProblemInput{}, &InputStructureError{Path: path, Reason: fmt.Sprintf("file too large: %d bytes", info.Size())}
	}

	f, err := os.Open(path)
	if err != nil {
		return ProblemInput{}, fmt.Errorf("ioformat: open input file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ProblemInput{}, &InputStructureError{Path: path, Reason: "missing header line"}
	}
	tokens := strings.Fields(scanner.Text())
	if len(tokens) != 2 {
		return ProblemInput{}, &InputStructureError{Path: path, Reason: fmt.Sprintf("header line must have exactly two tokens, got %d", len(tokens))}
	}
	n, errN := strconv.Atoi(tokens[0])
	k, errK := strconv.Atoi(tokens[1])
	if errN != nil || errK != nil {
		return ProblemInput{}, &InputStructureError{Path: path, Reason: "header tokens must be integers"}
	}
	if n < 1 || k < 1 {
		return ProblemInput{}, &InputStructureError{Path: path, Reason: fmt.Sprintf("N and K must both be >= 1, got N=%d K=%d", n, k)}
	}

	var coords []geometry.Point
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return ProblemInput{}, &InputStructureError{Path: path, Reason: err.Error()}
		}
		coords = append(coords, p)
	}
	if err := scanner.Err(); err != nil {
		return ProblemInput{}, fmt.Errorf("ioformat: read input file: %w", err)
	}

	want := n + n*k
	if len(coords) != want {
		return ProblemInput{}, &InputStructureError{
			Path:   path,
			Reason: fmt.Sprintf("expected %d coordinate lines (N + N*K), got %d", want, len(coords)),
		}
	}

	return ProblemInput{N: n, K: k, Wells: coords[:n], Houses: coords[n:]}, nil
}

func parsePoint(line string) (geometry.Point, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("coordinate line %q must have exactly one comma", line)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return geometry.Point{}, fmt.Errorf("coordinate line %q has non-numeric tokens", line)
	}
	return geometry.Point{X: x, Y: y}, nil
}

// WriteInput persists a ProblemInput in the format ReadInput consumes.
// Used by the generate mode to keep the on-disk input in sync with what
// was actually solved.
func WriteInput(path string, in ProblemInput) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("ioformat: create input file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", in.N, in.K)
	for _, p := range in.Wells {
		fmt.Fprintf(w, "%.2f,%.2f\n", p.X, p.Y)
	}
	for _, p := range in.Houses {
		fmt.Fprintf(w, "%.2f,%.2f\n", p.X, p.Y)
	}
	return w.Flush()
}

// WriteOutput renders the solved assignment: one line per well followed
// by a signed total-cost line. The total is printed as the negative of
// the true distance (output_handler.py: `total_cost = -sum(...)`),
// matching the convention of the original implementation this format was
// ported from.
func WriteOutput(path string, sol wells.Solution) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("ioformat: create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, pair := range sol.Pairs {
		fmt.Fprintf(w, "W%d(%g,%g) -> ", pair.WellIndex+1, pair.Well.X, pair.Well.Y)
		for j, h := range pair.Houses {
			fmt.Fprintf(w, "H%d(%g,%g)", h.HouseIndex+1, h.House.X, h.House.Y)
			if j < len(pair.Houses)-1 {
				w.WriteString(",")
			}
		}
		w.WriteString("\n")
	}
	fmt.Fprintf(w, "Total Cost: %.2f\n", -sol.TotalDist)
	return w.Flush()
}
