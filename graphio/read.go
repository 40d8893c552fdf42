// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/kembed/graph"
)

// Sentinel errors. All but ErrMalformed wrap ErrMalformed.
var (
	// ErrMalformed indicates input that is not a valid problem description.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrMissingCount indicates a missing or invalid vertex-count line.
	ErrMissingCount = fmt.Errorf("%w: missing vertex count", ErrMalformed)

	// ErrRowLength indicates a matrix row with the wrong number of values.
	ErrRowLength = fmt.Errorf("%w: row length differs from vertex count", ErrMalformed)

	// ErrMissingRows indicates input that ends inside a matrix.
	ErrMissingRows = fmt.Errorf("%w: fewer rows than vertices", ErrMalformed)

	// ErrNegativeWeight indicates a negative multiplicity.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrMalformed)

	// ErrTrailingData indicates content after the optional k line, or a k
	// line that is not a single positive integer.
	ErrTrailingData = fmt.Errorf("%w: unexpected trailing data", ErrMalformed)
)

// DefaultCopies is the k used when the input omits it.
const DefaultCopies = 1

// Input is one problem instance.
type Input struct {
	G, H *graph.Graph
	K    int
}

// Read parses a problem from r. The whole stream is consumed.
func Read(r io.Reader) (Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Input{}, fmt.Errorf("Read: %w", err)
	}

	return parse("", string(raw))
}

// ReadFile parses the problem stored at path.
func ReadFile(path string) (Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("ReadFile: %w", err)
	}

	return parse(path, string(raw))
}

// parse tokenizes src and walks it line by line. name labels positions in
// error messages.
func parse(name, src string) (Input, error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	doc, err := parseDocument.ParseString(name, src)
	if err != nil {
		return Input{}, fmt.Errorf("Read: %w: %v", ErrMalformed, err)
	}

	w := walker{lines: trimBlank(doc.Lines)}
	in := Input{K: DefaultCopies}
	if in.G, err = w.matrix("G"); err != nil {
		return Input{}, err
	}
	if in.H, err = w.matrix("H"); err != nil {
		return Input{}, err
	}
	if in.K, err = w.copies(); err != nil {
		return Input{}, err
	}

	return in, nil
}

// trimBlank drops trailing empty lines.
func trimBlank(lines []*line) []*line {
	end := len(lines)
	for end > 0 && len(lines[end-1].Values) == 0 {
		end--
	}

	return lines[:end]
}

// walker consumes parsed lines in order.
type walker struct {
	lines []*line
	next  int
}

// take returns the next line, or nil at end of input.
func (w *walker) take() *line {
	if w.next >= len(w.lines) {
		return nil
	}
	l := w.lines[w.next]
	w.next++

	return l
}

// matrix reads a vertex-count line followed by that many rows.
func (w *walker) matrix(label string) (*graph.Graph, error) {
	head := w.take()
	if head == nil || len(head.Values) != 1 || head.Values[0] < 0 {
		return nil, fmt.Errorf("Read: graph %s%s: %w", label, at(head), ErrMissingCount)
	}
	n := head.Values[0]
	if left := len(w.lines) - w.next; n > left {
		return nil, fmt.Errorf("Read: graph %s: got %d of %d rows: %w", label, left, n, ErrMissingRows)
	}
	rows := make([][]int, n)
	var i int
	for i = 0; i < n; i++ {
		l := w.take()
		if len(l.Values) != n {
			return nil, fmt.Errorf("Read: graph %s row %d%s: %d values, want %d: %w",
				label, i, at(l), len(l.Values), n, ErrRowLength)
		}
		for j, v := range l.Values {
			if v < 0 {
				return nil, fmt.Errorf("Read: graph %s cell (%d,%d)%s: %d: %w", label, i, j, at(l), v, ErrNegativeWeight)
			}
		}
		rows[i] = l.Values
	}
	g, err := graph.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Read: graph %s: %w: %v", label, ErrMalformed, err)
	}

	return g, nil
}

// copies reads the optional k line and rejects anything after it.
func (w *walker) copies() (int, error) {
	l := w.take()
	if l == nil {
		return DefaultCopies, nil
	}
	if len(l.Values) != 1 || l.Values[0] < 1 {
		return 0, fmt.Errorf("Read: k line%s: %w", at(l), ErrTrailingData)
	}
	if extra := w.take(); extra != nil {
		return 0, fmt.Errorf("Read: after k%s: %w", at(extra), ErrTrailingData)
	}

	return l.Values[0], nil
}

// at renders the source line of l for error context.
func at(l *line) string {
	if l == nil {
		return " at end of input"
	}

	return fmt.Sprintf(" at line %d", l.Pos.Line)
}
