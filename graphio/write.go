// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrNilGraph indicates an Input without G or H.
var ErrNilGraph = errors.New("graphio: nil graph")

// Write emits in using the format accepted by Read. The k line is always
// written, even when it equals DefaultCopies.
func Write(w io.Writer, in Input) error {
	if in.G == nil || in.H == nil {
		return fmt.Errorf("Write: %w", ErrNilGraph)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(in.G.String()); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if _, err := bw.WriteString(in.H.String()); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if _, err := fmt.Fprintf(bw, "%d\n", in.K); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}
