// Package stepper turns a deltastep.Hook into an interactive trace: after
// every phase it prints the distance table and the bucket ring, then waits
// for the user to press Enter.
package stepper

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/deltastep/deltastep"
	"github.com/katalvlaran/deltastep/edgelist"
)

// Stepper prints snapshots to out and paces them by lines read from in.
type Stepper struct {
	out    io.Writer
	in     *bufio.Reader
	labels func(int) string
	steps  int
	eof    bool
}

// New returns a Stepper. A nil in never blocks; labels may be nil (decimal ids).
func New(out io.Writer, in io.Reader, labels func(int) string) *Stepper {
	s := &Stepper{out: out, labels: labels}
	if in != nil {
		s.in = bufio.NewReader(in)
	} else {
		s.eof = true
	}
	if s.labels == nil {
		s.labels = strconv.Itoa
	}

	return s
}

// Hook returns the deltastep.Hook bound to s.
func (s *Stepper) Hook() deltastep.Hook {
	return s.Observe
}

// Steps reports how many snapshots have been printed.
func (s *Stepper) Steps() int { return s.steps }

// Observe prints one snapshot and blocks until a line (or EOF) arrives.
func (s *Stepper) Observe(snap deltastep.Snapshot) {
	s.steps++
	fmt.Fprintf(s.out, "== step %d: %s (bucket %d, slot %d, delta %s)\n",
		s.steps, snap.Kind, snap.Pointer, snap.Slot, strconv.FormatFloat(snap.Delta, 'g', -1, 64))

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "node\tdistance")
	for v, d := range snap.Dist {
		fmt.Fprintf(tw, "%s\t%s\n", s.labels(v), edgelist.FormatDistance(d))
	}
	_ = tw.Flush()

	for i, slot := range snap.Buckets {
		marker := " "
		if i == snap.Slot {
			marker = "*"
		}
		names := make([]string, len(slot))
		for k, v := range slot {
			names[k] = s.labels(v)
		}
		fmt.Fprintf(s.out, "%s B[%d] {%s}\n", marker, i, strings.Join(names, " "))
	}

	if snap.Kind == deltastep.PhaseDone || s.eof {
		return
	}
	fmt.Fprint(s.out, "-- press Enter to continue --")
	if _, err := s.in.ReadString('\n'); err != nil {
		// stdin closed: run the rest unattended
		s.eof = true
	}
	fmt.Fprintln(s.out)
}
