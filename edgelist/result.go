package edgelist

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deltastep/deltastep"
)

// Output names a result encoding.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// ParseOutput maps a case-insensitive name to an Output ("" is text).
func ParseOutput(name string) (Output, error) {
	switch name {
	case "", "text", "TEXT", "txt":
		return OutputText, nil
	case "json", "JSON":
		return OutputJSON, nil
	case "yaml", "YAML", "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("%w: output %q", ErrUnknownFormat, name)
	}
}

// Distance is a shortest-path length; +Inf encodes as JSON null.
type Distance float64

// MarshalJSON implements json.Marshaler.
func (d Distance) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(d), 1) {
		return []byte("null"), nil
	}

	return json.Marshal(float64(d))
}

// NodeResult is one row of an encoded result.
type NodeResult struct {
	ID       int      `json:"id" yaml:"id"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Distance Distance `json:"distance" yaml:"distance"`
	Pred     *int     `json:"pred,omitempty" yaml:"pred,omitempty"`
	Path     []int    `json:"path,omitempty" yaml:"path,omitempty"`
}

// Report is the encoded form of a deltastep.Result.
type Report struct {
	Source int          `json:"source" yaml:"source"`
	Delta  float64      `json:"delta" yaml:"delta"`
	Stats  ReportStats  `json:"stats" yaml:"stats"`
	Nodes  []NodeResult `json:"nodes" yaml:"nodes"`
}

// ReportStats mirrors deltastep.Stats with a printable duration.
type ReportStats struct {
	Buckets         int    `json:"buckets" yaml:"buckets"`
	Workers         int    `json:"workers" yaml:"workers"`
	OuterIterations int    `json:"outer_iterations" yaml:"outer_iterations"`
	LightRounds     int    `json:"light_rounds" yaml:"light_rounds"`
	HeavyRounds     int    `json:"heavy_rounds" yaml:"heavy_rounds"`
	LightRequests   int    `json:"light_requests" yaml:"light_requests"`
	HeavyRequests   int    `json:"heavy_requests" yaml:"heavy_requests"`
	Relaxations     int    `json:"relaxations" yaml:"relaxations"`
	Duration        string `json:"duration" yaml:"duration"`
}

// NewReport flattens res. labels may be nil; withPaths adds the full path of
// every reachable node (requires res.Pred).
func NewReport(res *deltastep.Result, labels func(int) string, withPaths bool) Report {
	rep := Report{
		Source: res.Source,
		Delta:  res.Stats.Delta,
		Stats: ReportStats{
			Buckets:         res.Stats.Buckets,
			Workers:         res.Stats.Workers,
			OuterIterations: res.Stats.OuterIterations,
			LightRounds:     res.Stats.LightRounds,
			HeavyRounds:     res.Stats.HeavyRounds,
			LightRequests:   res.Stats.LightRequests,
			HeavyRequests:   res.Stats.HeavyRequests,
			Relaxations:     res.Stats.Relaxations,
			Duration:        res.Stats.Duration.String(),
		},
		Nodes: make([]NodeResult, len(res.Dist)),
	}
	for v, d := range res.Dist {
		row := NodeResult{ID: v, Distance: Distance(d)}
		if labels != nil {
			row.Label = labels(v)
		}
		if res.Pred != nil && res.Pred[v] >= 0 {
			p := res.Pred[v]
			row.Pred = &p
		}
		if withPaths && res.Reachable(v) {
			if path, err := res.PathTo(v); err == nil {
				row.Path = path
			}
		}
		rep.Nodes[v] = row
	}

	return rep
}

// EncodeResult writes rep to w in the given output encoding.
func EncodeResult(w io.Writer, rep Report, out Output) error {
	switch out {
	case OutputText:
		return encodeText(w, rep)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("edgelist: yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: output %q", ErrUnknownFormat, out)
	}
}

func encodeText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "source\t%d\n", rep.Source)
	fmt.Fprintf(tw, "delta\t%s\n", strconv.FormatFloat(rep.Delta, 'g', -1, 64))
	fmt.Fprintf(tw, "buckets\t%d\n", rep.Stats.Buckets)
	fmt.Fprintf(tw, "outer iterations\t%d\n", rep.Stats.OuterIterations)
	fmt.Fprintf(tw, "relaxations\t%d\n", rep.Stats.Relaxations)
	fmt.Fprintf(tw, "\nnode\tdistance\tpred\tpath\n")
	for _, row := range rep.Nodes {
		name := strconv.Itoa(row.ID)
		if row.Label != "" {
			name = row.Label
		}
		pred := "-"
		if row.Pred != nil {
			pred = strconv.Itoa(*row.Pred)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, FormatDistance(float64(row.Distance)), pred, formatPath(row.Path))
	}

	return tw.Flush()
}

// FormatDistance renders d, with "inf" for unreachable.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

func formatPath(p []int) string {
	if len(p) == 0 {
		return "-"
	}
	s := strconv.Itoa(p[0])
	for _, v := range p[1:] {
		s += "->" + strconv.Itoa(v)
	}

	return s
}
