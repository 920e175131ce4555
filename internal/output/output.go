// Package output writes the record of a finished run.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

// Trace records one run: where it started, every step, and how it ended.
type Trace struct {
	RunID    string             `json:"run_id" yaml:"run_id"`
	Grid     string             `json:"grid" yaml:"grid"`
	Start    interpreter.Pose   `json:"start" yaml:"start"`
	Sequence string             `json:"sequence" yaml:"sequence"`
	Steps    []interpreter.Step `json:"steps" yaml:"steps"`
	Final    interpreter.Pose   `json:"final" yaml:"final"`
	OnGrid   bool               `json:"on_grid" yaml:"on_grid"`
	Halt     *Halt              `json:"halt,omitempty" yaml:"halt,omitempty"`
}

// Halt describes why a run stopped before its last command.
type Halt struct {
	Kind  interpreter.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Step  int              `json:"step" yaml:"step"`
	Error string           `json:"error" yaml:"error"`
}

// NewTrace starts a trace for run.
func NewTrace(run *interpreter.Run, seq interpreter.Sequence) *Trace {
	start := run.Robot().Pose()
	return &Trace{
		RunID:    run.ID,
		Grid:     run.Robot().Grid().String(),
		Start:    start,
		Sequence: seq.String(),
		Steps:    make([]interpreter.Step, 0, run.Len()),
		Final:    start,
		OnGrid:   true,
	}
}

// Record appends one step result. A non-nil err marks the trace as halted.
func (t *Trace) Record(g interpreter.Grid, step interpreter.Step, err error) {
	if err != nil {
		t.Halt = &Halt{Kind: interpreter.KindOf(err), Step: step.Index, Error: err.Error()}
		return
	}
	t.Steps = append(t.Steps, step)
	t.Final = step.Pose
	t.OnGrid = g.Contains(step.Pose.X, step.Pose.Y)
}

// Formatter writes a trace in one format.
type Formatter interface {
	Format(t *Trace) error
}

// New returns the formatter for format: text, json or yaml.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "text":
		return &TextFormatter{writer: w}, nil
	case "json":
		return &JSONFormatter{writer: w}, nil
	case "yaml":
		return &YAMLFormatter{writer: w}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

// TextFormatter prints a short summary; the board itself is drawn while the
// run is animated.
type TextFormatter struct {
	writer io.Writer
}

//nolint:errcheck // best-effort terminal output
func (f *TextFormatter) Format(t *Trace) error {
	fmt.Fprintf(f.writer, "run %s on %s: %s -> %s after %d step(s)\n", t.RunID, t.Grid, t.Start, t.Final, len(t.Steps))
	if !t.OnGrid {
		fmt.Fprintln(f.writer, "warning: the cleaner ended outside the grid")
	}
	if t.Halt != nil {
		fmt.Fprintf(f.writer, "halted at step %d: %s\n", t.Halt.Step, t.Halt.Error)
	}
	return nil
}

// JSONFormatter writes the trace as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

func (f *JSONFormatter) Format(t *Trace) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.writer.Write(data)
	return err
}

// YAMLFormatter writes the trace as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

func (f *YAMLFormatter) Format(t *Trace) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))
	if err := encoder.Encode(t); err != nil {
		return err
	}
	return encoder.Close()
}
