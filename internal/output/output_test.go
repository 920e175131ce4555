package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

func playTrace(t *testing.T, seq interpreter.Sequence) *Trace {
	t.Helper()
	grid := interpreter.Grid{Width: 10, Height: 10}
	robot := interpreter.NewRobot(grid)
	robot.Reset(interpreter.Pose{X: 5, Y: 5, Direction: interpreter.North})

	run := interpreter.NewRun(context.Background(), robot, seq, 0)
	run.ID = "test-run"
	trace := NewTrace(run, seq)
	for step, err := range run.Steps() {
		trace.Record(grid, step, err)
	}
	return trace
}

func demoTrace(t *testing.T) *Trace {
	t.Helper()
	seq, err := interpreter.ParseSequence("DADADADAA")
	require.NoError(t, err)
	return playTrace(t, seq)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("json", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(demoTrace(t)))

	var got struct {
		RunID string `json:"run_id"`
		Grid  string `json:"grid"`
		Steps []struct {
			Index   int    `json:"index"`
			Command string `json:"command"`
		} `json:"steps"`
		Final  map[string]any `json:"final"`
		OnGrid bool           `json:"on_grid"`
		Halt   *Halt          `json:"halt"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "test-run", got.RunID)
	assert.Equal(t, "10x10", got.Grid)
	require.Len(t, got.Steps, 9)
	assert.Equal(t, "D", got.Steps[0].Command)
	assert.Equal(t, 9, got.Steps[8].Index)
	assert.Equal(t, map[string]any{"x": 5.0, "y": 6.0, "direction": "N"}, got.Final)
	assert.True(t, got.OnGrid)
	assert.Nil(t, got.Halt)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("yaml", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(demoTrace(t)))

	type pose struct {
		X         int    `yaml:"x"`
		Y         int    `yaml:"y"`
		Direction string `yaml:"direction"`
	}
	var got struct {
		Sequence string `yaml:"sequence"`
		Start    pose   `yaml:"start"`
		Final    pose   `yaml:"final"`
		Steps    []struct {
			Command string `yaml:"command"`
		} `yaml:"steps"`
		Halt *Halt `yaml:"halt"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "DADADADAA", got.Sequence)
	assert.Equal(t, pose{X: 5, Y: 5, Direction: "N"}, got.Start)
	assert.Equal(t, pose{X: 5, Y: 6, Direction: "N"}, got.Final)
	require.Len(t, got.Steps, 9)
	assert.Equal(t, "A", got.Steps[8].Command)
	assert.Nil(t, got.Halt)
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("text", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(demoTrace(t)))

	assert.Equal(t, "run test-run on 10x10: (5,5,N) -> (5,6,N) after 9 step(s)\n", buf.String())
}

func TestTrace_Halted(t *testing.T) {
	trace := playTrace(t, interpreter.Sequence{interpreter.Advance, interpreter.Command('X')})

	require.NotNil(t, trace.Halt)
	assert.Equal(t, interpreter.KindIllegalMove, trace.Halt.Kind)
	assert.Equal(t, 2, trace.Halt.Step)
	assert.Len(t, trace.Steps, 1)
	assert.Equal(t, interpreter.Pose{X: 5, Y: 6, Direction: interpreter.North}, trace.Final)

	var buf bytes.Buffer
	require.NoError(t, (&TextFormatter{writer: &buf}).Format(trace))
	assert.Contains(t, buf.String(), "halted at step 2")
}

func TestTrace_OffGrid(t *testing.T) {
	seq, err := interpreter.ParseSequence("AAAAAA")
	require.NoError(t, err)
	trace := playTrace(t, seq)

	assert.False(t, trace.OnGrid)
	assert.Equal(t, interpreter.Pose{X: 5, Y: 11, Direction: interpreter.North}, trace.Final)

	var buf bytes.Buffer
	require.NoError(t, (&TextFormatter{writer: &buf}).Format(trace))
	assert.Contains(t, buf.String(), "outside the grid")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
