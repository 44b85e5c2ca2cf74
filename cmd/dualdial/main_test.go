package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/phanxgames/dualdial"
	"github.com/phanxgames/dualdial/pkg/logger"
)

func runScript(t *testing.T, script string, placed bool) *dualdial.TestRunner {
	t.Helper()
	runner, err := dualdial.LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	d := dualdial.NewDial(dualdial.DialConfig{Input: dualdial.NewInput()})
	if placed {
		d.SetCenter(240, 240)
	}
	d.SetTestRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		d.Update()
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
	return runner
}

func TestScriptExitCode(t *testing.T) {
	ctx := context.Background()
	passing := `{"steps": [
		{"action": "arc", "radius": 150, "startDeg": 0, "endDeg": 90, "stepDeg": 10},
		{"action": "expect", "outer": "stressing"}
	]}`
	wrongExpect := `{"steps": [{"action": "expect", "label": "rest", "outer": "relaxing"}]}`

	tests := []struct {
		name   string
		runner *dualdial.TestRunner
		want   int
		logged string
	}{
		{"no script", nil, 0, ""},
		{"passing script", runScript(t, passing, true), 0, "script passed"},
		{"failed expectation", runScript(t, wrongExpect, true), 1, "script expectation failed"},
		{"arc without layout", runScript(t, passing, false), 1, "arc on a dial with no centre"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		log := logger.New(&buf, slog.LevelInfo)
		if got := scriptExitCode(ctx, log, tt.runner); got != tt.want {
			t.Errorf("%s: scriptExitCode = %d, want %d", tt.name, got, tt.want)
		}
		if tt.logged != "" && !strings.Contains(buf.String(), tt.logged) {
			t.Errorf("%s: log %q does not mention %q", tt.name, buf.String(), tt.logged)
		}
	}
}
