package dualdial

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	// arc: sweep around the dial centre at Radius from StartDeg to EndDeg.
	Radius   float64 `json:"radius,omitempty"`
	StartDeg float64 `json:"startDeg,omitempty"`
	EndDeg   float64 `json:"endDeg,omitempty"`
	StepDeg  float64 `json:"stepDeg,omitempty"`

	// expect: selection the dial should report at this point.
	Outer string `json:"outer,omitempty"`
	Inner string `json:"inner,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click": true, "drag": true, "touchdrag": true, "arc": true,
	"wait": true, "screenshot": true, "expect": true,
}

// TestRunner sequences injected input events, selection checks and
// screenshots across frames for automated testing. Attach to a Dial via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Dial via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the dial. The runner's step method
// is called from Dial.Update before input is processed each frame.
func (d *Dial) SetTestRunner(runner *TestRunner) {
	d.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns a description of every expect step that did not match.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Dial.Update.
func (r *TestRunner) step(d *Dial) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if d.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		d.Screenshot(st.Label)
	case "click":
		d.input.InjectClick(st.X, st.Y)
	case "drag":
		d.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "touchdrag":
		d.input.InjectTouchDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "arc":
		c, ok := d.Center()
		if !ok {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d (%s): arc on a dial with no centre", r.cursor-1, st.Label))
			break
		}
		d.input.InjectArc(c.X, c.Y, st.Radius, st.StartDeg, st.EndDeg, st.StepDeg)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		r.expect(d.Selection(), st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && d.input.Pending() == 0 {
		r.done = true
	}
}

func (r *TestRunner) expect(got Selection, st testStep) {
	if st.Outer != "" && got.Outer != st.Outer {
		r.failures = append(r.failures,
			fmt.Sprintf("step %d (%s): outer = %q, want %q", r.cursor-1, st.Label, got.Outer, st.Outer))
	}
	if st.Inner != "" && got.Inner != st.Inner {
		r.failures = append(r.failures,
			fmt.Sprintf("step %d (%s): inner = %q, want %q", r.cursor-1, st.Label, got.Inner, st.Inner))
	}
}
