package arbor

import "testing"

func TestLoadScriptMoveAndClick(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "move", "x": 100, "y": 50},
			{"action": "press", "x": 100, "y": 50, "button": "left"},
			{"action": "release", "button": "left"}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	f := script.ReadInput()
	if f.MousePos != (Vec2{100, 50}) || f.Buttons[MouseButtonLeft] {
		t.Errorf("frame 0 = %+v", f)
	}
	f = script.ReadInput()
	if !f.Buttons[MouseButtonLeft] {
		t.Error("frame 1 missing the press")
	}
	f = script.ReadInput()
	if f.Buttons[MouseButtonLeft] {
		t.Error("frame 2 still pressed")
	}
	if !script.Done() {
		t.Error("script not done after three frames")
	}
}

func TestScriptDragInterpolates(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "drag", "fromX": 0, "fromY": 0, "toX": 100, "toY": 50, "frames": 4, "button": "left"}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	// Press frame, four movement frames, release frame.
	var frames []InputState
	for !script.Done() {
		frames = append(frames, script.ReadInput())
	}
	if len(frames) != 6 {
		t.Fatalf("drag compiled to %d frames, want 6", len(frames))
	}
	if !frames[0].Buttons[MouseButtonLeft] || frames[0].MousePos != (Vec2{0, 0}) {
		t.Error("press frame wrong")
	}
	mid := frames[2] // t = 2/4
	if mid.MousePos != (Vec2{50, 25}) {
		t.Errorf("midpoint = %v, want (50, 25)", mid.MousePos)
	}
	last := frames[5]
	if last.Buttons[MouseButtonLeft] || last.MousePos != (Vec2{100, 50}) {
		t.Error("release frame wrong")
	}
}

func TestScriptWheelIsOneFrame(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "wheel", "wheel": 2},
			{"action": "wait"}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if got := script.ReadInput().Wheel; got != 2 {
		t.Errorf("wheel frame = %v, want 2", got)
	}
	if got := script.ReadInput().Wheel; got != 0 {
		t.Errorf("wheel leaked into the next frame: %v", got)
	}
}

func TestScriptModifiers(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "press", "x": 1, "y": 1, "button": "right", "mods": ["shift", "alt"]}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	f := script.ReadInput()
	if !f.Buttons[MouseButtonRight] {
		t.Error("right button not pressed")
	}
	if f.Modifiers != ModShift|ModAlt {
		t.Errorf("modifiers = %b, want shift|alt", f.Modifiers)
	}
}

func TestScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"bad json", `{`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.json)); err == nil {
				t.Error("LoadScript accepted invalid input")
			}
		})
	}
}

func TestScriptExhaustedReleasesButtons(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [{"action": "press", "x": 10, "y": 10, "button": "left"}]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	script.ReadInput()

	f := script.ReadInput() // past the end
	if f.Buttons[MouseButtonLeft] {
		t.Error("exhausted script still holds a button")
	}
	if f.MousePos != (Vec2{10, 10}) {
		t.Error("exhausted script lost the final pointer position")
	}
}

// A scripted drag drives the whole engine end to end.
func TestScriptDrivesNodeDrag(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "wait"},
			{"action": "drag", "fromX": 150, "fromY": 120, "toX": 250, "toY": 120, "frames": 4, "button": "left"},
			{"action": "wait"}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	c, err := NewContext(&Config{Input: script})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	for !script.Done() {
		c.Begin("test", Vec2{800, 600})
		declareGraph(c)
		c.End()
	}

	if got := c.FindNode(1).Bounds.X; got != 200 {
		t.Errorf("node x after scripted drag = %v, want 200", got)
	}
}
