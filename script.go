package arbor

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string   `json:"action"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Button string   `json:"button,omitempty"`
	Wheel  float64  `json:"wheel,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Mods   []string `json:"mods,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a deterministic InputSource that replays a recorded or authored
// input sequence one frame at a time. Useful for tests and regression
// capture; once exhausted it keeps reporting the final idle state.
type Script struct {
	frames []InputState
	cursor int
}

// LoadScript parses a JSON input script and compiles it into per-frame
// input states.
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return compileScript(script.Steps)
}

func compileScript(steps []scriptStep) (*Script, error) {
	s := &Script{}
	cur := InputState{}

	emit := func() {
		frame := cur
		frame.Wheel = 0
		s.frames = append(s.frames, frame)
	}

	for i, st := range steps {
		switch st.Action {
		case "move":
			cur.MousePos = Vec2{st.X, st.Y}
			cur.Modifiers = parseMods(st.Mods)
			emit()
		case "press":
			cur.MousePos = Vec2{st.X, st.Y}
			cur.Buttons[parseButton(st.Button)] = true
			cur.Modifiers = parseMods(st.Mods)
			emit()
		case "release":
			cur.Buttons[parseButton(st.Button)] = false
			emit()
		case "wheel":
			cur.Modifiers = parseMods(st.Mods)
			frame := cur
			frame.Wheel = st.Wheel
			s.frames = append(s.frames, frame)
		case "drag":
			frames := st.Frames
			if frames < 2 {
				frames = 2
			}
			button := parseButton(st.Button)
			cur.Modifiers = parseMods(st.Mods)
			cur.MousePos = Vec2{st.FromX, st.FromY}
			cur.Buttons[button] = true
			emit()
			for f := 1; f <= frames; f++ {
				t := float64(f) / float64(frames)
				cur.MousePos = Vec2{
					X: st.FromX + (st.ToX-st.FromX)*t,
					Y: st.FromY + (st.ToY-st.FromY)*t,
				}
				emit()
			}
			cur.Buttons[button] = false
			emit()
		case "wait":
			frames := st.Frames
			if frames < 1 {
				frames = 1
			}
			for f := 0; f < frames; f++ {
				emit()
			}
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return s, nil
}

func parseButton(name string) MouseButton {
	switch name {
	case "right":
		return MouseButtonRight
	case "middle":
		return MouseButtonMiddle
	default:
		return MouseButtonLeft
	}
}

func parseMods(names []string) KeyModifiers {
	var mods KeyModifiers
	for _, n := range names {
		switch n {
		case "shift":
			mods |= ModShift
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "meta":
			mods |= ModMeta
		}
	}
	return mods
}

// Done reports whether every scripted frame has been consumed.
func (s *Script) Done() bool { return s.cursor >= len(s.frames) }

// ReadInput returns the next scripted frame, or the final state with all
// buttons released once the script is exhausted.
func (s *Script) ReadInput() InputState {
	if s.cursor < len(s.frames) {
		frame := s.frames[s.cursor]
		s.cursor++
		return frame
	}
	if len(s.frames) == 0 {
		return InputState{}
	}
	last := s.frames[len(s.frames)-1]
	last.Buttons = [3]bool{}
	last.Wheel = 0
	return last
}
