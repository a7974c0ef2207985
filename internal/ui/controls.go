package ui

import (
	"image"
	"strconv"

	"sparse-life/pkg/core"
)

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	statLineHeight = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []core.ParameterControl) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl, value: "--"}
	}
	return states
}

// layoutControls places the -/+ buttons of each control against the right
// edge of a panel that is width pixels wide.
func layoutControls(states []hudControlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// refreshControlValues copies current values out of the snapshot. Controls
// whose key is missing or not an integer are shown as "--".
func refreshControlValues(states []hudControlState, snapshot core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

// adjustTarget returns the value one step in direction, clamped to the
// control's bounds, and whether it differs from the current value.
func adjustTarget(state *hudControlState, direction int) (int, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	return target, target != state.intValue
}

// applyAdjustment steps a control through setter and reports whether the sim
// accepted the new value.
func applyAdjustment(state *hudControlState, direction int, setter core.IntParameterSetter) bool {
	if setter == nil {
		return false
	}
	target, ok := adjustTarget(state, direction)
	if !ok || !setter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

// hitControl finds the control button under (x, y) in panel coordinates.
func hitControl(states []hudControlState, x, y int) (int, int) {
	for i := range states {
		switch {
		case pointInRect(x, y, states[i].minusRect):
			return i, -1
		case pointInRect(x, y, states[i].plusRect):
			return i, 1
		}
	}
	return -1, 0
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// statLines flattens the snapshot into "Label: value" lines, one header line
// per group.
func statLines(snapshot core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snapshot.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}
