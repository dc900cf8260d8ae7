// Package input turns raw button state into the discrete gaze signals.
package input

import (
	"time"

	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"
)

const DefaultDoubleClickTime = 300 * time.Millisecond

// VRInput implements gaze.InputSource. A press fires Down. A release fires
// Up, then DoubleClick when it comes within DoubleClickTime of the previous
// release, or Click otherwise.
type VRInput struct {
	DoubleClickTime time.Duration

	events  [gaze.NumInputKinds]engine.Event
	down    bool
	lastUp  time.Time
	hasLast bool
}

var _ gaze.InputSource = (*VRInput)(nil)

func NewVRInput(doubleClick time.Duration) *VRInput {
	if doubleClick <= 0 {
		doubleClick = DefaultDoubleClickTime
	}
	return &VRInput{DoubleClickTime: doubleClick}
}

func (in *VRInput) Subscribe(kind gaze.InputKind, fn func()) engine.ListenerID {
	if kind < 0 || int(kind) >= gaze.NumInputKinds {
		return 0
	}
	return in.events[kind].AddListener(fn)
}

func (in *VRInput) Unsubscribe(kind gaze.InputKind, id engine.ListenerID) {
	if kind < 0 || int(kind) >= gaze.NumInputKinds {
		return
	}
	in.events[kind].RemoveListener(id)
}

// Listeners returns how many callbacks are subscribed to kind.
func (in *VRInput) Listeners(kind gaze.InputKind) int {
	if kind < 0 || int(kind) >= gaze.NumInputKinds {
		return 0
	}
	return in.events[kind].GetListenerCount()
}

// Process feeds the select button state for one frame.
func (in *VRInput) Process(held bool, now time.Time) {
	switch {
	case held && !in.down:
		in.down = true
		in.events[gaze.InputDown].Invoke()
	case !held && in.down:
		in.down = false
		in.events[gaze.InputUp].Invoke()
		if in.hasLast && now.Sub(in.lastUp) < in.DoubleClickTime {
			in.events[gaze.InputDoubleClick].Invoke()
		} else {
			in.events[gaze.InputClick].Invoke()
		}
		in.lastUp = now
		in.hasLast = true
	}
}
