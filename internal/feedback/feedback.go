// Package feedback plays short audio cues for gaze events.
package feedback

import (
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"
)

// Feedback listens to a resolver's hit channel and an input source and
// turns them into cues. A target cue plays only when the hit object changes.
type Feedback struct {
	player Player

	hits   *engine.EventWithArg[engine.RaycastResult]
	hitID  engine.ListenerID
	input  gaze.InputSource
	inputs [2]engine.ListenerID

	lastObject *engine.GameObject
}

func New(player Player) *Feedback {
	return &Feedback{player: player}
}

// Attach subscribes to hits and, when non-nil, to input clicks.
func (f *Feedback) Attach(hits *engine.EventWithArg[engine.RaycastResult], input gaze.InputSource) {
	f.Detach()
	f.hits = hits
	f.hitID = hits.AddListener(f.OnHit)
	if input != nil {
		f.input = input
		f.inputs[0] = input.Subscribe(gaze.InputClick, func() { f.player.Play(SoundClick) })
		f.inputs[1] = input.Subscribe(gaze.InputDoubleClick, func() { f.player.Play(SoundDoubleClick) })
	}
}

// Detach removes every subscription made by Attach.
func (f *Feedback) Detach() {
	if f.hits != nil {
		f.hits.RemoveListener(f.hitID)
		f.hits = nil
	}
	if f.input != nil {
		f.input.Unsubscribe(gaze.InputClick, f.inputs[0])
		f.input.Unsubscribe(gaze.InputDoubleClick, f.inputs[1])
		f.input = nil
	}
	f.lastObject = nil
}

// OnHit handles one published world hit.
func (f *Feedback) OnHit(hit engine.RaycastResult) {
	if hit.GameObject == f.lastObject {
		return
	}
	f.lastObject = hit.GameObject
	f.player.Play(SoundTarget)
}
