package components

import (
	"time"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type debugLine struct {
	start, end rl.Vector3
	color      rl.Color
	expires    time.Time
}

// DebugLines keeps short-lived line segments for the 3D pass.
type DebugLines struct {
	engine.BaseComponent
	lines []debugLine

	// now is swapped in tests
	now func() time.Time
}

func NewDebugLines() *DebugLines {
	return &DebugLines{now: time.Now}
}

// DrawRay implements gaze.DebugSink.
func (d *DebugLines) DrawRay(origin, dir rl.Vector3, length float32, color rl.Color, duration time.Duration) {
	end := rl.Vector3Add(origin, rl.Vector3Scale(rl.Vector3Normalize(dir), length))
	d.lines = append(d.lines, debugLine{
		start:   origin,
		end:     end,
		color:   color,
		expires: d.now().Add(duration),
	})
}

// Update drops expired segments.
func (d *DebugLines) Update(deltaTime float32) {
	now := d.now()
	kept := d.lines[:0]
	for _, l := range d.lines {
		if now.Before(l.expires) {
			kept = append(kept, l)
		}
	}
	d.lines = kept
}

// Len returns the number of live segments.
func (d *DebugLines) Len() int {
	return len(d.lines)
}

// Draw must be called inside BeginMode3D.
func (d *DebugLines) Draw() {
	for _, l := range d.lines {
		rl.DrawLine3D(l.start, l.end, l.color)
	}
}
