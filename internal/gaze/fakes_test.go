package gaze

import (
	"time"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeOrigin struct {
	origin, forward rl.Vector3
}

func (o *fakeOrigin) GazeRay() (rl.Vector3, rl.Vector3) {
	return o.origin, o.forward
}

type worldCall struct {
	origin, direction rl.Vector3
	maxDistance       float32
	exclude           engine.LayerMask
}

type fakeWorld struct {
	hit   engine.RaycastResult
	ok    bool
	calls []worldCall
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.LayerMask) (engine.RaycastResult, bool) {
	w.calls = append(w.calls, worldCall{origin, direction, maxDistance, exclude})
	return w.hit, w.ok
}

func (w *fakeWorld) hitObject(g *engine.GameObject, distance float32) {
	w.ok = true
	w.hit = engine.RaycastResult{
		GameObject: g,
		Point:      rl.Vector3{Z: -distance},
		Normal:     rl.Vector3{Z: 1},
		Distance:   distance,
	}
}

func (w *fakeWorld) miss() {
	w.ok = false
	w.hit = engine.RaycastResult{}
}

type fakeSurface struct {
	results []engine.SurfaceResult
	points  []rl.Vector2
}

func (s *fakeSurface) RaycastAll(p rl.Vector2) []engine.SurfaceResult {
	s.points = append(s.points, p)
	return s.results
}

// fakeProjector maps screen (x, y) at depth d to world (x, y, d).
type fakeProjector struct{}

func (fakeProjector) WorldToScreen(p rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: 640, Y: 360}
}

func (fakeProjector) ScreenToWorld(s rl.Vector2, depth float32) rl.Vector3 {
	return rl.Vector3{X: s.X, Y: s.Y, Z: depth}
}

// fakeItem records every callback in order.
type fakeItem struct {
	engine.BaseComponent
	name string
	log  *[]string
}

func (f *fakeItem) record(ev string) { *f.log = append(*f.log, f.name+":"+ev) }

func (f *fakeItem) Enter()       { f.record("enter") }
func (f *fakeItem) Exit()        { f.record("exit") }
func (f *fakeItem) Press()       { f.record("press") }
func (f *fakeItem) Release()     { f.record("release") }
func (f *fakeItem) Click()       { f.record("click") }
func (f *fakeItem) DoubleClick() { f.record("doubleclick") }

type fakeCanvas struct {
	engine.BaseComponent
	curved bool
}

func (c *fakeCanvas) IsCurved() bool { return c.curved }

type reticleCall struct {
	point, normal rl.Vector3
	distance      float32
	isDefault     bool
}

type fakeReticle struct {
	calls []reticleCall
}

func (r *fakeReticle) SetPosition(point rl.Vector3, distance float32, normal rl.Vector3) {
	r.calls = append(r.calls, reticleCall{point: point, distance: distance, normal: normal})
}

func (r *fakeReticle) SetDefaultPosition() {
	r.calls = append(r.calls, reticleCall{isDefault: true})
}

type fakeInput struct {
	events [inputKindCount]engine.Event
}

func (in *fakeInput) Subscribe(kind InputKind, fn func()) engine.ListenerID {
	return in.events[kind].AddListener(fn)
}

func (in *fakeInput) Unsubscribe(kind InputKind, id engine.ListenerID) {
	in.events[kind].RemoveListener(id)
}

func (in *fakeInput) fire(kind InputKind) {
	in.events[kind].Invoke()
}

func (in *fakeInput) listeners() int {
	n := 0
	for i := range in.events {
		n += in.events[i].GetListenerCount()
	}
	return n
}

type debugCall struct {
	length   float32
	duration time.Duration
}

type fakeDebug struct {
	calls []debugCall
}

func (d *fakeDebug) DrawRay(origin, direction rl.Vector3, length float32, color rl.Color, duration time.Duration) {
	d.calls = append(d.calls, debugCall{length, duration})
}

// newItemObject returns a GameObject carrying a recording Interactive.
func newItemObject(name string, log *[]string) (*engine.GameObject, *fakeItem) {
	g := engine.NewGameObject(name)
	item := &fakeItem{name: name, log: log}
	g.AddComponent(item)
	return g, item
}

func testOrigin() *fakeOrigin {
	return &fakeOrigin{forward: rl.Vector3{Z: -1}}
}
