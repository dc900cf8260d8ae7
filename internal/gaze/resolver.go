package gaze

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Resolver casts the gaze ray against world colliders once per Tick and
// keeps track of which Interactive is being looked at.
//
// A Resolver is not safe for concurrent use. Listeners and Interactive
// callbacks run synchronously inside Tick and must not call Tick themselves.
type Resolver struct {
	cfg     Config
	world   WorldHitTester
	reticle Reticle
	debug   DebugSink

	// pick produces this frame's winning hit. CombinedResolver swaps it.
	pick func(origin, forward rl.Vector3) RayHit

	current Interactive
	last    Interactive

	input   InputSource
	handles [inputKindCount]engine.ListenerID

	// OnRaycastHit fires once per Tick whose winning hit came from the world
	// hit-tester, with the raw collider hit.
	OnRaycastHit engine.EventWithArg[engine.RaycastResult]
}

// New builds a Resolver. It fails when a required collaborator is missing.
func New(cfg Config, world WorldHitTester) (*Resolver, error) {
	if missing(cfg.Origin) {
		return nil, errors.WithStack(ErrMissingOrigin)
	}
	if missing(world) {
		return nil, errors.WithStack(ErrMissingWorld)
	}
	if cfg.RayLength <= 0 {
		return nil, errors.Wrapf(ErrInvalidRayLength, "got %v", cfg.RayLength)
	}
	r := &Resolver{cfg: cfg, world: world}
	r.pick = r.pickWorld
	return r, nil
}

// SetReticle attaches the reticle. Nil detaches it.
func (r *Resolver) SetReticle(reticle Reticle) {
	r.reticle = reticle
}

// SetDebugSink attaches the debug ray drawer. Nil detaches it.
func (r *Resolver) SetDebugSink(sink DebugSink) {
	r.debug = sink
}

// SetShowDebugRay turns the debug ray on or off.
func (r *Resolver) SetShowDebugRay(show bool) {
	r.cfg.ShowDebugRay = show
}

// Current returns the Interactive under the gaze, or nil.
func (r *Resolver) Current() Interactive {
	return r.current
}

// Config returns the configuration the resolver was built with.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Active reports whether the resolver is subscribed to an input source.
func (r *Resolver) Active() bool {
	return r.input != nil
}

// Start subscribes to src. Stop must be called before starting again.
func (r *Resolver) Start(src InputSource) error {
	if missing(src) {
		return errors.WithStack(ErrMissingInput)
	}
	if r.input != nil {
		return errors.WithStack(ErrAlreadyStarted)
	}
	r.input = src
	r.handles[InputClick] = src.Subscribe(InputClick, r.handleClick)
	r.handles[InputDoubleClick] = src.Subscribe(InputDoubleClick, r.handleDoubleClick)
	r.handles[InputDown] = src.Subscribe(InputDown, r.handleDown)
	r.handles[InputUp] = src.Subscribe(InputUp, r.handleUp)
	return nil
}

// Stop removes every subscription made by Start. Safe to call when stopped.
func (r *Resolver) Stop() {
	if r.input == nil {
		return
	}
	for kind := InputKind(0); kind < inputKindCount; kind++ {
		r.input.Unsubscribe(kind, r.handles[kind])
		r.handles[kind] = 0
	}
	r.input = nil
}

// Tick runs one frame of gaze resolution.
func (r *Resolver) Tick() {
	origin, forward := r.cfg.Origin.GazeRay()

	if r.cfg.ShowDebugRay && r.debug != nil {
		r.debug.DrawRay(origin, forward, r.cfg.DebugRayLength, rl.Blue, r.cfg.DebugRayDuration)
	}

	r.apply(r.pick(origin, forward))
}

// apply moves the target state to hit and fires the transitions.
func (r *Resolver) apply(hit RayHit) {
	if !hit.Valid() {
		r.deactivateLast()
		r.current = nil
		if r.reticle != nil {
			r.reticle.SetDefaultPosition()
		}
		return
	}

	item := hit.Item
	r.current = item

	if item != nil && item != r.last {
		item.Enter()
	}
	if item != r.last {
		r.deactivateLast()
	}
	r.last = item

	if r.reticle != nil {
		r.reticle.SetPosition(hit.Point, hit.Distance, hit.Normal)
	}
	if hit.HasHit {
		r.OnRaycastHit.Invoke(hit.Native)
	}
}

func (r *Resolver) deactivateLast() {
	if r.last == nil {
		return
	}
	r.last.Exit()
	r.last = nil
}

// pickWorld asks the world hit-tester alone.
func (r *Resolver) pickWorld(origin, forward rl.Vector3) RayHit {
	res, ok := r.world.Raycast(origin, forward, r.cfg.RayLength, r.cfg.ExcludedLayers)
	if !ok {
		return NoHit()
	}
	return RayHit{
		Item:     interactiveOf(res.GameObject),
		Point:    res.Point,
		Distance: res.Distance,
		Normal:   res.Normal,
		Native:   res,
		HasHit:   true,
		Object:   res.GameObject,
	}
}

func (r *Resolver) handleClick() {
	if r.current != nil {
		r.current.Click()
	}
}

func (r *Resolver) handleDoubleClick() {
	if r.current != nil {
		r.current.DoubleClick()
	}
}

func (r *Resolver) handleDown() {
	if r.current != nil {
		r.current.Press()
	}
}

func (r *Resolver) handleUp() {
	if r.current != nil {
		r.current.Release()
	}
}
