package gaze

import (
	"log"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// CombinedResolver resolves the gaze against world colliders and on-screen
// UI graphics and keeps whichever is nearer.
type CombinedResolver struct {
	*Resolver
	surface   SurfaceHitTester
	projector ScreenProjector

	// lastOverlap avoids logging the same overlap every frame.
	lastOverlap *engine.GameObject
}

// NewCombined builds a CombinedResolver. The projector must describe the same
// camera cfg.Origin casts from.
func NewCombined(cfg Config, world WorldHitTester, surface SurfaceHitTester, projector ScreenProjector) (*CombinedResolver, error) {
	base, err := New(cfg, world)
	if err != nil {
		return nil, err
	}
	if missing(surface) {
		return nil, errors.WithStack(ErrMissingSurface)
	}
	if missing(projector) {
		return nil, errors.WithStack(ErrMissingProjector)
	}
	c := &CombinedResolver{
		Resolver:  base,
		surface:   surface,
		projector: projector,
	}
	base.pick = c.pickCombined
	return c, nil
}

func (c *CombinedResolver) pickCombined(origin, forward rl.Vector3) RayHit {
	world := c.pickWorld(origin, forward)
	surface := c.pickSurface(origin, forward)

	hit, overlap := Reconcile(world, surface, c.cfg.RayLength)
	if overlap {
		if c.lastOverlap != surface.Object {
			log.Printf("Gaze: %s occludes its child %s, using the child", world.Object.Name, surface.Object.Name)
		}
		c.lastOverlap = surface.Object
	} else {
		c.lastOverlap = nil
	}
	return hit
}

// pickSurface projects a point one unit along the gaze to the screen and asks
// the surface hit-tester what is drawn there.
func (c *CombinedResolver) pickSurface(origin, forward rl.Vector3) RayHit {
	screen := c.projector.WorldToScreen(rl.Vector3Add(origin, forward))

	results := PreferInteractive(DedupeSurfaces(c.surface.RaycastAll(screen)))
	if len(results) == 0 {
		return NoHit()
	}

	first := results[0]
	return RayHit{
		Item:     interactiveOf(first.GameObject),
		Point:    c.projector.ScreenToWorld(first.ScreenPosition, first.Distance),
		Distance: first.Distance,
		Normal:   rl.Vector3Negate(first.GameObject.Forward()),
		Object:   first.GameObject,
	}
}

// Reconcile picks between the world hit and the surface hit. The nearer valid
// hit within rayLength wins and the world hit wins ties. When the world hit
// wins on a curved canvas and the surface hit is an interactive element inside
// that canvas, the surface hit is returned with the world distance and overlap
// is true.
func Reconcile(world, surface RayHit, rayLength float32) (hit RayHit, overlap bool) {
	candidates := []RayHit{world, surface}
	winner, idx, ok := FindClosest(candidates, rayLength, func(h RayHit) float32 {
		return h.Distance
	})
	if !ok {
		return NoHit(), false
	}
	if idx == 0 && occludesChild(world, surface) {
		edge := surface
		edge.Distance = world.Distance
		return edge, true
	}
	return winner, false
}

func occludesChild(world, surface RayHit) bool {
	if world.Object == nil || surface.Object == nil || surface.Item == nil {
		return false
	}
	curved := engine.FindComponent[CurvedSurface](world.Object)
	if curved == nil || !curved.IsCurved() {
		return false
	}
	return surface.Object.IsChildOf(world.Object)
}

// DedupeSurfaces drops repeated objects, keeping the first (nearest)
// occurrence. Results without an object are dropped.
func DedupeSurfaces(results []engine.SurfaceResult) []engine.SurfaceResult {
	seen := make(map[*engine.GameObject]struct{}, len(results))
	out := make([]engine.SurfaceResult, 0, len(results))
	for _, res := range results {
		if res.GameObject == nil {
			continue
		}
		if _, dup := seen[res.GameObject]; dup {
			continue
		}
		seen[res.GameObject] = struct{}{}
		out = append(out, res)
	}
	return out
}

// PreferInteractive narrows results to the first interactive element when
// there is one. Plain graphics are only kept when nothing is interactive.
func PreferInteractive(results []engine.SurfaceResult) []engine.SurfaceResult {
	for _, res := range results {
		if interactiveOf(res.GameObject) != nil {
			return []engine.SurfaceResult{res}
		}
	}
	return results
}
