// Package gaze resolves what the viewer is looking at.
//
// Every frame a Resolver casts one ray along the head camera's forward axis,
// picks a single winning hit and drives enter/exit transitions on the
// Interactive under it. Click, double-click, press and release signals from an
// InputSource are forwarded to whatever is currently targeted.
//
// The base Resolver only asks the world (collider) hit-tester. A
// CombinedResolver also asks a screen-space surface hit-tester for UI elements
// and reconciles both answers by distance, with one exception: a curved canvas
// that wins the world test is replaced by its own interactive child from the
// surface test, keeping the canvas distance.
package gaze
