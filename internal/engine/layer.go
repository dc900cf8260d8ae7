package engine

import "fmt"

// Layer is a collision category in the range [0, MaxLayers).
type Layer uint8

const MaxLayers = 32

const (
	LayerDefault Layer = iota
	LayerTransparentFX
	LayerIgnoreRaycast
	_
	LayerWater
	LayerUI
)

// LayerMask is a bit set of layers.
type LayerMask uint32

const (
	NothingMask    LayerMask = 0
	EverythingMask LayerMask = ^LayerMask(0)
)

// MaskOf builds a mask with the given layers set.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << (l % MaxLayers)
	}
	return m
}

func (m LayerMask) Contains(l Layer) bool {
	return m&(1<<(l%MaxLayers)) != 0
}

// Invert returns every layer not in m.
func (m LayerMask) Invert() LayerMask {
	return ^m
}

func (m LayerMask) String() string {
	return fmt.Sprintf("%032b", uint32(m))
}
