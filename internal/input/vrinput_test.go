package input

import (
	"testing"
	"time"

	"vrgaze/internal/gaze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(in *VRInput) *[]string {
	var log []string
	for kind := gaze.InputKind(0); int(kind) < gaze.NumInputKinds; kind++ {
		k := kind
		in.Subscribe(k, func() { log = append(log, k.String()) })
	}
	return &log
}

func TestPressRelease(t *testing.T) {
	in := NewVRInput(300 * time.Millisecond)
	log := record(in)
	t0 := time.Unix(100, 0)

	in.Process(true, t0)
	in.Process(true, t0.Add(10*time.Millisecond))
	assert.Equal(t, []string{"down"}, *log, "holding does not repeat")

	in.Process(false, t0.Add(50*time.Millisecond))
	in.Process(false, t0.Add(60*time.Millisecond))
	assert.Equal(t, []string{"down", "up", "click"}, *log)
}

func TestDoubleClickWindow(t *testing.T) {
	in := NewVRInput(300 * time.Millisecond)
	log := record(in)
	t0 := time.Unix(100, 0)

	in.Process(true, t0)
	in.Process(false, t0.Add(50*time.Millisecond))
	in.Process(true, t0.Add(150*time.Millisecond))
	in.Process(false, t0.Add(200*time.Millisecond))

	assert.Equal(t, []string{"down", "up", "click", "down", "up", "double-click"}, *log)

	*log = nil
	in.Process(true, t0.Add(900*time.Millisecond))
	in.Process(false, t0.Add(950*time.Millisecond))
	assert.Equal(t, []string{"down", "up", "click"}, *log, "release outside the window is a plain click")
}

func TestSubscribeUnsubscribe(t *testing.T) {
	in := NewVRInput(0)
	assert.Equal(t, DefaultDoubleClickTime, in.DoubleClickTime)

	calls := 0
	id := in.Subscribe(gaze.InputDown, func() { calls++ })
	require.NotZero(t, id)
	assert.Equal(t, 1, in.Listeners(gaze.InputDown))

	in.Process(true, time.Unix(0, 0))
	in.Unsubscribe(gaze.InputDown, id)
	in.Process(false, time.Unix(1, 0))
	in.Process(true, time.Unix(2, 0))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, in.Listeners(gaze.InputDown))

	assert.Zero(t, in.Subscribe(gaze.InputKind(99), func() {}))
	in.Unsubscribe(gaze.InputKind(-1), 1)
}
