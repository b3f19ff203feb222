package pnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcKindClassification(t *testing.T) {
	assert.True(t, ArcDestructor.isConsumer())
	assert.True(t, ArcTransfer.isConsumer())
	assert.False(t, ArcTest.isConsumer())
	assert.False(t, ArcInhibitor.isConsumer())
	assert.False(t, ArcConstructor.isConsumer())

	assert.True(t, ArcTest.isPresenceObserver())
	assert.True(t, ArcInhibitor.isPresenceObserver())
	assert.True(t, ArcDestructor.isPresenceObserver())
	assert.True(t, ArcTransfer.isPresenceObserver())
	assert.False(t, ArcConstructor.isPresenceObserver())
}

func TestTransferArcIntoItselfNeverLeavesThePlaceObservablyEmpty(t *testing.T) {
	net := NewNet(nil)
	typ, err := net.AddType("marker")
	require.NoError(t, err)
	s, err := net.AddPlace("S", typ, FIFO)
	require.NoError(t, err)

	seed, err := net.AddImmediateTransition("seed", 1, 1)
	require.NoError(t, err)
	_, err = net.AddInhibitor("seed_guard", s.Name, seed.Name)
	require.NoError(t, err)
	_, err = net.AddConstructor("seed_produce", seed.Name, s.Name)
	require.NoError(t, err)

	loop, err := net.AddImmediateTransition("loop", 1, 1)
	require.NoError(t, err)
	_, err = net.AddTransfer("loop_refill", loop.Name, s.Name, s.Name)
	require.NoError(t, err)

	net.Start()
	require.True(t, seed.Enabled())
	require.False(t, loop.Enabled())

	require.NoError(t, seed.Fire())
	assert.False(t, seed.Enabled())
	assert.True(t, loop.Enabled())
	assert.Equal(t, 1, s.Len())

	for i := 0; i < 5; i++ {
		require.NoError(t, loop.Fire())
		assert.Equal(t, 1, s.Len())
		assert.True(t, loop.Enabled())
	}
}

func TestDestructorArcDestroysTheToken(t *testing.T) {
	net := NewNet(nil)
	typ, err := net.AddType("marker")
	require.NoError(t, err)
	p, err := net.AddPlace("P", typ, FIFO)
	require.NoError(t, err)

	var destroyed bool
	net.RegisterPlugin(destructionSpy{fn: func() { destroyed = true }})

	produce, err := net.AddImmediateTransition("produce", 1, 1)
	require.NoError(t, err)
	_, err = net.AddConstructor("make", produce.Name, p.Name)
	require.NoError(t, err)

	consume, err := net.AddImmediateTransition("consume", 1, 1)
	require.NoError(t, err)
	_, err = net.AddDestructor("kill", consume.Name, p.Name)
	require.NoError(t, err)

	require.NoError(t, produce.Fire())
	require.NoError(t, consume.Fire())
	assert.True(t, destroyed)
}

type destructionSpy struct {
	BasePlugin
	fn func()
}

func (d destructionSpy) ObserveToken(*Token) TokenObserver { return &destructionSpyObserver{fn: d.fn} }

type destructionSpyObserver struct {
	fn func()
}

func (o *destructionSpyObserver) ReportConstruction()       {}
func (o *destructionSpyObserver) ReportDestruction()         { o.fn() }
func (o *destructionSpyObserver) ReportArrivalAt(*Place)     {}
func (o *destructionSpyObserver) ReportDepartureFrom(*Place) {}
