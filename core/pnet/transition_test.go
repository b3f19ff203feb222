package pnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransitionObserver struct {
	enabledCount, disabledCount int
	fired                       int
}

func (r *recordingTransitionObserver) BeforeFiring() {}
func (r *recordingTransitionObserver) AfterFiring()  { r.fired++ }
func (r *recordingTransitionObserver) GotEnabled()   { r.enabledCount++ }
func (r *recordingTransitionObserver) GotDisabled()  { r.disabledCount++ }

func TestTransitionFiresOnlyGotEnabledOnZeroCrossing(t *testing.T) {
	tr := newTransition("t", 0, nil)
	obs := &recordingTransitionObserver{}
	tr.observers = append(tr.observers, obs)

	tr.incrementDisabledArcCount()
	tr.incrementDisabledArcCount()
	assert.Equal(t, 1, obs.disabledCount, "only the 0->1 crossing should notify")

	tr.decrementDisabledArcCount()
	assert.False(t, tr.Enabled())
	assert.Equal(t, 0, obs.enabledCount)

	tr.decrementDisabledArcCount()
	assert.True(t, tr.Enabled())
	assert.Equal(t, 1, obs.enabledCount, "only the 1->0 crossing should notify")
}

func TestFireRejectsADisabledTransition(t *testing.T) {
	tr := newTransition("t", 0, nil)
	tr.incrementDisabledArcCount()

	err := tr.Fire()
	require.Error(t, err)
}

func TestFireRunsArcFlowAndNotifiesAfterFiring(t *testing.T) {
	net := NewNet(nil)
	typ, err := net.AddType("marker")
	require.NoError(t, err)
	p, err := net.AddPlace("P", typ, FIFO)
	require.NoError(t, err)

	tr, err := net.AddImmediateTransition("produce", 1, 1)
	require.NoError(t, err)
	_, err = net.AddConstructor("arc", tr.Name, p.Name)
	require.NoError(t, err)

	obs := &recordingTransitionObserver{}
	tr.observers = append(tr.observers, obs)

	require.NoError(t, tr.Fire())
	assert.Equal(t, 1, obs.fired)
	assert.Equal(t, 1, p.Len())
}
