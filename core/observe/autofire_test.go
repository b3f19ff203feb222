package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spn-core/core/fire"
	"spn-core/core/pnet"
)

func TestAutoFireEnablesAndDisablesOnNetEvents(t *testing.T) {
	net := pnet.NewNet(nil)
	fc := fire.New(fire.NewRand(1, 1), nil)
	net.RegisterPlugin(NewAutoFire(fc))

	typ, err := net.AddType("marker")
	require.NoError(t, err)
	p, err := net.AddPlace("P", typ, pnet.FIFO)
	require.NoError(t, err)

	start, err := net.AddImmediateTransition("start", 1, 1)
	require.NoError(t, err)
	_, err = net.AddInhibitor("guard", p.Name, start.Name)
	require.NoError(t, err)
	_, err = net.AddConstructor("produce", start.Name, p.Name)
	require.NoError(t, err)

	net.Start()
	fc.Start()

	_, chosen, err := fc.SelectNext()
	require.NoError(t, err)
	assert.Equal(t, start.Name, chosen.Name, "AutoFire must have enabled start at net.Start()")

	require.NoError(t, start.Fire())
	assert.False(t, start.Enabled(), "start must observe its own disable through the inhibitor")

	_, _, err = fc.SelectNext()
	require.ErrorIs(t, err, pnet.ErrNoEnabledTransition, "fire control must also see start as removed")
}
