package pnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceFIFOOrdering(t *testing.T) {
	typ := &TokenType{Name: "marker"}
	p := newPlace("P", 0, typ, FIFO)

	a := newToken(1, typ, nil)
	b := newToken(2, typ, nil)
	require.NoError(t, p.push(a))
	require.NoError(t, p.push(b))

	got, err := p.pop()
	require.NoError(t, err)
	assert.Equal(t, a.ID(), got.ID())
}

func TestPlaceLIFOOrdering(t *testing.T) {
	typ := &TokenType{Name: "marker"}
	p := newPlace("P", 0, typ, LIFO)

	a := newToken(1, typ, nil)
	b := newToken(2, typ, nil)
	require.NoError(t, p.push(a))
	require.NoError(t, p.push(b))

	got, err := p.pop()
	require.NoError(t, err)
	assert.Equal(t, b.ID(), got.ID())
}

func TestPlacePushRejectsWrongTokenType(t *testing.T) {
	typA := &TokenType{Name: "a"}
	typB := &TokenType{Name: "b"}
	p := newPlace("P", 0, typA, FIFO)

	err := p.push(newToken(1, typB, nil))
	require.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestPlacePopOnEmptyIsAnError(t *testing.T) {
	typ := &TokenType{Name: "marker"}
	p := newPlace("P", 0, typ, FIFO)

	_, err := p.pop()
	require.Error(t, err)
}

type recordingPresence struct {
	someCount int
	noneCount int
}

func (r *recordingPresence) reportSomeToken() { r.someCount++ }
func (r *recordingPresence) reportNoToken()   { r.noneCount++ }

func TestPlaceNotifiesPresenceOnlyOnEmptyNonEmptyCrossings(t *testing.T) {
	typ := &TokenType{Name: "marker"}
	p := newPlace("P", 0, typ, FIFO)
	r := &recordingPresence{}
	p.presenceObservers = append(p.presenceObservers, r)

	require.NoError(t, p.push(newToken(1, typ, nil)))
	assert.Equal(t, 1, r.someCount)

	require.NoError(t, p.push(newToken(2, typ, nil)))
	assert.Equal(t, 1, r.someCount, "pushing onto a non-empty place must not re-notify")

	_, err := p.pop()
	require.NoError(t, err)
	assert.Equal(t, 0, r.noneCount, "popping down to one remaining token must not notify")

	_, err = p.pop()
	require.NoError(t, err)
	assert.Equal(t, 1, r.noneCount)
}

func TestPlacePeekDoesNotRemove(t *testing.T) {
	typ := &TokenType{Name: "marker"}
	p := newPlace("P", 0, typ, FIFO)
	require.NoError(t, p.push(newToken(1, typ, nil)))

	tok, ok := p.Peek()
	require.True(t, ok)
	assert.Equal(t, uint64(1), tok.ID())
	assert.Equal(t, 1, p.Len())
}
