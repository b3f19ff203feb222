// Package pnet implements the net-structure state machine of a stochastic
// Petri-net simulation core: places, transitions, arcs, tokens, and the
// enabling/disabling protocol driven by token arrivals and departures.
package pnet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Net is the arena owning every place, transition, arc, and token created
// during construction. All cross-entity references are held as pointers
// into this arena rather than as separately-owned graphs, so the whole
// structure is freed together and ordinals never collide across runs.
type Net struct {
	ID     uuid.UUID
	logger zerolog.Logger

	types       map[string]*TokenType
	typesByOrd  []*TokenType
	places      map[string]*Place
	placesByOrd []*Place
	transitions map[string]*Transition
	transByOrd  []*Transition
	arcs        map[string]*Arc
	arcsByOrd   []*Arc

	plugins []Plugin

	nextTokenID uint64
	started     bool
}

// NewNet creates an empty net. A nil logger defaults to the global
// zerolog logger, matching the pack's convention of an injectable but
// always-usable logger.
func NewNet(logger *zerolog.Logger) *Net {
	l := log.Logger
	if logger != nil {
		l = *logger
	}
	id := uuid.New()
	l = l.With().Str("net_id", id.String()).Logger()
	return &Net{
		ID:          id,
		logger:      l,
		types:       make(map[string]*TokenType),
		places:      make(map[string]*Place),
		transitions: make(map[string]*Transition),
		arcs:        make(map[string]*Arc),
	}
}

// RegisterPlugin attaches a plugin so that future token/place/transition
// construction asks it for observers. Plugins registered after an entity
// was created are never retroactively attached to it.
func (n *Net) RegisterPlugin(p Plugin) {
	n.plugins = append(n.plugins, p)
}

// AddType registers a new token type.
func (n *Net) AddType(name string) (*TokenType, error) {
	if _, exists := n.types[name]; exists {
		return nil, fmt.Errorf("%w: token type %q", ErrDuplicateName, name)
	}
	t := &TokenType{Name: name, Ordinal: len(n.typesByOrd)}
	n.types[name] = t
	n.typesByOrd = append(n.typesByOrd, t)
	return t, nil
}

// AddPlace registers a new, initially empty place.
func (n *Net) AddPlace(name string, typ *TokenType, policy Policy) (*Place, error) {
	if _, exists := n.places[name]; exists {
		return nil, fmt.Errorf("%w: place %q", ErrDuplicateName, name)
	}
	p := newPlace(name, len(n.placesByOrd), typ, policy)
	for _, pl := range n.plugins {
		if obs := pl.ObservePlace(p); obs != nil {
			p.placeObservers = append(p.placeObservers, obs)
		}
	}
	n.places[name] = p
	n.placesByOrd = append(n.placesByOrd, p)
	return p, nil
}

// AddImmediateTransition registers a priority/weight-ordered transition
// that fires at the current virtual time.
func (n *Net) AddImmediateTransition(name string, priority int, weight float64) (*Transition, error) {
	if priority <= 0 {
		return nil, fmt.Errorf("%w: immediate transition %q needs priority > 0, got %d", ErrInvalidStructure, name, priority)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: immediate transition %q needs weight > 0, got %v", ErrInvalidStructure, name, weight)
	}
	return n.addTransition(name, false, priority, weight, nil)
}

// AddTimedTransition registers a transition whose next firing time is
// sampled from the given nullary sampler each time it becomes enabled.
func (n *Net) AddTimedTransition(name string, sampler func() (float64, error)) (*Transition, error) {
	if sampler == nil {
		return nil, fmt.Errorf("%w: timed transition %q needs a sampler", ErrInvalidStructure, name)
	}
	return n.addTransition(name, true, 0, 0, sampler)
}

func (n *Net) addTransition(name string, timed bool, priority int, weight float64, sampler func() (float64, error)) (*Transition, error) {
	if _, exists := n.transitions[name]; exists {
		return nil, fmt.Errorf("%w: transition %q", ErrDuplicateName, name)
	}
	t := newTransition(name, len(n.transByOrd), n)
	t.Timed = timed
	t.Priority = priority
	t.Weight = weight
	t.Sampler = sampler
	n.transitions[name] = t
	n.transByOrd = append(n.transByOrd, t)
	for _, pl := range n.plugins {
		if obs := pl.ObserveTransition(t); obs != nil {
			t.observers = append(t.observers, obs)
		}
	}
	return t, nil
}

func (n *Net) lookupTransition(name string) (*Transition, error) {
	t, ok := n.transitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: transition %q", ErrUnknownName, name)
	}
	return t, nil
}

func (n *Net) lookupPlace(name string) (*Place, error) {
	p, ok := n.places[name]
	if !ok {
		return nil, fmt.Errorf("%w: place %q", ErrUnknownName, name)
	}
	return p, nil
}

// AddTest adds a presence-observer, non-consumer arc: the transition is
// enabled only while the place holds at least one token.
func (n *Net) AddTest(name, transitionName, placeName string) (*Arc, error) {
	return n.addGatingArc(name, ArcTest, transitionName, placeName)
}

// AddInhibitor adds a presence-observer, non-consumer arc whose sense is
// inverted: the transition is enabled only while the place is empty.
func (n *Net) AddInhibitor(name, placeName, transitionName string) (*Arc, error) {
	return n.addGatingArc(name, ArcInhibitor, transitionName, placeName)
}

// AddDestructor adds a presence-observer, token-consuming arc: firing pops
// a token from the place and deletes it.
func (n *Net) AddDestructor(name, transitionName, placeName string) (*Arc, error) {
	return n.addGatingArc(name, ArcDestructor, transitionName, placeName)
}

// AddConstructor adds a token-placing arc: firing creates a fresh token of
// the place's type and pushes it. Constructor arcs are not presence
// observers and never participate in the place-status FSM.
func (n *Net) AddConstructor(name, transitionName, placeName string) (*Arc, error) {
	if _, exists := n.arcs[name]; exists {
		return nil, fmt.Errorf("%w: arc %q", ErrDuplicateName, name)
	}
	t, err := n.lookupTransition(transitionName)
	if err != nil {
		return nil, err
	}
	p, err := n.lookupPlace(placeName)
	if err != nil {
		return nil, err
	}
	a := &Arc{Name: name, Ordinal: len(n.arcsByOrd), Kind: ArcConstructor, Transition: t, Place: p, TokenType: p.Type}
	n.commitArc(a, t)
	return a, nil
}

// AddTransfer adds a presence-observer (on the input place) AND
// token-placing arc: firing atomically moves one token from input to
// output.
func (n *Net) AddTransfer(name, transitionName, inputPlace, outputPlace string) (*Arc, error) {
	if _, exists := n.arcs[name]; exists {
		return nil, fmt.Errorf("%w: arc %q", ErrDuplicateName, name)
	}
	t, err := n.lookupTransition(transitionName)
	if err != nil {
		return nil, err
	}
	in, err := n.lookupPlace(inputPlace)
	if err != nil {
		return nil, err
	}
	out, err := n.lookupPlace(outputPlace)
	if err != nil {
		return nil, err
	}
	newStatus, ferr := nextStatus(in.status, t.Timed, true)
	if ferr != nil {
		n.logger.Warn().Str("place", in.Name).Str("arc", name).Str("transition", t.Name).Err(ferr).Msg("rejected arc: place-status FSM violation")
		return nil, fmt.Errorf("place %q, arc %q (Transfer) onto %s transition %q: %w", in.Name, name, transKindLabel(t.Timed), t.Name, ferr)
	}
	a := &Arc{Name: name, Ordinal: len(n.arcsByOrd), Kind: ArcTransfer, Transition: t, InputPlace: in, OutputPlace: out}
	in.status = newStatus
	in.presenceObservers = append(in.presenceObservers, a)
	t.disabledArcCount++ // consumer arc on an initially-empty place: starts disabled
	n.commitArc(a, t)
	return a, nil
}

// addGatingArc handles Test, Inhibitor, and Destructor, which all gate a
// single place against a single transition, differing only in whether
// they consume a token and whether their sense is inverted.
func (n *Net) addGatingArc(name string, kind ArcKind, transitionName, placeName string) (*Arc, error) {
	if _, exists := n.arcs[name]; exists {
		return nil, fmt.Errorf("%w: arc %q", ErrDuplicateName, name)
	}
	t, err := n.lookupTransition(transitionName)
	if err != nil {
		return nil, err
	}
	p, err := n.lookupPlace(placeName)
	if err != nil {
		return nil, err
	}
	newStatus, ferr := nextStatus(p.status, t.Timed, kind.isConsumer())
	if ferr != nil {
		n.logger.Warn().Str("place", p.Name).Str("arc", name).Str("transition", t.Name).Err(ferr).Msg("rejected arc: place-status FSM violation")
		return nil, fmt.Errorf("place %q, arc %q (%s) onto %s transition %q: %w", p.Name, name, kind, transKindLabel(t.Timed), t.Name, ferr)
	}
	a := &Arc{Name: name, Ordinal: len(n.arcsByOrd), Kind: kind, Transition: t, Place: p}
	p.status = newStatus
	p.presenceObservers = append(p.presenceObservers, a)
	if kind != ArcInhibitor {
		t.disabledArcCount++ // consumer/test arc on an initially-empty place: starts disabled
	}
	n.commitArc(a, t)
	return a, nil
}

func (n *Net) commitArc(a *Arc, t *Transition) {
	n.arcs[a.Name] = a
	n.arcsByOrd = append(n.arcsByOrd, a)
	t.Arcs = append(t.Arcs, a)
}

func transKindLabel(timed bool) string {
	if timed {
		return "a timed"
	}
	return "an immediate"
}

// newToken allocates a token with a fresh, never-recycled identity and
// attaches whatever observers the registered plugins supply.
func (n *Net) newToken(typ *TokenType) *Token {
	id := n.nextTokenID
	n.nextTokenID++
	tok := newToken(id, typ, nil)
	for _, pl := range n.plugins {
		if obs := pl.ObserveToken(tok); obs != nil {
			tok.tObs = append(tok.tObs, obs)
		}
	}
	return tok
}

// Start transitions the net from "building" to "running": every presence
// observer's local condition is implicitly already established (every
// place begins empty), so this pass only has to notify transitions whose
// disabled-arc-count already reads zero — e.g. a transition gated solely
// by inhibitor arcs on empty places.
func (n *Net) Start() {
	if n.started {
		return
	}
	n.started = true
	for _, t := range n.transByOrd {
		if t.Enabled() {
			t.fireGotEnabled()
		}
	}
	n.logger.Info().Int("places", len(n.placesByOrd)).Int("transitions", len(n.transByOrd)).Int("arcs", len(n.arcsByOrd)).Msg("net started")
}

// Place looks up a place by name.
func (n *Net) Place(name string) (*Place, error) { return n.lookupPlace(name) }

// TransitionByName looks up a transition by name.
func (n *Net) TransitionByName(name string) (*Transition, error) { return n.lookupTransition(name) }

// Places returns every place, ordered by ordinal.
func (n *Net) Places() []*Place { return n.placesByOrd }

// Transitions returns every transition, ordered by ordinal.
func (n *Net) Transitions() []*Transition { return n.transByOrd }

// Logger returns the net's logger, tagged with its net_id.
func (n *Net) Logger() zerolog.Logger { return n.logger }
