package pnet

import "fmt"

// ArcKind tags the five shapes an Arc can take. A tagged variant replaces
// an abstract-arc-base hierarchy: Transition.fire switches on Kind rather
// than dispatching through an interface.
type ArcKind int

const (
	ArcTest ArcKind = iota
	ArcInhibitor
	ArcDestructor
	ArcConstructor
	ArcTransfer
)

func (k ArcKind) String() string {
	switch k {
	case ArcTest:
		return "Test"
	case ArcInhibitor:
		return "Inhibitor"
	case ArcDestructor:
		return "Destructor"
	case ArcConstructor:
		return "Constructor"
	case ArcTransfer:
		return "Transfer"
	default:
		return "Unknown"
	}
}

// isConsumer reports whether this arc kind removes a token from the place
// that gates its transition, for the purposes of the place-status FSM and
// invariant #1.
func (k ArcKind) isConsumer() bool {
	return k == ArcDestructor || k == ArcTransfer
}

// isPresenceObserver reports whether this arc kind gates its transition on
// the emptiness/non-emptiness of a place.
func (k ArcKind) isPresenceObserver() bool {
	return k == ArcTest || k == ArcInhibitor || k == ArcDestructor || k == ArcTransfer
}

// Arc is a directed edge between a place and a transition, tagged by Kind.
// Exactly one of (Place) or (InputPlace, OutputPlace) is populated,
// depending on Kind; Constructor additionally carries a TokenType.
type Arc struct {
	Name       string
	Ordinal    int
	Kind       ArcKind
	Transition *Transition

	Place       *Place // Test, Inhibitor, Destructor, Constructor
	InputPlace  *Place // Transfer
	OutputPlace *Place // Transfer
	TokenType   *TokenType // Constructor
}

// gatingPlace returns the place whose emptiness gates this arc, for
// presence-observer kinds.
func (a *Arc) gatingPlace() *Place {
	if a.Kind == ArcTransfer {
		return a.InputPlace
	}
	return a.Place
}

// reportSomeToken / reportNoToken implement presenceObserver. Each kind
// decides, from its own semantics, whether a given crossing is an
// enabling or disabling one.
func (a *Arc) reportSomeToken() {
	switch a.Kind {
	case ArcTest, ArcDestructor, ArcTransfer:
		a.Transition.decrementDisabledArcCount()
	case ArcInhibitor:
		a.Transition.incrementDisabledArcCount()
	}
}

func (a *Arc) reportNoToken() {
	switch a.Kind {
	case ArcTest, ArcDestructor, ArcTransfer:
		a.Transition.incrementDisabledArcCount()
	case ArcInhibitor:
		a.Transition.decrementDisabledArcCount()
	}
}

// flow executes this arc's atomic token action as part of Transition.fire.
// net supplies the observer plugins and token-id allocator for
// Constructor-arc token creation.
func (a *Arc) flow(net *Net) error {
	switch a.Kind {
	case ArcTest, ArcInhibitor:
		return nil // non-consumer, no-op flow
	case ArcDestructor:
		tok, err := a.Place.pop()
		if err != nil {
			return fmt.Errorf("destructor arc %q: %w", a.Name, err)
		}
		tok.destroyed()
		return nil
	case ArcConstructor:
		tok := net.newToken(a.TokenType)
		tok.constructed()
		if err := a.Place.push(tok); err != nil {
			return fmt.Errorf("constructor arc %q: %w", a.Name, err)
		}
		return nil
	case ArcTransfer:
		tok, err := a.InputPlace.pop()
		if err != nil {
			return fmt.Errorf("transfer arc %q: %w", a.Name, err)
		}
		if err := a.OutputPlace.push(tok); err != nil {
			return fmt.Errorf("transfer arc %q: %w", a.Name, err)
		}
		return nil
	default:
		return fmt.Errorf("arc %q: unknown arc kind %v", a.Name, a.Kind)
	}
}
