package fire

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"spn-core/core/pnet"
)

// FireControl is the discrete-event scheduler. It is single-threaded and
// cooperatively deterministic given a fixed Rand seed: there are no
// suspension points inside FireNext, and recursive FireNext calls are
// forbidden (the net's observer callbacks must not re-enter the
// scheduler).
type FireControl struct {
	logger zerolog.Logger
	rng    Rand

	currentTime      float64
	buildInProgress  bool
	initialEnable    map[*pnet.Transition]bool

	levels           map[int]*levelBucket
	activeHeap       priorityHeap
	activeSet        map[int]bool

	timed            timedHeap
	nextTiebreak     uint64

	weightScratch    []float64
}

// New creates a scheduler in build mode: Enable/Disable calls are recorded
// but not yet acted on until Start is called.
func New(rng Rand, logger *zerolog.Logger) *FireControl {
	l := log.Logger
	if logger != nil {
		l = *logger
	}
	return &FireControl{
		logger:          l,
		rng:             rng,
		buildInProgress: true,
		initialEnable:   make(map[*pnet.Transition]bool),
		levels:          make(map[int]*levelBucket),
		activeSet:       make(map[int]bool),
	}
}

// CurrentTime returns the scheduler's virtual clock. Implements the Clock
// duck-typed interface consumed by the meter and plugin packages.
func (fc *FireControl) CurrentTime() float64 { return fc.currentTime }

// Enable marks a transition as eligible to fire. Before Start, this only
// records intent; afterward it takes effect immediately.
func (fc *FireControl) Enable(t *pnet.Transition) {
	if fc.buildInProgress {
		fc.initialEnable[t] = true
		return
	}
	fc.internalEnable(t)
}

// Disable marks a transition as no longer eligible to fire.
func (fc *FireControl) Disable(t *pnet.Transition) {
	if fc.buildInProgress {
		fc.initialEnable[t] = false
		return
	}
	fc.internalDisable(t)
}

// Start transitions the scheduler from build mode to running, acting on
// every Enable recorded during the build in transition-ordinal order.
func (fc *FireControl) Start() {
	fc.buildInProgress = false
	var enabled []*pnet.Transition
	for t, on := range fc.initialEnable {
		if on {
			enabled = append(enabled, t)
		}
	}
	sort.Slice(enabled, func(i, j int) bool { return enabled[i].Ordinal < enabled[j].Ordinal })
	for _, t := range enabled {
		fc.internalEnable(t)
	}
}

func (fc *FireControl) internalEnable(t *pnet.Transition) {
	if t.Timed {
		fc.scheduleTimed(t)
		return
	}
	b, ok := fc.levels[t.Priority]
	if !ok {
		b = newLevelBucket(t.Priority)
		fc.levels[t.Priority] = b
	}
	b.add(t)
	if !fc.activeSet[t.Priority] {
		heap.Push(&fc.activeHeap, t.Priority)
		fc.activeSet[t.Priority] = true
	}
}

func (fc *FireControl) internalDisable(t *pnet.Transition) {
	if t.Timed {
		fc.popTimedHeadAssuming(t)
		return
	}
	if b, ok := fc.levels[t.Priority]; ok {
		b.remove(t)
	}
}

func (fc *FireControl) scheduleTimed(t *pnet.Transition) {
	d, err := t.Sampler()
	if err == nil && (math.IsNaN(d) || math.IsInf(d, 0) || d < 0) {
		err = fmt.Errorf("sampled duration %v", d)
	}
	if err != nil {
		fc.logger.Error().Str("transition", t.Name).Err(err).Msg("sampler produced an invalid duration")
		err = fmt.Errorf("%w: transition %q: %v", pnet.ErrBadSample, t.Name, err)
		// A misbehaving sampler is a construction-time-class defect;
		// there is no safe recovery mid-schedule, so the deadline is
		// never pushed and the transition is simply never scheduled.
		return
	}
	heap.Push(&fc.timed, timedEntry{deadline: fc.currentTime + d, tiebreak: fc.nextTiebreak, t: t})
	fc.nextTiebreak++
}

// popTimedHeadAssuming removes the timed heap's head entry, which the
// place-status FSM guarantees belongs to t: a place feeding a timed
// transition has exactly one consumer, so only that transition's own
// firing can ever disable it.
func (fc *FireControl) popTimedHeadAssuming(t *pnet.Transition) {
	if len(fc.timed) == 0 {
		return
	}
	if fc.timed[0].t != t {
		fc.logger.Warn().Str("transition", t.Name).Msg("timed heap head did not match the disabling transition")
	}
	heap.Pop(&fc.timed)
}

// ErrNoEnabledTransition signals the scheduler is idle. Exported via
// pnet.ErrNoEnabledTransition so callers only need one sentinel.
var ErrNoEnabledTransition = pnet.ErrNoEnabledTransition

// SelectNext implements the stochastic-Petri-net firing rule: a non-empty
// immediate bucket at any priority preempts every timed transition
// regardless of deadline; among the highest active priority, the pick is
// weighted-random with replacement; failing that, the earliest timed
// deadline wins (ties broken by schedule order).
func (fc *FireControl) SelectNext() (float64, *pnet.Transition, error) {
	for {
		if len(fc.activeHeap) == 0 {
			break
		}
		p := fc.activeHeap[0]
		b := fc.levels[p]
		if b == nil || b.empty() {
			heap.Pop(&fc.activeHeap)
			delete(fc.activeSet, p)
			continue
		}
		t := fc.weightedChoice(b.items)
		return fc.currentTime, t, nil
	}
	if len(fc.timed) == 0 {
		return 0, nil, ErrNoEnabledTransition
	}
	head := fc.timed[0]
	return head.deadline, head.t, nil
}

func (fc *FireControl) weightedChoice(items []*pnet.Transition) *pnet.Transition {
	if len(items) == 1 {
		return items[0]
	}
	if cap(fc.weightScratch) < len(items) {
		fc.weightScratch = make([]float64, len(items))
	}
	cum := fc.weightScratch[:len(items)]
	total := 0.0
	for i, t := range items {
		total += t.Weight
		cum[i] = total
	}
	r := fc.rng.Float64() * total
	for i, c := range cum {
		if r < c {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// FireNext selects, advances the virtual clock, and fires the chosen
// transition. When the fired transition is timed and remains enabled
// afterward without having been disabled during the firing (e.g. its
// gating place still holds tokens), its now-stale deadline entry is
// replaced with a fresh sample. A transition that was disabled and
// re-enabled during the firing was already rescheduled by that cycle.
func (fc *FireControl) FireNext() error {
	newTime, t, err := fc.SelectNext()
	if err != nil {
		return err
	}
	var staleTiebreak uint64
	if t.Timed {
		staleTiebreak = fc.timed[0].tiebreak
	}
	fc.currentTime = newTime
	if err := t.Fire(); err != nil {
		return fmt.Errorf("fire control: %w", err)
	}
	if t.Timed && t.Enabled() && len(fc.timed) > 0 && fc.timed[0].tiebreak == staleTiebreak {
		fc.popTimedHeadAssuming(t)
		fc.scheduleTimed(t)
	}
	return nil
}

// Idle reports whether the scheduler currently has no enabled work.
func (fc *FireControl) Idle() bool {
	_, _, err := fc.SelectNext()
	return errors.Is(err, ErrNoEnabledTransition)
}
