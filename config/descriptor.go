// Package config decodes a declarative net descriptor from YAML. It is
// data-loading only: turning a decoded Descriptor into add* calls against
// core/pnet is the caller's job, so this package never builds a net
// itself and never duplicates the core's duplicate-name or place-status
// FSM checks. Grounded on the teacher's workflow-YAML parser, generalized
// from task/resource vocabulary to place/transition/arc vocabulary.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Descriptor is the root of a YAML net description.
type Descriptor struct {
	Net NetSpec `yaml:"net"`
}

// NetSpec lists every construction-time entity, in the order add* calls
// should be issued: types, then places, then transitions, then arcs (arcs
// must follow their transitions and places).
type NetSpec struct {
	Name        string           `yaml:"name"`
	Types       []TypeSpec       `yaml:"types,omitempty"`
	Places      []PlaceSpec      `yaml:"places"`
	Transitions []TransitionSpec `yaml:"transitions"`
	Arcs        []ArcSpec        `yaml:"arcs"`
}

// TypeSpec describes one token type.
type TypeSpec struct {
	Name string `yaml:"name"`
}

// PlaceSpec describes one place. Policy is "fifo" or "lifo" (case
// insensitive); empty defaults to "fifo".
type PlaceSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Policy string `yaml:"policy,omitempty"`
}

// TransitionSpec describes one transition. Kind is "immediate" or
// "timed". Priority and Weight apply only to immediate transitions;
// timed transitions are wired to a sampler by the caller, keyed by Name.
type TransitionSpec struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Priority int     `yaml:"priority,omitempty"`
	Weight   float64 `yaml:"weight,omitempty"`
}

// ArcSpec describes one arc. Kind is one of "test", "inhibitor",
// "destructor", "constructor", "transfer". Place applies to
// test/inhibitor/destructor/constructor; Input/Output apply to transfer.
type ArcSpec struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Transition string `yaml:"transition"`
	Place      string `yaml:"place,omitempty"`
	Input      string `yaml:"input,omitempty"`
	Output     string `yaml:"output,omitempty"`
}

// Load decodes a Descriptor from r.
func Load(r io.Reader) (*Descriptor, error) {
	var d Descriptor
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding net descriptor: %w", err)
	}
	return &d, nil
}
