package profile

import (
	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/signal"
)

// Kind separates button defaults from axis defaults; the two id spaces
// are independent.
type Kind uint8

const (
	KindButton Kind = iota
	KindAxis
)

// Default declares the factory bindings for one logical id and whether
// the player may remap it.
type Default struct {
	ID         signal.ID
	Kind       Kind
	Bindings   []signal.Binding
	AllowRemap bool
}

// Table holds the declarative default bindings for an application.
// It is the entry point hosts use instead of scanning for signals:
// declare ids with their defaults, apply once at startup.
type Table struct {
	defaults []Default
}

// New builds a table from explicit default declarations.
func New(defaults ...Default) *Table {
	return &Table{defaults: defaults}
}

// Defaults returns the declared defaults.
func (t *Table) Defaults() []Default {
	return t.defaults
}

// Apply registers every declared id on the aggregator, replacing any
// bindings already present.
func (t *Table) Apply(agg *input.Aggregator) {
	for _, d := range t.defaults {
		switch d.Kind {
		case KindButton:
			agg.RegisterButton(d.ID).SetBindings(d.Bindings)
		case KindAxis:
			agg.RegisterAxis(d.ID).SetBindings(d.Bindings)
		}
	}
}

// Restore resets the bindings for exactly one id to its declared
// defaults, leaving every other id untouched. Returns false when the
// id is not declared.
func (t *Table) Restore(agg *input.Aggregator, kind Kind, id signal.ID) bool {
	d := t.find(kind, id)
	if d == nil {
		return false
	}
	switch kind {
	case KindButton:
		agg.RegisterButton(id).SetBindings(d.Bindings)
	case KindAxis:
		agg.RegisterAxis(id).SetBindings(d.Bindings)
	}
	return true
}

// Remappable reports whether the declared id allows player customization.
func (t *Table) Remappable(kind Kind, id signal.ID) bool {
	d := t.find(kind, id)
	return d != nil && d.AllowRemap
}

func (t *Table) find(kind Kind, id signal.ID) *Default {
	for i := range t.defaults {
		if t.defaults[i].Kind == kind && t.defaults[i].ID == id {
			return &t.defaults[i]
		}
	}
	return nil
}
