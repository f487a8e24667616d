package bijection

import (
	"fmt"
	"io"

	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/krtab"
	"github.com/katalvlaran/riggings/rigged"
)

// New builds the bijection engine for the element's Cartan type. The engine
// is a per-call object seeded with elt; it never mutates the element.
//
// Implemented: family A (all rectangle lists). Other families report
// ErrUnsupportedType — the classical bijection is proven and implemented
// type by type.
func New(elt *krtab.Element) (krtab.Engine, error) {
	if elt == nil {
		return nil, ErrNilElement
	}

	t := elt.Parent().Type()
	switch t.Family {
	case cartan.A:
		return &typeAEngine{elt: elt}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// Factory is the production EngineFactory for krtab.WithEngine.
var Factory krtab.EngineFactory = New

// ToRiggedConfiguration builds the engine for elt and runs it, writing
// intermediate states to steps when non-nil. Equivalent to
// elt.ToRiggedConfiguration(steps) on a parent wired with Factory.
func ToRiggedConfiguration(elt *krtab.Element, steps io.Writer) (*rigged.Configuration, error) {
	eng, err := New(elt)
	if err != nil {
		return nil, err
	}

	return eng.Run(steps)
}
