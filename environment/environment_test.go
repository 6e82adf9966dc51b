package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_HasPrefixMatchesKnownIdentifier(t *testing.T) {
	e := New(false)
	e.Define(Symbol{Name: "kg", Kind: KindUnit})

	assert.True(t, e.HasPrefix("k"))
	assert.False(t, e.HasPrefix("m"))
}

func TestEnvironment_ChemistryModeDetectsElementSymbols(t *testing.T) {
	plain := New(false)
	assert.False(t, plain.IsChemistryMode())

	withElements := New(true)
	assert.True(t, withElements.IsChemistryMode())

	sym, ok := withElements.Lookup("Na")
	assert.True(t, ok)
	assert.Equal(t, KindElement, sym.Kind)
}

func TestStack_WithPushedRestoresOnPanic(t *testing.T) {
	s := NewStack()
	root := s.Current()

	func() {
		defer func() { recover() }()
		s.WithPushed(New(true), func() {
			panic("boom")
		})
	}()

	assert.Same(t, root, s.Current())
}

func TestStack_PushShadowsUntilPop(t *testing.T) {
	s := NewStack()
	inner := New(true)

	s.Push(inner)
	assert.True(t, s.Current().IsChemistryMode())

	s.Pop()
	assert.False(t, s.Current().IsChemistryMode())
}
