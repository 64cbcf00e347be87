package redfa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Accepts words over {a, b} that end in "a". Partial: q1 has no transition on b.
func partialDFA(t *testing.T) *DFA {
	t.Helper()
	b := NewDFABuilder("partial", []rune{'b', 'a', 'a'})
	q0 := b.CreateState("q0")
	q1 := b.CreateState("q1")
	b.SetAccept(q1, true)
	assert.Nil(t, b.AddTransition(q0, q1, 'a'))
	assert.Nil(t, b.AddTransition(q0, q0, 'b'))
	assert.Nil(t, b.AddTransition(q1, q1, 'a'))
	d, err := b.Finish()
	assert.Nil(t, err)
	return d
}

func TestDFABuilder(t *testing.T) {
	d := partialDFA(t)

	assert.Equal(t, "partial", d.Name())
	assert.Equal(t, []rune{'a', 'b'}, d.Alphabet())
	assert.Equal(t, 2, d.NumStates())
	assert.Equal(t, []string{"q0", "q1"}, d.States())
	assert.Equal(t, "q0", d.Start())
	assert.Equal(t, []string{"q1"}, d.AcceptStates())
	assert.Equal(t, 3, d.NumTransitions())
	assert.False(t, d.IsTotal())

	state, ok := d.StateIndex("q1")
	assert.True(t, ok)
	assert.Equal(t, 1, state)
	_, ok = d.StateIndex("q2")
	assert.False(t, ok)

	assert.Equal(t, []Transition{
		{Source: 0, Symbol: 'a', Dest: 1},
		{Source: 0, Symbol: 'b', Dest: 0},
		{Source: 1, Symbol: 'a', Dest: 1},
	}, d.Transitions())
}

func TestDFAStep(t *testing.T) {
	d := partialDFA(t)

	assert.Equal(t, 1, d.Step(0, 'a'))
	assert.Equal(t, -1, d.Step(1, 'b'))
	assert.Equal(t, -1, d.Step(0, 'z'))
}

func TestDFAAccepts(t *testing.T) {
	d := partialDFA(t)

	assert.True(t, d.Accepts("a"))
	assert.True(t, d.Accepts("bbaa"))
	assert.False(t, d.Accepts(""))
	assert.False(t, d.Accepts("ab"))
	assert.False(t, d.Accepts("c"))
}

func TestDFABuilderErrors(t *testing.T) {
	t.Run("NoStates", func(t *testing.T) {
		_, err := NewDFABuilder("empty", []rune{'a'}).Finish()
		assert.True(t, errors.Is(err, ErrInvalidDFA))
	})

	t.Run("DuplicateName", func(t *testing.T) {
		b := NewDFABuilder("dup", []rune{'a'})
		b.CreateState("q")
		b.CreateState("q")
		_, err := b.Finish()
		assert.True(t, errors.Is(err, ErrInvalidDFA))
	})

	t.Run("AcceptNegativeState", func(t *testing.T) {
		b := NewDFABuilder("neg", []rune{'a'})
		b.CreateState("q0")
		b.SetAccept(-1, true)
		_, err := b.Finish()
		assert.True(t, errors.Is(err, ErrInvalidDFA))
	})

	t.Run("AcceptBeforeStateExists", func(t *testing.T) {
		b := NewDFABuilder("early", []rune{'a'})
		q0 := b.CreateState("q0")
		b.SetAccept(1, true)
		q1 := b.CreateState("q1")
		assert.Nil(t, b.AddTransition(q0, q1, 'a'))
		_, err := b.Finish()
		assert.True(t, errors.Is(err, ErrInvalidDFA))
	})

	t.Run("BadTransitions", func(t *testing.T) {
		b := NewDFABuilder("bad", []rune{'a'})
		q := b.CreateState("q")
		assert.True(t, errors.Is(b.AddTransition(q, 5, 'a'), ErrInvalidDFA))
		assert.True(t, errors.Is(b.AddTransition(-1, q, 'a'), ErrInvalidDFA))
		assert.True(t, errors.Is(b.AddTransition(q, q, 'b'), ErrInvalidDFA))
		assert.Nil(t, b.AddTransition(q, q, 'a'))
		assert.True(t, errors.Is(b.AddTransition(q, q, 'a'), ErrInvalidDFA))
		assert.Equal(t, 1, b.NumStates())
	})
}

func TestDFAEmptyAlphabet(t *testing.T) {
	b := NewDFABuilder("eps", nil)
	b.SetAccept(b.CreateState("S0"), true)
	d, err := b.Finish()
	assert.Nil(t, err)

	assert.True(t, d.IsTotal())
	assert.True(t, d.Accepts(""))
	assert.False(t, d.Accepts("a"))
}
