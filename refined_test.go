package refinement_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	refinement "github.com/nekitdev/refinement-types"
)

func TestRefine(t *testing.T) {
	t.Parallel()

	t.Run("succeeds iff the predicate holds", func(t *testing.T) {
		pred := refinement.Between(1, 100)

		refined, err := refinement.Refine(pred, 42)
		require.NoError(t, err)
		assert.True(t, refined.IsRefined())
		assert.Equal(t, 42, refined.Value())

		_, err = refinement.Refine(pred, 0)
		require.Error(t, err)
	})

	t.Run("returns the value exactly, no coercion", func(t *testing.T) {
		pred := refinement.LengthBetween[string](1, 32)

		refined, err := refinement.Refine(pred, "  spaced  ")
		require.NoError(t, err)
		assert.Equal(t, "  spaced  ", refined.Value())
	})

	t.Run("round trips through unwrap", func(t *testing.T) {
		pred := refinement.NonEmpty[string]()

		refined, err := refinement.Refine(pred, "payload")
		require.NoError(t, err)
		assert.Equal(t, "payload", refined.Unwrap())
	})

	t.Run("rejects a nil predicate", func(t *testing.T) {
		_, err := refinement.Refine[int](nil, 1)
		assert.ErrorIs(t, err, refinement.ErrNilPredicate)
	})

	t.Run("attaches context to the error", func(t *testing.T) {
		pred := refinement.Between(1, 100)

		_, err := refinement.Refine(pred, 0, refinement.WithContext("charge"))
		require.Error(t, err)

		rerr, ok := refinement.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "charge", rerr.Context.Label)
		assert.Contains(t, err.Error(), "charge: ")
	})

	t.Run("carries source spans through options", func(t *testing.T) {
		pred := refinement.Between(1, 100)

		_, err := refinement.Refine(pred, 150,
			refinement.WithContext("charge"),
			refinement.WithSource(`{"charge": 150}`, 11, 3),
		)
		require.Error(t, err)

		rerr, ok := refinement.AsError(err)
		require.True(t, ok)
		assert.Equal(t, `{"charge": 150}`, rerr.Context.Source)
		assert.Equal(t, 11, rerr.Context.Offset)
		assert.Equal(t, 3, rerr.Context.Length)
	})

	t.Run("zero value is not refined", func(t *testing.T) {
		var refined refinement.Refined[string]
		assert.False(t, refined.IsRefined())
	})
}

func TestRefine_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("ascii name of bounded length", func(t *testing.T) {
		name := refinement.And(
			refinement.LengthBetween[string](1, 32),
			refinement.ASCII[string](),
		)

		refined, err := refinement.Refine(name, "nekit")
		require.NoError(t, err)
		assert.Equal(t, "nekit", refined.Value())
	})

	t.Run("charge within closed range over uint8", func(t *testing.T) {
		charge := refinement.Between[uint8](1, 100)

		refined, err := refinement.Refine(charge, uint8(69))
		require.NoError(t, err)
		assert.Equal(t, uint8(69), refined.Value())

		_, err = refinement.Refine(charge, uint8(0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be within [1, 100]")

		_, err = refinement.Refine(charge, uint8(150))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be within [1, 100]")
	})
}

func TestMustRefine(t *testing.T) {
	t.Parallel()

	t.Run("returns the container when valid", func(t *testing.T) {
		refined := refinement.MustRefine(refinement.NonEmpty[string](), "ok")
		assert.Equal(t, "ok", refined.Value())
	})

	t.Run("panics when invalid", func(t *testing.T) {
		assert.Panics(t, func() {
			refinement.MustRefine(refinement.NonEmpty[string](), "")
		})
	})
}

func TestRefined_Replace(t *testing.T) {
	t.Parallel()

	pred := refinement.Between(1, 100)
	original := refinement.MustRefine(pred, 50, refinement.WithContext("charge"))

	t.Run("re-validates and commits on success", func(t *testing.T) {
		replaced, err := original.Replace(99)
		require.NoError(t, err)
		assert.Equal(t, 99, replaced.Value())
		assert.Equal(t, "charge", replaced.Context().Label)
	})

	t.Run("leaves the receiver unchanged on failure", func(t *testing.T) {
		_, err := original.Replace(150)
		require.Error(t, err)
		assert.Equal(t, 50, original.Value())

		rerr, ok := refinement.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "charge", rerr.Context.Label)
	})
}

func TestRefined_Map(t *testing.T) {
	t.Parallel()

	pred := refinement.Between(1, 100)
	original := refinement.MustRefine(pred, 50)

	t.Run("re-validates the transformed value", func(t *testing.T) {
		doubled, err := original.Map(func(v int) int { return v * 2 })
		require.NoError(t, err)
		assert.Equal(t, 100, doubled.Value())
	})

	t.Run("fails when the transformation escapes the predicate", func(t *testing.T) {
		_, err := original.Map(func(v int) int { return v * 3 })
		require.Error(t, err)
		assert.Equal(t, 50, original.Value())
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	pred := refinement.Between(1, 100)
	a := refinement.MustRefine(pred, 7)
	b := refinement.MustRefine(pred, 7)
	c := refinement.MustRefine(pred, 8)

	assert.True(t, refinement.Equal(a, b))
	assert.False(t, refinement.Equal(a, c))

	t.Run("never equal for unvalidated holders", func(t *testing.T) {
		var zero refinement.Refined[int]
		assert.False(t, refinement.Equal(zero, zero))
	})
}

func TestRefined_String(t *testing.T) {
	t.Parallel()

	refined := refinement.MustRefine(refinement.Between(1, 100), 42)
	assert.Equal(t, "42", refined.String())
}

func TestSatisfies(t *testing.T) {
	t.Parallel()

	even := refinement.Satisfies("must be even", func(v int) bool { return v%2 == 0 })

	assert.Nil(t, even.Check(4))
	assert.Equal(t, "must be even", even.Describe())

	violation := even.Check(3)
	require.NotNil(t, violation)
	assert.Equal(t, "must be even", violation.Expected)
	assert.Equal(t, refinement.CodeFunc, violation.Code)

	t.Run("composes with combinators", func(t *testing.T) {
		pred := refinement.And(refinement.Positive[int](), even)
		assert.Nil(t, pred.Check(2))
		assert.NotNil(t, pred.Check(-2))
		assert.NotNil(t, pred.Check(3))
	})
}

func TestConcurrentRefinement(t *testing.T) {
	t.Parallel()

	// Shared predicate, independent values, no synchronization.
	pred := refinement.And(
		refinement.LengthBetween[string](1, 8),
		refinement.MustMatch[string](`[a-z]+`),
	)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				refined, err := refinement.Refine(pred, "abc")
				if err != nil || refined.Value() != "abc" {
					t.Error("concurrent refinement failed")
					return
				}
				if _, err := refinement.Refine(pred, strings.Repeat("x", 9)); err == nil {
					t.Error("expected failure for oversized value")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
