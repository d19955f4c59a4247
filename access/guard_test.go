package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvesdum/rscontainer/access"
)

// read returns the current value behind a guard, asserting healthy access.
func read(t *testing.T, g access.Guard[int]) int {
	t.Helper()
	var got int
	g.View(func(p access.Poisoning[*int]) {
		got = *p.AssertHealthy()
	})
	return got
}

// poison panics inside an exclusive access and swallows the panic, leaving
// lock-backed guards poisoned.
func poison(g access.Guard[int]) {
	defer func() { _ = recover() }()
	g.Update(func(access.Poisoning[*int]) {
		panic("mid-mutation failure")
	})
}

//
// -----------------------------------------------------------------------------
// Contract shared by all four backings
// -----------------------------------------------------------------------------

// TestGuard_ReadModifyRead verifies View/Update round trips on every backing.
func TestGuard_ReadModifyRead(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		g    access.Guard[int]
	}{
		{name: "plain", g: access.NewPlain(7)},
		{name: "cell", g: access.NewCell(7)},
		{name: "mutex", g: access.NewMutex(7)},
		{name: "rwmutex", g: access.NewRWMutex(7)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, 7, read(t, tc.g))

			tc.g.Update(func(p access.Poisoning[*int]) {
				*p.AssertHealthy() += 35
			})
			assert.Equal(t, 42, read(t, tc.g))

			ran := tc.g.TryUpdate(func(p access.Poisoning[*int]) {
				*p.AssertHealthy()++
			})
			require.True(t, ran)

			ran = tc.g.TryView(func(p access.Poisoning[*int]) {
				assert.Equal(t, 43, *p.AssertHealthy())
			})
			require.True(t, ran)
		})
	}
}

//
// -----------------------------------------------------------------------------
// Cell borrow rules
// -----------------------------------------------------------------------------

// TestCell_SharedBorrowsOverlap verifies multiple shared borrows may be
// outstanding at once while exclusive access is refused.
func TestCell_SharedBorrowsOverlap(t *testing.T) {
	t.Parallel()

	c := access.NewCell(1)

	c.View(func(outer access.Poisoning[*int]) {
		ran := c.TryView(func(inner access.Poisoning[*int]) {
			assert.Equal(t, *outer.AssertHealthy(), *inner.AssertHealthy())
		})
		assert.True(t, ran)

		assert.False(t, c.TryUpdate(func(access.Poisoning[*int]) {}))
	})
}

// TestCell_ExclusiveBorrowExcludesAll verifies no other borrow can start
// while an exclusive borrow is outstanding.
func TestCell_ExclusiveBorrowExcludesAll(t *testing.T) {
	t.Parallel()

	c := access.NewCell(1)

	c.Update(func(access.Poisoning[*int]) {
		assert.False(t, c.TryView(func(access.Poisoning[*int]) {}))
		assert.False(t, c.TryUpdate(func(access.Poisoning[*int]) {}))
	})

	// Borrows released after the closure returns.
	assert.True(t, c.TryUpdate(func(access.Poisoning[*int]) {}))
}

// TestCell_ConflictPanics verifies the blocking variants treat conflicting
// borrows as programming errors.
func TestCell_ConflictPanics(t *testing.T) {
	t.Parallel()

	c := access.NewCell(1)

	c.Update(func(access.Poisoning[*int]) {
		require.PanicsWithValue(t, access.ErrMutablyBorrowed, func() {
			c.View(func(access.Poisoning[*int]) {})
		})
		require.PanicsWithValue(t, access.ErrBorrowed, func() {
			c.Update(func(access.Poisoning[*int]) {})
		})
	})
}

// TestCell_BorrowReleasedOnPanic verifies a panicking closure does not leak
// its borrow.
func TestCell_BorrowReleasedOnPanic(t *testing.T) {
	t.Parallel()

	c := access.NewCell(1)
	poison(c)

	assert.True(t, c.TryUpdate(func(p access.Poisoning[*int]) {
		// Cells never poison.
		assert.True(t, p.IsHealthy())
	}))
}

//
// -----------------------------------------------------------------------------
// Lock-backed guards: contention and poisoning
// -----------------------------------------------------------------------------

// TestMutex_TryFailsWhileHeld verifies the non-blocking variants report
// contention instead of waiting.
func TestMutex_TryFailsWhileHeld(t *testing.T) {
	t.Parallel()

	m := access.NewMutex(1)

	m.Update(func(access.Poisoning[*int]) {
		assert.False(t, m.TryView(func(access.Poisoning[*int]) {}))
		assert.False(t, m.TryUpdate(func(access.Poisoning[*int]) {}))
	})
}

// TestRWMutex_ReadersOverlapWritersExclude verifies the two lock sides.
func TestRWMutex_ReadersOverlapWritersExclude(t *testing.T) {
	t.Parallel()

	m := access.NewRWMutex(1)

	m.View(func(access.Poisoning[*int]) {
		assert.True(t, m.TryView(func(access.Poisoning[*int]) {}))
		assert.False(t, m.TryUpdate(func(access.Poisoning[*int]) {}))
	})

	m.Update(func(access.Poisoning[*int]) {
		assert.False(t, m.TryView(func(access.Poisoning[*int]) {}))
	})
}

// TestPoisoning_SetByPanickingUpdate verifies a panic mid-mutation marks the
// value Poisoned for subsequent accesses, on both lock backings.
func TestPoisoning_SetByPanickingUpdate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		g    access.Guard[int]
	}{
		{name: "mutex", g: access.NewMutex(1)},
		{name: "rwmutex", g: access.NewRWMutex(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			poison(tc.g)

			// Shared access observes the flag without clearing it.
			tc.g.View(func(p access.Poisoning[*int]) {
				assert.True(t, p.IsPoisoned())
			})
			tc.g.View(func(p access.Poisoning[*int]) {
				assert.True(t, p.IsPoisoned())
			})

			// The access still succeeds; the value is handed out.
			tc.g.View(func(p access.Poisoning[*int]) {
				assert.Equal(t, 1, *p.Unpoison())
			})
		})
	}
}

// TestPoisoning_ClearedByCompletedUpdate verifies an exclusive access that
// completes without panicking clears the flag.
func TestPoisoning_ClearedByCompletedUpdate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		g    access.Guard[int]
	}{
		{name: "mutex", g: access.NewMutex(1)},
		{name: "rwmutex", g: access.NewRWMutex(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			poison(tc.g)

			// The repairing access itself still observes Poisoned.
			tc.g.Update(func(p access.Poisoning[*int]) {
				assert.True(t, p.IsPoisoned())
				*p.Unpoison() = 99
			})

			tc.g.View(func(p access.Poisoning[*int]) {
				assert.Equal(t, 99, *p.AssertHealthy())
			})
		})
	}
}

// TestPlain_NeverPoisons verifies the unsynchronized backing is always
// Healthy, even after a panicking access.
func TestPlain_NeverPoisons(t *testing.T) {
	t.Parallel()

	p := access.NewPlain(1)
	poison(p)

	p.View(func(v access.Poisoning[*int]) {
		assert.True(t, v.IsHealthy())
	})
}
