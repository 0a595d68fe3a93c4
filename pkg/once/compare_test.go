package once_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/once/pkg/once"
	"github.com/dmitrymomot/once/pkg/requirement"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("maps committed value", func(t *testing.T) {
		t.Parallel()

		f := once.MustNew[int]("port")
		require.NoError(t, f.Commit(8080))

		got, err := once.Map[int](f, strconv.Itoa)
		require.NoError(t, err)
		assert.True(t, got.Ok)
		assert.Equal(t, "8080", got.Value)
	})

	t.Run("unset container", func(t *testing.T) {
		t.Parallel()

		f := once.MustNewShared[int]("port")
		got, err := once.Map[int](f, strconv.Itoa)
		assert.ErrorIs(t, err, once.ErrNotFound)
		assert.False(t, got.Ok)
	})

	t.Run("empty sentinel skips transform", func(t *testing.T) {
		t.Parallel()

		f := once.MustNew("maybe", requirement.AllowNil[*int]())
		require.NoError(t, f.Commit(nil))

		got, err := once.Map[*int](f, func(*int) string {
			t.Fatal("transform must not be called for nil")
			return ""
		})
		require.NoError(t, err)
		assert.False(t, got.Ok)
	})

	t.Run("nil result is none", func(t *testing.T) {
		t.Parallel()

		f := once.MustNew[string]("name")
		require.NoError(t, f.Commit("x"))

		got, err := once.Map[string](f, func(string) []byte { return nil })
		require.NoError(t, err)
		assert.False(t, got.Ok)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()

		_, err := once.Map[int, string](nil, strconv.Itoa)
		assert.ErrorIs(t, err, once.ErrInvalidArgument)

		_, err = once.Map[int, string](once.MustNew[int]("port"), nil)
		assert.ErrorIs(t, err, once.ErrInvalidArgument)
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	set := func(name string, v int) *once.Field[int] {
		f := once.MustNew[int](name)
		require.NoError(t, f.Commit(v))
		return f
	}

	tests := []struct {
		name string
		a, b once.Container[int]
		want bool
	}{
		{name: "both unset", a: once.MustNew[int]("x"), b: once.MustNew[int]("x"), want: true},
		{name: "different names", a: once.MustNew[int]("x"), b: once.MustNew[int]("y"), want: false},
		{name: "one set", a: set("x", 1), b: once.MustNew[int]("x"), want: false},
		{name: "same value", a: set("x", 1), b: set("x", 1), want: true},
		{name: "different values", a: set("x", 1), b: set("x", 2), want: false},
		{name: "same value different names", a: set("x", 1), b: set("y", 1), want: false},
		{name: "across flavors", a: set("x", 3), b: func() once.Container[int] {
			s := once.MustNewShared[int]("x")
			require.NoError(t, s.Commit(3))
			return s
		}(), want: true},
		{name: "nil and container", a: nil, b: once.MustNew[int]("x"), want: false},
		{name: "both nil", a: nil, b: nil, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, once.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, once.Equal(tt.b, tt.a))
			if tt.want {
				assert.Equal(t, once.Hash(tt.a), once.Hash(tt.b))
			}
		})
	}
}

func TestEqual_Requirements(t *testing.T) {
	t.Parallel()

	a := once.MustNew("x", requirement.Positive[int]())
	b := once.MustNew[int]("x")
	require.NoError(t, a.Commit(5))
	require.NoError(t, b.Commit(5))

	assert.True(t, once.Equal[int](a, b), "requirements do not take part in equality")
}

func TestHash(t *testing.T) {
	t.Parallel()

	unset := once.MustNew[string]("greeting")
	set := once.MustNew[string]("greeting")
	require.NoError(t, set.Commit("hello"))
	other := once.MustNew[string]("greeting")
	require.NoError(t, other.Commit("bye"))

	assert.Equal(t, once.Hash[string](set), once.Hash[string](set))
	assert.NotEqual(t, once.Hash[string](unset), once.Hash[string](set))
	assert.NotEqual(t, once.Hash[string](set), once.Hash[string](other))

	// Empty set value differs from unset.
	empty := once.MustNew[string]("greeting")
	require.NoError(t, empty.Commit(""))
	assert.NotEqual(t, once.Hash[string](unset), once.Hash[string](empty))
}

func TestEqual_UncomparableValues(t *testing.T) {
	t.Parallel()

	a := once.MustNew[any]("x")
	b := once.MustNew[any]("x")
	require.NoError(t, a.Commit([]int{1}))
	require.NoError(t, b.Commit([]int{1}))

	assert.NotPanics(t, func() {
		assert.False(t, once.Equal[any](a, b))
		assert.False(t, once.Equal[any](a, a))
	})

	c := once.MustNew[any]("x")
	require.NoError(t, c.Commit(map[string]int{"a": 1}))
	assert.False(t, once.Equal[any](a, c))

	d := once.MustNew[any]("x")
	require.NoError(t, d.Commit(1))
	assert.False(t, once.Equal[any](a, d))
	assert.False(t, once.Equal[any](d, a))

	type holder struct{ v any }
	e := once.MustNew[any]("x")
	f := once.MustNew[any]("x")
	require.NoError(t, e.Commit(holder{v: []int{1}}))
	require.NoError(t, f.Commit(holder{v: []int{1}}))
	assert.False(t, once.Equal[any](e, f))
}

func TestHash_UncomparableValues(t *testing.T) {
	t.Parallel()

	a := once.MustNew[any]("x")
	require.NoError(t, a.Commit([]int{1}))
	b := once.MustNew[any]("x")
	require.NoError(t, b.Commit([]string{"other"}))

	assert.NotPanics(t, func() {
		assert.Equal(t, once.Hash[any](a), once.Hash[any](a))
	})
	// Only the name and the set marker contribute.
	assert.Equal(t, once.Hash[any](a), once.Hash[any](b))
	assert.NotEqual(t, once.Hash[any](a), once.Hash[any](once.MustNew[any]("x")))

	s := once.MustNewShared[any]("x")
	require.NoError(t, s.Commit(map[string]int{"a": 1}))
	assert.NotPanics(t, func() { once.Hash[any](s) })
}

func TestEqual_ComparableAny(t *testing.T) {
	t.Parallel()

	a := once.MustNew[any]("x")
	b := once.MustNew[any]("x")
	require.NoError(t, a.Commit("same"))
	require.NoError(t, b.Commit("same"))

	assert.True(t, once.Equal[any](a, b))
	assert.Equal(t, once.Hash[any](a), once.Hash[any](b))
}
