package requirement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/once/pkg/requirement"
)

type tags []string

func TestSliceNotEmpty(t *testing.T) {
	t.Parallel()

	r := requirement.SliceNotEmpty[[]int]()
	assert.NoError(t, r.Check([]int{1}))
	assert.Error(t, r.Check([]int{}))
	assert.Error(t, r.Check(nil))

	named := requirement.SliceNotEmpty[tags]()
	assert.NoError(t, named.Check(tags{"a"}))
	assert.ErrorIs(t, named.Check(tags{}), requirement.ErrViolation)
}

func TestMapNotEmpty(t *testing.T) {
	t.Parallel()

	r := requirement.MapNotEmpty[map[string]int]()
	assert.NoError(t, r.Check(map[string]int{"a": 1}))
	assert.Error(t, r.Check(map[string]int{}))
	assert.Error(t, r.Check(nil))
}
