package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStore(t *testing.T) {
	assert.NoError(t, Store("noop", nil))

	err := Store("find evaluation", gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrStoreFailure)

	boom := errors.New("connection reset")
	err = Store("create evaluation", boom)
	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "create evaluation")

	// already classified errors pass through untouched
	nf := NotFound("template %s", "abc")
	assert.Same(t, nf, Store("again", nf))
}

func TestAggregation(t *testing.T) {
	assert.NoError(t, Aggregation("user-1", nil))

	cause := Store("save summary", errors.New("disk full"))
	err := Aggregation("user-1", cause)

	assert.ErrorIs(t, err, ErrAggregationFailed)
	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "user-1")

	var aggErr *AggregationError
	if assert.ErrorAs(t, err, &aggErr) {
		assert.Equal(t, "user-1", aggErr.SubjectID)
	}
}
