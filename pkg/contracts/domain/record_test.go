package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("identifier", "1")
	rec.Set("state_code", "06")
	rec.Set("male_under_10", 4)

	assert.Equal(t, []string{"identifier", "state_code", "male_under_10"}, rec.Names())
	assert.Equal(t, []interface{}{"1", "06", 4}, rec.Values())
	assert.Equal(t, 3, rec.Len())
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", 1)
	rec.Set("b", 2)
	rec.Set("a", 9)

	assert.Equal(t, []string{"a", "b"}, rec.Names())
	assert.Equal(t, 9, rec.Count("a"))
}

func TestRecordAccessors(t *testing.T) {
	rec := NewRecord()
	rec.Set("ori_code", "CA00107")
	rec.Set("male_under_10", 7)

	v, ok := rec.Get("ori_code")
	assert.True(t, ok)
	assert.Equal(t, "CA00107", v)

	_, ok = rec.Get("absent")
	assert.False(t, ok)

	assert.Equal(t, "CA00107", rec.Text("ori_code"))
	assert.Equal(t, 7, rec.Count("male_under_10"))

	// Type mismatches and absent fields fall back to zero values.
	assert.Empty(t, rec.Text("male_under_10"))
	assert.Zero(t, rec.Count("ori_code"))
	assert.Zero(t, rec.Count("absent"))
}
