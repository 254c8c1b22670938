package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstock/internal/core/apperror"
)

func TestFields_FirstMessageWins(t *testing.T) {
	f := New()
	f.Add("Code", "Code is required.")
	f.Add("Code", "Code already exists.")

	assert.Equal(t, "Code is required.", f["Code"])
}

func TestFields_Has(t *testing.T) {
	f := New()
	assert.False(t, f.Has("Name"))

	f.Add("Name", "Name is required.")
	assert.True(t, f.Has("Name"))
}

func TestFields_Err_NilWhenEmpty(t *testing.T) {
	f := New()
	assert.NoError(t, f.Err())
}

func TestFields_Err_CarriesMessages(t *testing.T) {
	f := New()
	f.Add("Code", "Code is required.")
	f.Add("CategoryId", "Category not found.")

	err := f.Err()
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "Code is required.", fields["Code"])
	assert.Equal(t, "Category not found.", fields["CategoryId"])
	assert.Len(t, fields, 2)
}

func TestFieldErrors_NilForOtherErrors(t *testing.T) {
	assert.Nil(t, apperror.FieldErrors(apperror.NewValidation("bad input")))
	assert.Nil(t, apperror.FieldErrors(nil))
}
