package importer

import (
	"errors"
	"testing"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Users: []UserImport{
			{ID: "1", Items: []ItemImport{
				{Topic: "Intro", Date: "2025-06-17"},
				{Topic: "", Date: "2025-07-10"},
			}},
		},
	}
}

func knownUsers(ids ...string) func(string) bool {
	return func(id string) bool {
		for _, k := range ids {
			if k == id {
				return true
			}
		}
		return false
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema(), knownUsers("1"))
	assert.Empty(t, errs)
}

func TestValidateImportSchema_UserWithoutItems(t *testing.T) {
	schema := &ImportSchema{Users: []UserImport{{ID: "1"}}}
	assert.Empty(t, ValidateImportSchema(schema, nil))
}

func TestValidateImportSchema_NoUsers(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{}, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "users is required")
}

func TestValidateImportSchema_EmptyUsersList(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(&ImportSchema{Users: []UserImport{}}, nil))
}

func TestValidateImportSchema_MissingUserID(t *testing.T) {
	schema := &ImportSchema{Users: []UserImport{{Items: []ItemImport{{Date: "2025-01-01"}}}}}
	errs := ValidateImportSchema(schema, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "users[0].id is required")
}

func TestValidateImportSchema_BadDates(t *testing.T) {
	schema := &ImportSchema{Users: []UserImport{{ID: "1", Items: []ItemImport{
		{Topic: "a", Date: "2025-02-30"},
		{Topic: "b", Date: "06/10/2025"},
		{Topic: "c", Date: ""},
	}}}}

	errs := ValidateImportSchema(schema, nil)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "users[0].items[0].date")
	assert.True(t, errors.Is(errs[0], domain.ErrInvalidDateFormat))
	assert.Contains(t, errs[1].Error(), "users[0].items[1].date")
	assert.True(t, errors.Is(errs[1], domain.ErrInvalidDateFormat))
	assert.Contains(t, errs[2].Error(), "users[0].items[2].date is required")
}

func TestValidateImportSchema_DuplicateAndUnknownUsers(t *testing.T) {
	schema := &ImportSchema{Users: []UserImport{
		{ID: "1"},
		{ID: "1"},
		{ID: "9"},
	}}

	errs := ValidateImportSchema(schema, knownUsers("1"))
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "duplicate user")
	assert.ErrorIs(t, errs[1], domain.ErrUnknownUser)
}
