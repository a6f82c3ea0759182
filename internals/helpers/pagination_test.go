// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause_WhitelistsColumns(t *testing.T) {
	allowed := map[string]string{
		"created_at": "invoice_created_at",
		"due_date":   "invoice_due_date",
	}

	p := Params{SortBy: "due_date", SortOrder: "asc"}
	order, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "invoice_due_date ASC", order)

	// Unknown keys fall back to the default, never to raw input.
	p = Params{SortBy: "invoice_id; DROP TABLE invoices", SortOrder: "desc"}
	order, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "invoice_created_at DESC", order)
}

func TestSafeOrderClause_DefaultsToDesc(t *testing.T) {
	allowed := map[string]string{"created_at": "student_created_at"}
	p := Params{SortBy: "created_at", SortOrder: "sideways"}
	order, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_created_at DESC", order)
}

func TestSafeOrderClause_MissingDefaultErrors(t *testing.T) {
	p := Params{SortBy: "nope"}
	_, err := p.SafeOrderClause(map[string]string{}, "created_at")
	assert.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(45, Params{Page: 2, PerPage: 20})
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 20})
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
