//go:build unit

package pgconv

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTextRoundTrip(t *testing.T) {
	assert.Nil(t, StringPtrFromPgtype(StringPtrToPgtype(nil)))

	floor := "2"
	got := StringPtrFromPgtype(StringPtrToPgtype(&floor))
	if assert.NotNil(t, got) {
		assert.Equal(t, "2", *got)
	}

	empty := ""
	assert.Equal(t, &empty, StringPtrFromPgtype(StringPtrToPgtype(&empty)))
}

func TestPgErrorHelpers(t *testing.T) {
	err := &pgconn.PgError{Code: CodeCheckViolation, ConstraintName: "parking_lots_total_capacity_check"}

	assert.Equal(t, CodeCheckViolation, PgErrorCode(err))
	assert.Equal(t, "parking_lots_total_capacity_check", ConstraintName(err))
	assert.Empty(t, PgErrorCode(assert.AnError))
	assert.Empty(t, ConstraintName(assert.AnError))
	assert.True(t, IsNoRows(pgx.ErrNoRows))
}
