package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/quantaplan/internal/errors"
)

// AssertSQLState checks that err carries the given SQLSTATE somewhere in its chain.
func AssertSQLState(t *testing.T, err error, code string) bool {
	t.Helper()
	if err == nil {
		return assert.Fail(t, "expected error with SQLSTATE "+code+", got nil")
	}
	return assert.Equal(t, code, errors.Code(err), "error: %v", err)
}
