// Package testutil provides assertion helpers for tool result testing.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unifiedmath/server/internal/types"
)

// AssertSuccess fails the test unless the result succeeded.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	if result.Error != nil {
		require.True(t, result.Success, "expected success, got %s: %s", result.Error.Kind, result.Error.Message)
	}
	require.True(t, result.Success)
}

// AssertFailure fails the test unless the result failed with the given kind.
func AssertFailure(t *testing.T, result *types.Result, kind types.ErrorKind) {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.Success, "expected failure, got %v", result.Data)
	require.NotNil(t, result.Error)
	require.Equal(t, kind, result.Error.Kind)
	require.NotEmpty(t, result.Error.Message)
}
