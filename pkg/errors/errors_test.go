package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	base := errors.New("dial tcp: refused")
	err := fmt.Errorf("outer: %w", Wrap("llm_unavailable", "provider down", base))

	require.True(t, IsCode(err, "llm_unavailable"))
	require.False(t, IsCode(err, "invalid_input"))
	require.ErrorIs(t, err, base)
	require.Equal(t, "outer: provider down: dial tcp: refused", err.Error())
}

func TestWithDetails(t *testing.T) {
	err := WithDetails("llm_malformed", "bad payload", nil, map[string]any{"choices": nil})

	appErr, ok := As(err)
	require.True(t, ok)
	require.Equal(t, "bad payload", appErr.Error())
	require.Equal(t, map[string]any{"choices": nil}, appErr.Details)

	_, ok = As(errors.New("plain"))
	require.False(t, ok)
}
