package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNamesEmptyInputSkipsQuery(t *testing.T) {
	// nil DB: reaching the query at all would panic, so the empty-input
	// shortcut is what keeps this test alive.
	svc := NewUserService(nil)

	names, err := svc.ResolveNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = svc.ResolveNames(context.Background(), []int{})
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestInPlaceholders(t *testing.T) {
	assert.Equal(t, "?", inPlaceholders(1))
	assert.Equal(t, "?,?", inPlaceholders(2))
	assert.Equal(t, "?,?,?,?,?", inPlaceholders(5))
}
