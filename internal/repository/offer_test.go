package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusionArray_NilBindsAsEmptyArray(t *testing.T) {
	v, err := exclusionArray(nil).Value()

	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestExclusionArray_EmptyBindsAsEmptyArray(t *testing.T) {
	v, err := exclusionArray([]string{}).Value()

	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestExclusionArray_KeepsWorkerIDs(t *testing.T) {
	v, err := exclusionArray([]string{"w1", "w2"}).Value()

	require.NoError(t, err)
	assert.Equal(t, `{"w1","w2"}`, v)
}
