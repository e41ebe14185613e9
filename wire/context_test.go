package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStackPushPopCurrent(t *testing.T) {
	s := NewContextStack()
	require.Equal(t, 1, s.Depth())
	require.Equal(t, CtxTop, s.Current())

	s.Push(CtxDF, "data_file")
	assert.Equal(t, CtxDF, s.Current())
	assert.Equal(t, "data_file", s.CurrentName())
	assert.Equal(t, 2, s.Depth())

	s.Push(CtxDFInfo, "df_info")
	assert.Equal(t, CtxDFInfo, s.Current())
	assert.Equal(t, 3, s.Depth())

	s.Pop()
	assert.Equal(t, CtxDF, s.Current())
	s.Pop()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, CtxTop, s.Current())
}

func TestContextStackPopUnderflowPanics(t *testing.T) {
	s := NewContextStack()
	assert.Panics(t, func() { s.Pop() })
}
