package proc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	require.Regexp(t, `^p-.{6}$`, a)
	require.NotEqual(t, a, b)
}

func TestName_String(t *testing.T) {
	require.Equal(t, "ingest", Name("ingest").String())
}
