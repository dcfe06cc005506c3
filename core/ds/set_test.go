package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_AddRemove(t *testing.T) {
	s := NewSet[string]()
	require.Equal(t, 0, s.Len())

	s.Add("a")
	s.Add("b")
	s.Add("a") // duplicate is a no-op
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("a"))
	require.Equal(t, []string{"a", "b"}, s.Values())

	s.Remove("a")
	require.False(t, s.Contains("a"))
	require.Equal(t, []string{"b"}, s.Values())

	// removing an absent element is a no-op
	s.Remove("zzz")
	require.Equal(t, 1, s.Len())
}

func TestSet_OrderPreserved(t *testing.T) {
	s := NewSet("c", "a", "b")
	require.Equal(t, []string{"c", "a", "b"}, s.Values())

	s.Remove("a")
	s.Add("a")
	require.Equal(t, []string{"c", "b", "a"}, s.Values())
}

func TestSet_ValuesIsCopy(t *testing.T) {
	s := NewSet("x", "y")
	v := s.Values()
	v[0] = "mutated"
	require.Equal(t, []string{"x", "y"}, s.Values())
}
