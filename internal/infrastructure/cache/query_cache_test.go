package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryCachePutGetDelete(t *testing.T) {
	c := NewQueryCache()

	_, ok := c.Get("beds:id:b1")
	require.False(t, ok)

	c.Put("beds:id:b1", "v1")
	v, ok := c.Get("beds:id:b1")
	require.True(t, ok)
	require.Equal(t, "v1", v)

	c.Delete("beds:id:b1")
	_, ok = c.Get("beds:id:b1")
	require.False(t, ok)
}

func TestQueryCacheInvalidateByPrefix(t *testing.T) {
	c := NewQueryCache()
	c.Put(BedKey("b1"), "bed")
	c.Put(BedListKey("er", ""), "list")
	c.Put(PatientKey("p1"), "patient")

	c.Invalidate(BedsPrefix)

	_, ok := c.Get(BedKey("b1"))
	require.False(t, ok)
	_, ok = c.Get(BedListKey("er", ""))
	require.False(t, ok)
	_, ok = c.Get(PatientKey("p1"))
	require.True(t, ok)
}

func TestQueryCacheTakeRestore(t *testing.T) {
	c := NewQueryCache()
	c.Put("k1", "old")

	// k2 is absent at snapshot time
	snap := c.Take("k1", "k2")

	c.Put("k1", "optimistic")
	c.Put("k2", "optimistic")

	c.Restore(snap)

	v, ok := c.Get("k1")
	require.True(t, ok)
	require.Equal(t, "old", v)

	_, ok = c.Get("k2")
	require.False(t, ok)
}

func TestKey(t *testing.T) {
	require.Equal(t, "beds", Key("beds"))
	require.Equal(t, "beds:id:b1", Key("beds", "id", "b1"))
	require.Equal(t, "beds:list:dep=er:status=available", BedListKey("er", "available"))
}
