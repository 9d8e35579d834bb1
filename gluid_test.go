package gluid

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt32_Roundtrip(t *testing.T) {
	values := []int32{0, 1, -1, 5, 8, 42, math.MaxInt32, math.MinInt32}
	namespaces := []Namespace{None, NewNamespace(""), NewNamespace("test")}

	for _, v := range values {
		for _, ns := range namespaces {
			id := FromInt32(v, ns)

			actual, ok := id.Int32(ns)
			require.True(t, ok, "value %d", v)
			assert.Equal(t, v, actual)
		}
	}
}

func TestFromInt64_Roundtrip(t *testing.T) {
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 1 << 32, -(1 << 40), 0x0123456789ABCDEF}
	namespaces := []Namespace{None, NewNamespace(""), NewNamespace("test")}

	for _, v := range values {
		for _, ns := range namespaces {
			id := FromInt64(v, ns)

			actual, ok := id.Int64(ns)
			require.True(t, ok, "value %d", v)
			assert.Equal(t, v, actual)
		}
	}
}

func TestFromInt32Pair_Roundtrip(t *testing.T) {
	cases := [][2]int32{
		{1, 10},
		{0, 0},
		{-1, 1},
		{math.MaxInt32, math.MinInt32},
	}
	namespaces := []Namespace{None, NewNamespace(""), NewNamespace("test")}

	for _, c := range cases {
		for _, ns := range namespaces {
			id := FromInt32Pair(c[0], c[1], ns)

			first, ok := id.Int32(ns)
			require.True(t, ok)
			assert.Equal(t, c[0], first)

			second, ok := id.SecondInt32(ns)
			require.True(t, ok)
			assert.Equal(t, c[1], second)
		}
	}
}

// The namespace-in/namespace-out grid: decoding succeeds under the exact
// namespace identity used to encode and no other, with None and the empty
// string being distinct identities.
func TestNamespaceIsolation(t *testing.T) {
	for _, c := range []struct {
		name   string
		value  int32
		encode Namespace
		decode Namespace
		want   bool
	}{
		{"test-test", 1, NewNamespace("test"), NewNamespace("test"), true},
		{"test-blah", 1, NewNamespace("test"), NewNamespace("blah"), false},
		{"test-empty", 1, NewNamespace("test"), NewNamespace(""), false},
		{"test-none", 1, NewNamespace("test"), None, false},
		{"empty-empty", 5, NewNamespace(""), NewNamespace(""), true},
		{"empty-none", 5, NewNamespace(""), None, false},
		{"none-none", 8, None, None, true},
		{"none-empty", 8, None, NewNamespace(""), false},
		{"max-test-test", math.MaxInt32, NewNamespace("test"), NewNamespace("test"), true},
		{"max-none-none", math.MaxInt32, None, None, true},
	} {
		c := c
		t.Run(c.name, func(t *testing.T) {
			id := FromInt32(c.value, c.encode)

			actual, ok := id.Int32(c.decode)
			if assert.Equal(t, c.want, ok) && c.want {
				assert.Equal(t, c.value, actual)
			}

			assert.Equal(t, c.want, id.IsLinked(c.decode))
		})
	}
}

func TestNamespaceIsolation_Pair(t *testing.T) {
	id := FromInt32Pair(1, 10, NewNamespace("test"))

	first, ok := id.Int32(NewNamespace("test"))
	require.True(t, ok)
	assert.Equal(t, int32(1), first)

	second, ok := id.SecondInt32(NewNamespace("test"))
	require.True(t, ok)
	assert.Equal(t, int32(10), second)

	_, ok = id.Int32(NewNamespace("blah"))
	assert.False(t, ok)

	_, ok = id.SecondInt32(NewNamespace("blah"))
	assert.False(t, ok)
}

func TestIsGluid_NamespaceIndependent(t *testing.T) {
	for _, ns := range []Namespace{None, NewNamespace(""), NewNamespace("test"), NewNamespace("blah")} {
		assert.True(t, FromInt32(1, ns).IsGluid())
	}
}

func TestIsGluid_RejectsStandardUUIDs(t *testing.T) {
	// Conforming v4s carry version nibble 4 and variant 10xx - both outside
	// our reserved markers, so rejection is certain, not probabilistic.
	for i := 0; i < 1000; i++ {
		id := FromUUID(uuid.New())

		require.False(t, id.IsGluid())
		require.False(t, id.IsLinked(None))

		_, ok := id.Int32(None)
		require.False(t, ok)

		_, ok = id.Int64(NewNamespace("test"))
		require.False(t, ok)
	}
}

func TestIsGluid_RejectsZero(t *testing.T) {
	assert.False(t, Zero().IsGluid())

	_, ok := Zero().Int32(None)
	assert.False(t, ok)
}

func TestEncode_Deterministic(t *testing.T) {
	ns := NewNamespace("determinism")

	assert.Equal(t, FromInt32(7, ns), FromInt32(7, ns))
	assert.Equal(t, FromInt64(-9, ns), FromInt64(-9, ns))
	assert.Equal(t, FromInt32Pair(3, 4, None), FromInt32Pair(3, 4, None))
}

func BenchmarkFromInt32(b *testing.B) {
	ns := NewNamespace("bench")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FromInt32(int32(i), ns)
	}
}

func BenchmarkInt32(b *testing.B) {
	ns := NewNamespace("bench")
	id := FromInt32(1337, ns)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = id.Int32(ns)
	}
}

func BenchmarkNewNamespace(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewNamespace("bench")
	}
}
