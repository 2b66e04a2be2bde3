package seededrand

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	for _, seed := range []uint64{0, 1, 12345, 67890, 1<<64 - 1} {
		a, b := New(seed), New(seed)
		for i := 0; i < 10000; i++ {
			require.Equal(t, a.Next(), b.Next(), "seed %d diverged at draw %d", seed, i)
		}
	}
}

func TestNext(t *testing.T) {
	g := New(12345)
	require.Equal(t, uint64(21562465348), g.Next())
	require.Equal(t, uint64(35891263647283923), g.Next())
	require.Equal(t, uint64(11348311824757703190), g.Next())
}

func TestIntnRegression(t *testing.T) {
	g := New(12345)
	got := []int{g.Intn(100), g.Intn(100), g.Intn(100)}
	require.Equal(t, []int{48, 23, 90}, got)
}

func TestIntn(t *testing.T) {
	g := New(42)
	for _, n := range []int{1, 2, 3, 10, 97, 1000, 1 << 30} {
		for i := 0; i < 1000; i++ {
			k := g.Intn(n)
			require.True(t, k >= 0, "Intn() must be >= 0")
			require.True(t, k < n, "Intn(n) must be < n")
		}
	}

	for _, n := range []int{0, -1, -100} {
		before := g
		require.Equal(t, 0, g.Intn(n))
		require.Equal(t, before, g, "Intn(%d) must not advance the stream", n)
	}
}

func TestIntRange(t *testing.T) {
	g := New(7)
	for i := 0; i < 1000; i++ {
		k := g.IntRange(1000, 50000)
		require.True(t, k >= 1000 && k < 50000)
	}

	assert.Equal(t, 5, g.IntRange(5, 5))
	assert.Equal(t, 10, g.IntRange(10, 3))
	assert.Equal(t, -3, g.IntRange(-3, -2))
}

func TestIntRangeWide(t *testing.T) {
	g := New(12345)
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		k := g.IntRange(-2, math.MaxInt)
		require.True(t, k >= -2 && k < math.MaxInt)
		seen[k] = true
	}
	require.Greater(t, len(seen), 1)

	g = New(12345)
	k := g.IntRange(math.MinInt, math.MaxInt)
	require.True(t, k >= math.MinInt && k < math.MaxInt)
}

func TestFloat64(t *testing.T) {
	g := New(12345)
	for i := 0; i < 100000; i++ {
		f := g.Float64()
		require.True(t, f >= 0.0, "Float64() must be >= 0")
		require.True(t, f < 1.0, "Float64() must be < 1")
	}

	// The largest possible state must still map below 1.0.
	inv := uint64(multiplier)
	for i := 0; i < 5; i++ {
		inv *= 2 - multiplier*inv
	}
	top := Generator{state: (1<<64 - 1 - increment) * inv}
	require.Equal(t, math.Nextafter(1, 0), top.Float64())
	require.Equal(t, uint64(1<<64-1), top.state)
}

func TestFloat64MatchesNextOver2To64(t *testing.T) {
	g, ref := New(12345), New(12345)
	for i := 0; i < 100000; i++ {
		require.Equal(t, float64(ref.Next())/(1<<64), g.Float64())
	}
}

func TestFloatRange(t *testing.T) {
	g := New(99)
	for i := 0; i < 10000; i++ {
		f := g.FloatRange(-50000, 50000)
		require.True(t, f >= -50000 && f < 50000)
	}
}

func TestBool(t *testing.T) {
	g := New(12345)
	trues := 0
	for i := 0; i < 1000; i++ {
		if g.Bool() {
			trues++
		}
	}
	assert.InDelta(t, 500, trues, 50)
}

func TestChoice(t *testing.T) {
	g := New(1)
	_, ok := Choice(&g, []string{})
	assert.False(t, ok)
	_, ok = Choice[int](&g, nil)
	assert.False(t, ok)
	assert.Equal(t, "fallback", ChoiceOr(&g, nil, "fallback"))

	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v, ok := Choice(&g, items)
		require.True(t, ok)
		require.Contains(t, items, v)
		seen[v] = true
	}
	assert.Len(t, seen, len(items))
}

func TestShuffled(t *testing.T) {
	g := New(12345)
	assert.Equal(t, []int{}, Shuffled(g, []int{}))
	assert.Equal(t, []int{}, Shuffled[int](g, nil))

	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10}
	orig := append([]int(nil), in...)
	for i := 0; i < 100; i++ {
		out := Shuffled(g, in)
		require.Len(t, out, len(in))
		require.Equal(t, orig, in, "input must not be mutated")

		sorted := append([]int(nil), out...)
		sort.Ints(sorted)
		require.Equal(t, orig, sorted, "output must be a permutation")
		g.Next()
	}
}

func TestShuffledDoesNotAdvanceCaller(t *testing.T) {
	g := New(12345)
	ref := New(12345)

	first := Shuffled(g, []string{"a", "b", "c", "d", "e"})
	second := Shuffled(g, []string{"a", "b", "c", "d", "e"})
	assert.Equal(t, first, second, "same generator state must give the same permutation")

	for i := 0; i < 10; i++ {
		require.Equal(t, ref.Next(), g.Next())
	}
}

func TestRead(t *testing.T) {
	a, b := New(5), New(5)
	p1, p2 := make([]byte, 19), make([]byte, 19)
	n, err := a.Read(p1)
	require.NoError(t, err)
	require.Equal(t, 19, n)
	_, _ = b.Read(p2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, a, b)
}

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, SeedFromString("demo"), SeedFromString("demo"))
	assert.NotEqual(t, SeedFromString("demo"), SeedFromString("Demo"))
}

func TestParseSeed(t *testing.T) {
	assert.Equal(t, uint64(12345), ParseSeed("12345"))
	assert.Equal(t, uint64(12345), ParseSeed(" 12345 "))
	assert.Equal(t, SeedFromString("demo"), ParseSeed("demo"))
	assert.Equal(t, SeedFromString("-1"), ParseSeed("-1"))
}

func BenchmarkNext(b *testing.B) {
	g := New(12345)
	var k uint64
	for i := 0; i < b.N; i++ {
		k = g.Next()
	}
	_ = k
}

func BenchmarkShuffled(b *testing.B) {
	g := New(12345)
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Shuffled(g, items)
	}
}
