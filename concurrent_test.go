package cowvec_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/cowvec"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func numbers(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestConcurrentReads(t *testing.T) {
	v := cowvec.From([]int{1, 2, 3, 4, 5})
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			sum := 0
			for x := range v.Values() {
				sum += x
			}
			if sum != 15 {
				return fmt.Errorf("expected sum to be 15, is %d", sum)
			}
			_ = v.At(i % 5)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentCloneAndMutate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowvec")
	defer teardown()
	tracing.Select("cowvec").SetTraceLevel(tracing.LevelError)
	//
	const workers, n = 8, 100
	base := cowvec.From(numbers(n))
	clones := make([]*cowvec.Vector[int], workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			c := base.Clone()
			for i := 0; i < n; i++ {
				c.Set(i, c.At(i)*2)
			}
			c.Push(w)
			clones[w] = c
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, numbers(n), base.ToSlice())
	assert.False(t, base.IsStructureShared())
	assert.True(t, base.IsStorageShared())
	assert.Equal(t, n+workers*(n+1), base.Allocations())
	for w, c := range clones {
		require.Equal(t, n+1, c.Len())
		assert.Equal(t, 2*(n-1), c.At(n-1))
		assert.Equal(t, w, c.At(n))
	}
}

func TestConcurrentRelease(t *testing.T) {
	const workers = 16
	base := cowvec.From(numbers(10))
	clones := make([]*cowvec.Vector[int], workers)
	for w := range clones {
		clones[w] = base.Clone()
	}
	var g errgroup.Group
	for _, c := range clones {
		g.Go(func() error {
			c.Release()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.False(t, base.IsStorageShared())
	assert.False(t, base.IsStructureShared())
}
