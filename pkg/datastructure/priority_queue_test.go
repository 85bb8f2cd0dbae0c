package datastructure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestMinHeap(t *testing.T) {
	t.Run("extracts in ascending rank order", func(t *testing.T) {
		h := NewMinHeap[int, float64]()
		ranks := []float64{5.5, 1.25, 9, 0, 3.75, 3.75, 100}
		for i, r := range ranks {
			h.Insert(i, r)
		}
		assert.Equal(t, len(ranks), h.Size())

		got := []float64{}
		for !h.IsEmpty() {
			_, r := h.ExtractMin()
			got = append(got, r)
		}

		sorted := append([]float64{}, ranks...)
		sort.Float64s(sorted)
		assert.Equal(t, sorted, got)
	})

	t.Run("random ranks", func(t *testing.T) {
		rd := rand.New(rand.NewSource(42))
		h := NewMinHeap[int, float64]()
		for i := 0; i < 1000; i++ {
			h.Insert(i, rd.Float64()*1000)
		}
		prev := -1.0
		for !h.IsEmpty() {
			_, r := h.ExtractMin()
			assert.GreaterOrEqual(t, r, prev)
			prev = r
		}
	})
}
