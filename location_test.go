package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_Compare(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, CmpLocation(Location{0, 5}, Location{1, 0}))
	assert.Equal(1, CmpLocation(Location{1, 0}, Location{0, 5}))
	assert.Equal(-1, CmpLocation(Location{2, 1}, Location{2, 3}))
	assert.Equal(0, CmpLocation(Location{2, 3}, Location{2, 3}))
	assert.True(Location{0, 1}.Before(Location{0, 2}))
	assert.False(Location{0, 2}.Before(Location{0, 2}))
}

func TestSpan_NewSpanOrdersLocations(t *testing.T) {
	assert := assert.New(t)

	locs := []Location{{0, 0}, {0, 3}, {1, 0}, {1, 2}, {4, 1}}
	for _, a := range locs {
		for _, b := range locs {
			s := NewSpan(a, b)
			assert.False(s.End.Before(s.Start), "span %v from %v %v", s, a, b)
			assert.Equal(NewSpan(b, a), s)
		}
	}
}

func TestSpan_ColumnsForRow(t *testing.T) {
	assert := assert.New(t)

	single := NewSpan(Location{0, 3}, Location{0, 1})
	s, e, ok := single.ColumnsForRow(0, 4)
	assert.True(ok)
	assert.Equal(1, s)
	assert.Equal(3, e)

	multi := NewSpan(Location{1, 2}, Location{3, 4})
	s, e, ok = multi.ColumnsForRow(1, 10)
	assert.True(ok)
	assert.Equal([2]int{2, 10}, [2]int{s, e})

	s, e, ok = multi.ColumnsForRow(2, 7)
	assert.True(ok)
	assert.Equal([2]int{0, 7}, [2]int{s, e})

	s, e, ok = multi.ColumnsForRow(3, 9)
	assert.True(ok)
	assert.Equal([2]int{0, 4}, [2]int{s, e})

	_, _, ok = multi.ColumnsForRow(0, 5)
	assert.False(ok)
	_, _, ok = multi.ColumnsForRow(4, 5)
	assert.False(ok)
}

func TestSpan_Helpers(t *testing.T) {
	assert := assert.New(t)

	s := NewSpan(Location{1, 2}, Location{3, 0})
	assert.True(s.ContainsRow(1))
	assert.True(s.ContainsRow(3))
	assert.False(s.ContainsRow(4))
	assert.False(s.IsEmpty())
	assert.True(NewSpan(Location{2, 2}, Location{2, 2}).IsEmpty())

	assert.True(s.OutsideOf(NewSpan(Location{3, 1}, Location{5, 0})))
	assert.False(s.OutsideOf(NewSpan(Location{3, 0}, Location{5, 0})))

	clamped := NewSpan(Location{1, 2}, Location{9, 9}).Clamp(Location{2, 4})
	assert.Equal(Location{1, 2}, clamped.Start)
	assert.Equal(Location{2, 4}, clamped.End)
}
