package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, paginate(items, 3, 0))
	assert.Equal(t, []int{3, 4}, paginate(items, 2, 2))
	assert.Equal(t, []int{5}, paginate(items, 25, 4))
	assert.Empty(t, paginate(items, 25, 5))
	assert.Empty(t, paginate(items, 25, 100))
	assert.Empty(t, paginate([]int{}, 25, 0))
}

func TestPaginateWindowNeverExceedsLimit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	for offset := 0; offset <= 6; offset++ {
		for limit := 1; limit <= 6; limit++ {
			page := paginate(items, limit, offset)
			assert.LessOrEqual(t, len(page), limit)

			want := len(items) - offset
			if want < 0 {
				want = 0
			}
			if want > limit {
				want = limit
			}
			assert.Len(t, page, want, "limit=%d offset=%d", limit, offset)
		}
	}
}
