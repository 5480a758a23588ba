package discovery

import (
	"testing"

	"eventScout/domain"

	"github.com/stretchr/testify/assert"
)

func eventsN(n int) []domain.Event {
	out := make([]domain.Event, n)
	for i := range out {
		out[i] = domain.Event{ID: string(rune('a' + i))}
	}
	return out
}

func TestPaginate(t *testing.T) {
	result := Paginate(eventsN(45), 0, 20)
	assert.Len(t, result.Items, 20)
	assert.Equal(t, 45, result.Total)
	assert.Equal(t, 3, result.TotalPages)

	last := Paginate(eventsN(45), 2, 20)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, 2, last.Page)
}

func TestPaginateEmptyListHasOnePage(t *testing.T) {
	result := Paginate(nil, 0, 20)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestPaginateBeyondEnd(t *testing.T) {
	result := Paginate(eventsN(5), 7, 20)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.TotalPages)
}

func TestPaginateClampsDegenerateInputs(t *testing.T) {
	result := Paginate(eventsN(3), -4, 0)
	assert.Equal(t, 0, result.Page)
	assert.Len(t, result.Items, 1, "limit clamps up to one")
	assert.Equal(t, 3, result.TotalPages)
}
