package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicInfo_SortsBySizeWithOutliersLast(t *testing.T) {
	// GIVEN accumulated sizes including a large outlier topic
	m := newTestModel(t, Options{TopWords: 2})
	m.sizes = map[int]int{0: 3, 1: 8, 2: 3, -1: 100}

	// WHEN reading the topic table
	stats := m.TopicInfo()

	// THEN rows are largest-first, ties by topic id, outlier last
	got := make([]int, len(stats))
	for i, s := range stats {
		got[i] = s.Topic
	}
	assert.Equal(t, []int{1, 0, 2, -1}, got)
	assert.Equal(t, 100, stats[3].Size)
}

func TestTopWords_HonorsRequestedCount(t *testing.T) {
	m := newTestModel(t, Options{})
	assert.NoError(t, m.Fit([]string{"red wine tasting notes", "marathon run"}))

	assert.Len(t, m.TopWords(1, 2), 2)
	assert.Nil(t, m.TopWords(42, 3), "unknown topic yields nil")
	assert.Nil(t, m.TopWords(1, 0))
}
