package topic

import "sort"

// TopicStat is one row of the topic table read-back.
type TopicStat struct {
	Topic int      `json:"topic" yaml:"topic"`
	Size  int      `json:"size" yaml:"size"`
	Words []string `json:"words" yaml:"words"`
}

// TopWords returns the n highest-weighted words of a topic under the
// class-based TF-IDF weighting, best first. Unknown topics yield nil.
func (m *Model) TopWords(topic, n int) []string {
	ranked := m.rep.topWords(topic, n)
	if ranked == nil {
		return nil
	}
	words := make([]string, len(ranked))
	for i, wt := range ranked {
		words[i] = wt.Term
	}
	return words
}

// TopicInfo returns one row per topic, largest first. The outlier topic -1,
// when present, is always listed last regardless of its size.
func (m *Model) TopicInfo() []TopicStat {
	stats := make([]TopicStat, 0, len(m.sizes))
	for t, size := range m.sizes {
		stats = append(stats, TopicStat{
			Topic: t,
			Size:  size,
			Words: m.TopWords(t, m.opts.TopWords),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if (stats[i].Topic == -1) != (stats[j].Topic == -1) {
			return stats[j].Topic == -1
		}
		if stats[i].Size != stats[j].Size {
			return stats[i].Size > stats[j].Size
		}
		return stats[i].Topic < stats[j].Topic
	})
	return stats
}

// VocabSize reports the current size of the vectorizer's vocabulary.
func (m *Model) VocabSize() int { return m.vectorizer.VocabSize() }
