package topic

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"
)

// representation maintains per-topic term totals and derives class-based
// TF-IDF weights from them. Totals are decayed in lockstep with the
// vectorizer so that recent batches dominate the topic descriptions.
type representation struct {
	counts map[int]map[string]float64 // topic -> term -> accumulated count
}

func newRepresentation() *representation {
	return &representation{counts: make(map[int]map[string]float64)}
}

// update folds one batch's document-term matrix into the per-topic totals.
// dtm rows correspond to labels entries; terms maps dtm columns to words.
// Existing totals are scaled by (1-decay) first, matching the vectorizer.
func (r *representation) update(dtm *sparse.CSR, terms []string, labels []int, decay float64) {
	if decay > 0 {
		keep := 1 - decay
		for _, byTerm := range r.counts {
			for t := range byTerm {
				byTerm[t] *= keep
			}
		}
	}
	dtm.DoNonZero(func(i, j int, v float64) {
		topic := labels[i]
		byTerm, ok := r.counts[topic]
		if !ok {
			byTerm = make(map[string]float64)
			r.counts[topic] = byTerm
		}
		byTerm[terms[j]] += v
	})
}

// prune drops every term the vectorizer no longer carries, so min-df
// pruning propagates into the topic tables.
func (r *representation) prune(terms []string) {
	live := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		live[t] = struct{}{}
	}
	for topic, byTerm := range r.counts {
		for t := range byTerm {
			if _, ok := live[t]; !ok {
				delete(byTerm, t)
			}
		}
		if len(byTerm) == 0 {
			delete(r.counts, topic)
		}
	}
}

// weightedTerm pairs a term with its class-based TF-IDF weight.
type weightedTerm struct {
	Term   string
	Weight float64
}

// topWords ranks a topic's terms by class-based TF-IDF:
//
//	w(t, c) = tf(t, c) * log(1 + A / f(t))
//
// where tf(t,c) is the term's accumulated count within the topic, f(t) its
// count across all topics, and A the average accumulated count per topic.
func (r *representation) topWords(topic, n int) []weightedTerm {
	byTerm, ok := r.counts[topic]
	if !ok || n <= 0 {
		return nil
	}

	total := make(map[string]float64)
	var sum float64
	for _, terms := range r.counts {
		for t, v := range terms {
			total[t] += v
			sum += v
		}
	}
	avg := sum / float64(len(r.counts))

	ranked := make([]weightedTerm, 0, len(byTerm))
	for t, tf := range byTerm {
		if tf <= 0 {
			continue
		}
		ranked = append(ranked, weightedTerm{
			Term:   t,
			Weight: tf * math.Log(1+avg/total[t]),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Term < ranked[j].Term
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// topics lists every topic holding at least one term, sorted ascending.
func (r *representation) topics() []int {
	out := make([]int, 0, len(r.counts))
	for t := range r.counts {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}
