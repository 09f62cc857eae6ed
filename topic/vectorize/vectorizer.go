// Package vectorize implements an online bag-of-words vectorizer: a
// vocabulary of accumulated term frequencies that grows with every batch,
// decays previously seen counts so recent data dominates, and prunes terms
// whose accumulated frequency falls below a configured floor.
package vectorize

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/sirupsen/logrus"
)

// Config groups vectorizer parameters for New.
type Config struct {
	Decay       float64    // fraction of accumulated counts shed per PartialFit, in [0, 1)
	DeleteMinDF float64    // accumulated-frequency floor; entries below it are dropped after each PartialFit (0 = never prune)
	Tokenizer   *Tokenizer // nil = NewTokenizer(TokenizerConfig{})
}

// OnlineCountVectorizer accumulates decayed term frequencies across
// successive PartialFit batches and emits per-batch document-term matrices
// over the surviving vocabulary.
type OnlineCountVectorizer struct {
	tok         *Tokenizer
	decay       float64
	deleteMinDF float64

	index   map[string]int // term -> column
	terms   []string       // column -> term
	totals  []float64      // column -> accumulated (decayed) frequency
	batches int
}

// New validates cfg and returns an empty vectorizer.
func New(cfg Config) (*OnlineCountVectorizer, error) {
	if cfg.Decay < 0 || cfg.Decay >= 1 {
		return nil, fmt.Errorf("decay must be in [0, 1), got %f", cfg.Decay)
	}
	if cfg.DeleteMinDF < 0 {
		return nil, fmt.Errorf("delete_min_df must be non-negative, got %f", cfg.DeleteMinDF)
	}
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = NewTokenizer(TokenizerConfig{})
	}
	return &OnlineCountVectorizer{
		tok:         cfg.Tokenizer,
		decay:       cfg.Decay,
		deleteMinDF: cfg.DeleteMinDF,
		index:       make(map[string]int),
	}, nil
}

// Restore rebuilds a vectorizer from a previously exported vocabulary.
// Column order is the sorted term order, so restored instances are
// deterministic regardless of map iteration.
func Restore(cfg Config, vocabulary map[string]float64, batches int) (*OnlineCountVectorizer, error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	terms := make([]string, 0, len(vocabulary))
	for t := range vocabulary {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	for _, t := range terms {
		v.index[t] = len(v.terms)
		v.terms = append(v.terms, t)
		v.totals = append(v.totals, vocabulary[t])
	}
	v.batches = batches
	return v, nil
}

// PartialFit folds one document batch into the vocabulary and returns the
// batch's document-term matrix over the post-pruning vocabulary. The update
// order is: grow vocabulary, scale all accumulated totals by (1-decay), add
// the batch's counts, then drop every entry whose total fell below
// DeleteMinDF. An empty batch, or a batch that tokenizes to nothing,
// returns a nil matrix and leaves all state untouched.
func (v *OnlineCountVectorizer) PartialFit(docs []string) (*sparse.CSR, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	tokenized := make([][]string, len(docs))
	hasTokens := false
	for i, d := range docs {
		tokenized[i] = v.tok.Tokenize(d)
		if len(tokenized[i]) > 0 {
			hasTokens = true
		}
	}
	if !hasTokens {
		return nil, nil
	}

	// Grow the vocabulary with this batch's unseen terms.
	for _, toks := range tokenized {
		for _, t := range toks {
			if _, ok := v.index[t]; !ok {
				v.index[t] = len(v.terms)
				v.terms = append(v.terms, t)
				v.totals = append(v.totals, 0)
			}
		}
	}

	// Decay previously accumulated frequencies so recent batches dominate.
	if v.decay > 0 && v.batches > 0 {
		keep := 1 - v.decay
		for i := range v.totals {
			v.totals[i] *= keep
		}
	}

	for _, toks := range tokenized {
		for _, t := range toks {
			v.totals[v.index[t]]++
		}
	}
	v.batches++

	if v.deleteMinDF > 0 {
		if dropped := v.pruneBelow(v.deleteMinDF); dropped > 0 {
			logrus.Debugf("pruned %d vocabulary entries below min-df %.3f, %d remain",
				dropped, v.deleteMinDF, len(v.terms))
		}
	}

	return v.matrix(tokenized), nil
}

// Transform builds a document-term matrix over the current vocabulary
// without updating any state. Terms outside the vocabulary are ignored.
func (v *OnlineCountVectorizer) Transform(docs []string) (*sparse.CSR, error) {
	if v.batches == 0 {
		return nil, fmt.Errorf("vectorizer has not been fitted")
	}
	if len(docs) == 0 {
		return nil, nil
	}
	tokenized := make([][]string, len(docs))
	for i, d := range docs {
		tokenized[i] = v.tok.Tokenize(d)
	}
	return v.matrix(tokenized), nil
}

// pruneBelow removes every vocabulary entry with an accumulated total below
// floor, compacting the column indices, and reports how many were dropped.
func (v *OnlineCountVectorizer) pruneBelow(floor float64) int {
	kept := 0
	for i, t := range v.terms {
		if v.totals[i] < floor {
			delete(v.index, t)
			continue
		}
		v.terms[kept] = t
		v.totals[kept] = v.totals[i]
		v.index[t] = kept
		kept++
	}
	dropped := len(v.terms) - kept
	v.terms = v.terms[:kept]
	v.totals = v.totals[:kept]
	return dropped
}

// matrix counts tokenized docs over the current vocabulary as sparse CSR.
func (v *OnlineCountVectorizer) matrix(tokenized [][]string) *sparse.CSR {
	if len(v.terms) == 0 {
		return nil
	}
	dok := sparse.NewDOK(len(tokenized), len(v.terms))
	for i, toks := range tokenized {
		for _, t := range toks {
			if j, ok := v.index[t]; ok {
				dok.Set(i, j, dok.At(i, j)+1)
			}
		}
	}
	return dok.ToCSR()
}

// VocabSize reports the number of live vocabulary entries.
func (v *OnlineCountVectorizer) VocabSize() int { return len(v.terms) }

// Terms returns the vocabulary in column order. The slice is shared; do
// not mutate it.
func (v *OnlineCountVectorizer) Terms() []string { return v.terms }

// Total reports a term's accumulated (decayed) frequency, 0 if unknown.
func (v *OnlineCountVectorizer) Total(term string) float64 {
	if j, ok := v.index[term]; ok {
		return v.totals[j]
	}
	return 0
}

// Totals exports the vocabulary with accumulated frequencies, for
// persistence and inspection.
func (v *OnlineCountVectorizer) Totals() map[string]float64 {
	out := make(map[string]float64, len(v.terms))
	for j, t := range v.terms {
		out[t] = v.totals[j]
	}
	return out
}

// Batches reports how many non-empty batches have been folded in.
func (v *OnlineCountVectorizer) Batches() int { return v.batches }
