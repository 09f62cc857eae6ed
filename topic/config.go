package topic

import "fmt"

// Options groups model-level parameters for New.
type Options struct {
	NumTopics   int      // clusters requested from the default clusterer (default 10)
	TopWords    int      // words kept per topic representation (default 10)
	Decay       float64  // fraction of accumulated counts shed per incremental update, in [0, 1)
	DeleteMinDF float64  // accumulated-frequency floor below which vocabulary entries are dropped (0 = never prune)
	ReduceDims  int      // target dimensionality for the default reducer (default 5)
	Seed        int64    // seed for the default sub-models
	StopWords   []string // extra stopwords merged into the tokenizer's default set
	NGramMax    int      // largest n-gram emitted by the tokenizer (default 1 = unigrams only)
}

const (
	defaultNumTopics  = 10
	defaultTopWords   = 10
	defaultReduceDims = 5
	defaultNGramMax   = 1
)

// withDefaults fills zero-valued fields with package defaults.
func (o Options) withDefaults() Options {
	if o.NumTopics == 0 {
		o.NumTopics = defaultNumTopics
	}
	if o.TopWords == 0 {
		o.TopWords = defaultTopWords
	}
	if o.ReduceDims == 0 {
		o.ReduceDims = defaultReduceDims
	}
	if o.NGramMax == 0 {
		o.NGramMax = defaultNGramMax
	}
	return o
}

// Validate rejects parameter combinations the pipeline cannot honor.
func (o Options) Validate() error {
	if o.NumTopics < 0 {
		return fmt.Errorf("num_topics must be non-negative, got %d", o.NumTopics)
	}
	if o.Decay < 0 || o.Decay >= 1 {
		return fmt.Errorf("decay must be in [0, 1), got %f", o.Decay)
	}
	if o.DeleteMinDF < 0 {
		return fmt.Errorf("delete_min_df must be non-negative, got %f", o.DeleteMinDF)
	}
	if o.ReduceDims < 0 {
		return fmt.Errorf("reduce_dims must be non-negative, got %d", o.ReduceDims)
	}
	return nil
}
