package topic

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Rqcker/BERTopic/topic/vectorize"
)

var (
	// ErrMixedTraining is returned when Fit and PartialFit are both called
	// on the same instance. The two calls maintain internal state
	// differently and cannot be interleaved.
	ErrMixedTraining = errors.New("fit and partial-fit are mutually exclusive on one model instance")

	// ErrNotFitted is returned by read-back and inference calls on a model
	// that has seen no training data.
	ErrNotFitted = errors.New("model has not been fitted")
)

func errMissingSubModel(kind, pkg string) error {
	return fmt.Errorf("no %s supplied and no default registered (import %q)", kind, pkg)
}

// trainingMode records which training entry point owns this instance.
type trainingMode int

const (
	modeUnset  trainingMode = iota
	modeBatch               // Fit
	modeOnline              // PartialFit
)

func (m trainingMode) String() string {
	switch m {
	case modeBatch:
		return "batch"
	case modeOnline:
		return "online"
	default:
		return "unset"
	}
}

// Model is a topic model assembled from an embedder, a dimensionality
// reducer and a clusterer, plus an in-package online vectorizer feeding the
// class-based TF-IDF topic representations.
type Model struct {
	opts Options
	subs SubModels

	vectorizer *vectorize.OnlineCountVectorizer
	rep        *representation

	mode    trainingMode
	batches int

	// latest holds the topic assignment of each document in the most
	// recent training batch, in input order.
	latest []int
	// sizes accumulates document counts per topic across all batches.
	sizes map[int]int
}

// New builds a Model from opts and subs. Nil SubModels fields fall back to
// the constructors registered by the topic/embed, topic/reduce and
// topic/cluster sub-packages.
func New(opts Options, subs SubModels) (*Model, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	subs, err := subs.withDefaults(opts)
	if err != nil {
		return nil, err
	}
	v, err := newVectorizer(opts)
	if err != nil {
		return nil, err
	}
	return &Model{
		opts:       opts,
		subs:       subs,
		vectorizer: v,
		rep:        newRepresentation(),
		sizes:      make(map[int]int),
	}, nil
}

func newVectorizer(opts Options) (*vectorize.OnlineCountVectorizer, error) {
	return vectorize.New(vectorize.Config{
		Decay:       opts.Decay,
		DeleteMinDF: opts.DeleteMinDF,
		Tokenizer: vectorize.NewTokenizer(vectorize.TokenizerConfig{
			StopWords: opts.StopWords,
			NGramMax:  opts.NGramMax,
		}),
	})
}

// Fit trains the model in one shot: embed, reduce, cluster, vectorize,
// then build the topic representations. Calling Fit again retrains from
// scratch; calling it after PartialFit returns ErrMixedTraining.
func (m *Model) Fit(docs []string) error {
	if m.mode == modeOnline {
		return ErrMixedTraining
	}
	if len(docs) == 0 {
		return errors.New("fit requires at least one document")
	}

	// Refits start clean.
	v, err := newVectorizer(m.opts)
	if err != nil {
		return err
	}
	m.vectorizer = v
	m.rep = newRepresentation()
	m.sizes = make(map[int]int)
	m.latest = nil
	m.batches = 0

	labels, err := m.train(docs, false)
	if err != nil {
		return err
	}
	m.mode = modeBatch
	m.finishBatch(docs, labels)
	logrus.Infof("fit complete: %d documents, %d topics, vocabulary=%d",
		len(docs), len(m.sizes), m.vectorizer.VocabSize())
	return nil
}

// PartialFit consumes one document batch and updates the model in place:
// sub-models receive their own partial-fit calls, the vectorizer applies
// decay and pruning, and the topic representations are refreshed. An empty
// batch is a no-op. Calling PartialFit after Fit returns ErrMixedTraining.
func (m *Model) PartialFit(docs []string) error {
	if m.mode == modeBatch {
		return ErrMixedTraining
	}
	if len(docs) == 0 {
		return nil
	}
	labels, err := m.train(docs, true)
	if err != nil {
		return err
	}
	m.mode = modeOnline
	m.finishBatch(docs, labels)
	logrus.Debugf("partial fit batch %d: %d documents, %d topics, vocabulary=%d",
		m.batches, len(docs), len(m.sizes), m.vectorizer.VocabSize())
	return nil
}

// train runs the shared pipeline and returns the batch's topic labels.
func (m *Model) train(docs []string, online bool) ([]int, error) {
	if err := m.subs.check(); err != nil {
		return nil, err
	}
	emb, err := m.subs.Embedder.Embed(docs)
	if err != nil {
		return nil, fmt.Errorf("embedding batch: %w", err)
	}

	if online {
		err = m.subs.Reducer.PartialFit(emb)
	} else {
		err = m.subs.Reducer.Fit(emb)
	}
	if err != nil {
		return nil, fmt.Errorf("fitting reducer: %w", err)
	}
	red, err := m.subs.Reducer.Transform(emb)
	if err != nil {
		return nil, fmt.Errorf("reducing embeddings: %w", err)
	}

	var labels []int
	if online {
		labels, err = m.subs.Clusterer.PartialFit(red)
	} else {
		labels, err = m.subs.Clusterer.Fit(red)
	}
	if err != nil {
		return nil, fmt.Errorf("clustering batch: %w", err)
	}
	if len(labels) != len(docs) {
		return nil, fmt.Errorf("clusterer returned %d labels for %d documents", len(labels), len(docs))
	}

	dtm, err := m.vectorizer.PartialFit(docs)
	if err != nil {
		return nil, fmt.Errorf("vectorizing batch: %w", err)
	}
	if dtm != nil {
		m.rep.update(dtm, m.vectorizer.Terms(), labels, m.opts.Decay)
		m.rep.prune(m.vectorizer.Terms())
	}
	return labels, nil
}

func (m *Model) finishBatch(docs []string, labels []int) {
	m.batches++
	m.latest = labels
	for _, l := range labels {
		m.sizes[l]++
	}
}

// Transform assigns topics to unseen documents without updating any model
// state. It requires a fitted model.
func (m *Model) Transform(docs []string) ([]int, error) {
	if m.mode == modeUnset {
		return nil, ErrNotFitted
	}
	if err := m.subs.check(); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	emb, err := m.subs.Embedder.Embed(docs)
	if err != nil {
		return nil, fmt.Errorf("embedding documents: %w", err)
	}
	red, err := m.subs.Reducer.Transform(emb)
	if err != nil {
		return nil, fmt.Errorf("reducing embeddings: %w", err)
	}
	labels, err := m.subs.Clusterer.Predict(red)
	if err != nil {
		return nil, fmt.Errorf("predicting topics: %w", err)
	}
	return labels, nil
}

// Topics returns the topic assignment of each document in the most recent
// training batch, in input order. After Fit that is the whole training set;
// after PartialFit it covers only the latest batch.
func (m *Model) Topics() []int {
	out := make([]int, len(m.latest))
	copy(out, m.latest)
	return out
}

// Batches reports how many training batches the model has consumed.
func (m *Model) Batches() int { return m.batches }
