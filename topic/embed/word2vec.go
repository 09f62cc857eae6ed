// Package embed provides document embedders: dense row vectors produced by
// mean pooling per-word embeddings, either trained in-process with wego's
// word2vec or supplied as a pretrained table.
package embed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Word2VecConfig groups training parameters for NewWord2Vec. Zero fields
// fall back to values that work on small corpora.
type Word2VecConfig struct {
	Dim        int // embedding width (default 64)
	Window     int // context window (default 8)
	Iter       int // training iterations (default 15)
	MinCount   int // words rarer than this get no vector (default 2)
	Goroutines int // training parallelism (default 4)
}

func (c Word2VecConfig) withDefaults() Word2VecConfig {
	if c.Dim == 0 {
		c.Dim = 64
	}
	if c.Window == 0 {
		c.Window = 8
	}
	if c.Iter == 0 {
		c.Iter = 15
	}
	if c.MinCount == 0 {
		c.MinCount = 2
	}
	if c.Goroutines == 0 {
		c.Goroutines = 4
	}
	return c
}

// Word2Vec embeds documents by mean-pooling per-word vectors. The word
// vectors are trained with wego's skip-gram word2vec on the first Embed
// call's corpus and reused afterwards; documents with no known words map
// to the zero vector.
type Word2Vec struct {
	cfg     Word2VecConfig
	vectors map[string][]float64
	dim     int
}

func NewWord2Vec(cfg Word2VecConfig) *Word2Vec {
	return &Word2Vec{cfg: cfg.withDefaults()}
}

// NewPretrained wraps an existing word-vector table. All vectors must
// share one width.
func NewPretrained(vectors map[string][]float64) (*Word2Vec, error) {
	if len(vectors) == 0 {
		return nil, errors.New("pretrained vector table is empty")
	}
	dim := 0
	for w, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim || dim == 0 {
			return nil, fmt.Errorf("vector for %q has width %d, want %d", w, len(v), dim)
		}
	}
	return &Word2Vec{vectors: vectors, dim: dim}, nil
}

// Embed returns a (len(docs) x dim) matrix of mean-pooled word vectors.
func (w *Word2Vec) Embed(docs []string) (*mat.Dense, error) {
	if len(docs) == 0 {
		return nil, errors.New("embed requires at least one document")
	}
	if w.vectors == nil {
		if err := w.train(docs); err != nil {
			return nil, err
		}
	}

	out := mat.NewDense(len(docs), w.dim, nil)
	row := make([]float64, w.dim)
	for i, doc := range docs {
		for j := range row {
			row[j] = 0
		}
		known := 0
		for _, word := range strings.Fields(strings.ToLower(doc)) {
			vec, ok := w.vectors[word]
			if !ok {
				continue
			}
			known++
			for j, x := range vec {
				row[j] += x
			}
		}
		if known > 0 {
			for j := range row {
				row[j] /= float64(known)
			}
		}
		out.SetRow(i, row)
	}
	return out, nil
}

// train fits a skip-gram word2vec model over the batch and keeps the
// resulting word vectors. wego trains from an io.ReadSeeker over plain
// whitespace-separated text, and hands the vectors back through its
// save/load round trip.
func (w *Word2Vec) train(docs []string) error {
	opts := word2vec.Options{
		BatchSize:          1024,
		Dim:                w.cfg.Dim,
		DocInMemory:        true,
		Goroutines:         w.cfg.Goroutines,
		Initlr:             0.025,
		Iter:               w.cfg.Iter,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           w.cfg.MinCount,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            true,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             w.cfg.Window,
	}

	m, err := word2vec.NewForOptions(opts)
	if err != nil {
		return fmt.Errorf("initializing word2vec: %w", err)
	}

	corpus := bytes.NewReader([]byte(strings.ToLower(strings.Join(docs, "\n"))))
	if err := m.Train(corpus); err != nil {
		return fmt.Errorf("training word2vec: %w", err)
	}

	var buf bytes.Buffer
	if err := m.Save(io.Writer(&buf), vector.Agg); err != nil {
		return fmt.Errorf("exporting word vectors: %w", err)
	}
	embs, err := embedding.Load(io.Reader(&buf))
	if err != nil {
		return fmt.Errorf("loading word vectors: %w", err)
	}

	w.vectors = make(map[string][]float64, len(embs))
	for _, e := range embs {
		w.vectors[e.Word] = e.Vector
		w.dim = len(e.Vector)
	}
	if w.dim == 0 {
		return errors.New("word2vec training produced no vectors")
	}
	logrus.Debugf("trained word2vec on %d documents: %d words, dim=%d", len(docs), len(w.vectors), w.dim)
	return nil
}
