package topic

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Embedder turns a batch of documents into one dense row vector each.
type Embedder interface {
	// Embed returns a (len(docs) x dim) matrix. Dim must stay constant
	// across calls on the same instance.
	Embed(docs []string) (*mat.Dense, error)
}

// Reducer projects embeddings into a lower-dimensional space.
type Reducer interface {
	// Fit learns the projection from a full training set.
	Fit(x *mat.Dense) error
	// PartialFit updates the projection from one batch. Implementations
	// that cannot update incrementally may fit once and keep the basis.
	PartialFit(x *mat.Dense) error
	// Transform projects rows of x. Fails before the first (Partial)Fit.
	Transform(x *mat.Dense) (*mat.Dense, error)
}

// Clusterer assigns one topic label per row vector. Labels are small
// non-negative integers; -1 is reserved for outliers and is a legal
// return value of implementations that support it.
type Clusterer interface {
	// Fit partitions a full training set and returns its labels.
	Fit(x *mat.Dense) ([]int, error)
	// PartialFit updates cluster state from one batch and returns the
	// batch's labels.
	PartialFit(x *mat.Dense) ([]int, error)
	// Predict labels rows of x without updating cluster state.
	Predict(x *mat.Dense) ([]int, error)
	// NumClusters reports the number of clusters maintained.
	NumClusters() int
}

// CheckpointableClusterer is implemented by clusterers whose state is a
// set of centroids. Save writes that state into the model snapshot and
// Load rehydrates it, so a restored model can Predict and resume
// PartialFit with topic ids aligned to the restored topic tables.
type CheckpointableClusterer interface {
	Clusterer
	// CentroidState exports copies of the centroids and their
	// observation counts, indexed by cluster label.
	CentroidState() (centers [][]float64, counts []int)
	// RestoreCentroidState replaces the clusterer's state with a
	// previously exported one.
	RestoreCentroidState(centers [][]float64, counts []int) error
}

// SubModels bundles the three sub-models a Model is constructed with.
// Nil fields are filled from the registered defaults, so callers that
// blank-import topic/embed, topic/reduce and topic/cluster may pass the
// zero value.
type SubModels struct {
	Embedder  Embedder
	Reducer   Reducer
	Clusterer Clusterer
}

// Default constructors, set by sub-package init() functions. This breaks
// the import cycle between topic (interface owner) and its implementation
// sub-packages: production code imports the sub-packages directly, and
// New falls back to these when a SubModels field is nil.
var (
	NewEmbedderFunc  func(seed int64) Embedder
	NewReducerFunc   func(dims int) Reducer
	NewClustererFunc func(k int, seed int64) Clusterer
)

// check rejects a bundle with missing sub-models. Loaded snapshots may
// legitimately carry none when only read-back is wanted.
func (s SubModels) check() error {
	if s.Embedder == nil || s.Reducer == nil || s.Clusterer == nil {
		return errors.New("model has no sub-models attached")
	}
	return nil
}

func (s SubModels) withDefaults(opts Options) (SubModels, error) {
	if s.Embedder == nil {
		if NewEmbedderFunc == nil {
			return s, errMissingSubModel("embedder", "topic/embed")
		}
		s.Embedder = NewEmbedderFunc(opts.Seed)
	}
	if s.Reducer == nil {
		if NewReducerFunc == nil {
			return s, errMissingSubModel("reducer", "topic/reduce")
		}
		s.Reducer = NewReducerFunc(opts.ReduceDims)
	}
	if s.Clusterer == nil {
		if NewClustererFunc == nil {
			return s, errMissingSubModel("clusterer", "topic/cluster")
		}
		s.Clusterer = NewClustererFunc(opts.NumTopics, opts.Seed)
	}
	return s, nil
}
