// Package topic provides a topic model assembled from pluggable sub-models,
// with support for both one-shot and online (per-batch incremental) training.
//
// # Reading Guide
//
// Start with these three files to understand the training pipeline:
//   - submodel.go: the Embedder / Reducer / Clusterer extension points
//   - model.go: Fit / PartialFit orchestration and training-mode exclusivity
//   - representation.go: class-based TF-IDF topic representations
//
// # Architecture
//
// The topic package owns the interfaces and the bookkeeping; implementations
// live in sub-packages:
//   - topic/vectorize/: online bag-of-words vectorizer (decay, min-df pruning)
//   - topic/embed/: document embedders (word2vec mean pooling, pretrained tables)
//   - topic/reduce/: dimensionality reduction (truncated SVD, passthrough)
//   - topic/cluster/: clusterers (k-means with incremental centroid updates)
//
// Sub-packages register default constructors via init() functions that set
// package-level factory variables (NewEmbedderFunc, NewReducerFunc,
// NewClustererFunc), so topic never imports its own implementations.
//
// # Training modes
//
// Fit trains in one shot; PartialFit consumes successive document batches and
// keeps topic state fresh by decaying accumulated term counts. The two calls
// maintain internal state differently and are mutually exclusive on a single
// Model instance: whichever kind arrives second returns ErrMixedTraining.
package topic
