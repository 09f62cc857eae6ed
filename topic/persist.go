package topic

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rqcker/BERTopic/topic/vectorize"
)

// snapshot is the on-disk model state: everything needed to read topics
// back and to resume online training once sub-models are re-attached.
type snapshot struct {
	Mode        string                     `json:"mode"`
	Batches     int                        `json:"batches"`
	Latest      []int                      `json:"latest_topics"`
	Sizes       map[int]int                `json:"topic_sizes"`
	Options     Options                    `json:"options"`
	Vocabulary  map[string]float64         `json:"vocabulary"`
	TopicCounts map[int]map[string]float64 `json:"topic_counts"`

	// Centroid state of a CheckpointableClusterer, indexed by cluster
	// label. Absent when the clusterer does not expose its state.
	Centroids      [][]float64 `json:"centroids,omitempty"`
	CentroidCounts []int       `json:"centroid_counts,omitempty"`
}

// Save writes a gzip-compressed JSON snapshot of the model's state. The
// sub-models themselves are not serialized; Load re-attaches fresh ones.
func (m *Model) Save(path string) error {
	snap := snapshot{
		Mode:        m.mode.String(),
		Batches:     m.batches,
		Latest:      m.latest,
		Sizes:       m.sizes,
		Options:     m.opts,
		Vocabulary:  m.vectorizer.Totals(),
		TopicCounts: m.rep.counts,
	}
	if cc, ok := m.subs.Clusterer.(CheckpointableClusterer); ok {
		snap.Centroids, snap.CentroidCounts = cc.CentroidState()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	return f.Close()
}

// Load restores a model from a snapshot written by Save. subs may be the
// zero value when only read-back (Topics, TopicInfo, TopWords) is needed;
// training and Transform calls on such a model fail until the registered
// default sub-models are importable.
func Load(path string, subs SubModels) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot header: %w", err)
	}
	defer zr.Close()

	var snap snapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	opts := snap.Options.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot options: %w", err)
	}

	m := &Model{
		opts:    opts,
		batches: snap.Batches,
		latest:  snap.Latest,
		sizes:   snap.Sizes,
		rep:     newRepresentation(),
	}
	if m.sizes == nil {
		m.sizes = make(map[int]int)
	}
	if snap.TopicCounts != nil {
		m.rep.counts = snap.TopicCounts
	}

	switch snap.Mode {
	case "batch":
		m.mode = modeBatch
	case "online":
		m.mode = modeOnline
	case "unset", "":
		m.mode = modeUnset
	default:
		return nil, fmt.Errorf("unknown training mode %q in snapshot", snap.Mode)
	}

	m.vectorizer, err = vectorize.Restore(vectorize.Config{
		Decay:       opts.Decay,
		DeleteMinDF: opts.DeleteMinDF,
		Tokenizer: vectorize.NewTokenizer(vectorize.TokenizerConfig{
			StopWords: opts.StopWords,
			NGramMax:  opts.NGramMax,
		}),
	}, snap.Vocabulary, snap.Batches)
	if err != nil {
		return nil, fmt.Errorf("restoring vectorizer: %w", err)
	}

	// Sub-models only matter if the caller intends to keep training or
	// transform; defaults may be unavailable for pure read-back, so a
	// missing registration is not an error here.
	if filled, err := subs.withDefaults(opts); err == nil {
		m.subs = filled
	} else {
		m.subs = subs
	}

	// Rehydrate centroids so Predict works and resumed PartialFit keeps
	// its labels aligned with the restored topic tables. Read-back-only
	// loads carry no clusterer and skip this.
	if len(snap.Centroids) > 0 && m.subs.Clusterer != nil {
		cc, ok := m.subs.Clusterer.(CheckpointableClusterer)
		if !ok {
			return nil, fmt.Errorf("snapshot carries %d centroids but the attached clusterer cannot restore them", len(snap.Centroids))
		}
		if err := cc.RestoreCentroidState(snap.Centroids, snap.CentroidCounts); err != nil {
			return nil, fmt.Errorf("restoring centroid state: %w", err)
		}
	}
	return m, nil
}
