// Package cluster provides clusterer adapters for the topic model. Batch
// partitioning is delegated to muesli/kmeans; the incremental contract is
// served by nearest-centroid assignment with a running-mean centroid
// update, the minimal glue an online pipeline needs.
package cluster

import (
	"errors"
	"fmt"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Predict before any (Partial)Fit call.
var ErrNotFitted = errors.New("clusterer has not been fitted")

// KMeans maintains k centroids. Fit partitions a full training set via
// muesli/kmeans; PartialFit seeds the centroids from its first batch the
// same way and then folds later batches in with running-mean updates.
type KMeans struct {
	k       int
	centers [][]float64
	counts  []int
}

func NewKMeans(k int) *KMeans {
	return &KMeans{k: k}
}

// Fit partitions x (documents as rows) into k clusters and returns each
// row's cluster label.
func (c *KMeans) Fit(x *mat.Dense) ([]int, error) {
	rows, cols := x.Dims()
	if rows < c.k {
		return nil, fmt.Errorf("cannot form %d clusters from %d observations", c.k, rows)
	}

	obs := make(clusters.Observations, rows)
	for i := 0; i < rows; i++ {
		obs[i] = clusters.Coordinates(x.RawRowView(i))
	}
	km := kmeans.New()
	parts, err := km.Partition(obs, c.k)
	if err != nil {
		return nil, fmt.Errorf("k-means partition: %w", err)
	}

	c.centers = make([][]float64, len(parts))
	c.counts = make([]int, len(parts))
	for i, p := range parts {
		center := make([]float64, cols)
		copy(center, p.Center)
		c.centers[i] = center
		c.counts[i] = len(p.Observations)
	}
	return c.assign(x, false)
}

// PartialFit folds one batch into the centroids and returns its labels.
// The first batch seeds the centroids via Fit.
func (c *KMeans) PartialFit(x *mat.Dense) ([]int, error) {
	if c.centers == nil {
		return c.Fit(x)
	}
	return c.assign(x, true)
}

// Predict labels rows of x by their nearest centroid, without updates.
func (c *KMeans) Predict(x *mat.Dense) ([]int, error) {
	if c.centers == nil {
		return nil, ErrNotFitted
	}
	return c.assign(x, false)
}

// NumClusters reports the number of centroids maintained.
func (c *KMeans) NumClusters() int { return c.k }

// Centers exposes copies of the current centroids, largest-index last.
func (c *KMeans) Centers() [][]float64 {
	out := make([][]float64, len(c.centers))
	for i, ctr := range c.centers {
		cp := make([]float64, len(ctr))
		copy(cp, ctr)
		out[i] = cp
	}
	return out
}

// CentroidState exports copies of the centroids and their observation
// counts, indexed by cluster label. An unfitted clusterer exports nothing.
func (c *KMeans) CentroidState() ([][]float64, []int) {
	if c.centers == nil {
		return nil, nil
	}
	counts := make([]int, len(c.counts))
	copy(counts, c.counts)
	return c.Centers(), counts
}

// RestoreCentroidState replaces the clusterer's state with a previously
// exported one, so Predict and PartialFit resume where the snapshot left
// off. The number of centers overrides k.
func (c *KMeans) RestoreCentroidState(centers [][]float64, counts []int) error {
	if len(centers) == 0 {
		return errors.New("cannot restore empty centroid state")
	}
	if len(centers) != len(counts) {
		return fmt.Errorf("got %d centers but %d counts", len(centers), len(counts))
	}
	width := len(centers[0])
	restored := make([][]float64, len(centers))
	for i, ctr := range centers {
		if len(ctr) != width {
			return fmt.Errorf("center %d has width %d, want %d", i, len(ctr), width)
		}
		cp := make([]float64, width)
		copy(cp, ctr)
		restored[i] = cp
	}
	c.centers = restored
	c.counts = make([]int, len(counts))
	copy(c.counts, counts)
	c.k = len(restored)
	return nil
}

// assign labels each row with its nearest centroid; when update is set the
// matched centroid drifts toward the point by the running-mean rule
// center += (p - center) / n.
func (c *KMeans) assign(x *mat.Dense, update bool) ([]int, error) {
	rows, cols := x.Dims()
	if len(c.centers) > 0 && cols != len(c.centers[0]) {
		return nil, fmt.Errorf("observation width %d does not match centroid width %d", cols, len(c.centers[0]))
	}
	labels := make([]int, rows)
	for i := 0; i < rows; i++ {
		p := x.RawRowView(i)
		best, bestDist := 0, floats.Distance(p, c.centers[0], 2)
		for j := 1; j < len(c.centers); j++ {
			if d := floats.Distance(p, c.centers[j], 2); d < bestDist {
				best, bestDist = j, d
			}
		}
		labels[i] = best
		if update {
			c.counts[best]++
			n := float64(c.counts[best])
			center := c.centers[best]
			for d := range center {
				center[d] += (p[d] - center[d]) / n
			}
		}
	}
	return labels, nil
}
