package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// twoBlobs holds two tight, well-separated groups of points.
func twoBlobs() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		1.0, 1.0,
		1.1, 0.9,
		0.9, 1.1,
		9.0, 9.0,
		9.1, 8.9,
		8.9, 9.1,
	})
}

func TestFit_SeparatesObviousClusters(t *testing.T) {
	// GIVEN two well-separated blobs
	c := NewKMeans(2)

	// WHEN partitioning
	labels, err := c.Fit(twoBlobs())
	require.NoError(t, err)

	// THEN each blob is internally consistent and the blobs differ
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[0], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.Equal(t, labels[3], labels[5])
	assert.NotEqual(t, labels[0], labels[3])
}

func TestFit_TooFewObservations(t *testing.T) {
	c := NewKMeans(3)
	_, err := c.Fit(mat.NewDense(2, 2, []float64{0, 0, 1, 1}))
	assert.Error(t, err)
}

func TestPredict_BeforeFitFails(t *testing.T) {
	c := NewKMeans(2)
	_, err := c.Predict(mat.NewDense(1, 2, []float64{0, 0}))
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestPredict_AssignsNearestCentroid(t *testing.T) {
	// GIVEN fitted centroids
	c := NewKMeans(2)
	labels, err := c.Fit(twoBlobs())
	require.NoError(t, err)

	// WHEN predicting points next to each blob
	got, err := c.Predict(mat.NewDense(2, 2, []float64{
		1.05, 1.0,
		8.95, 9.0,
	}))
	require.NoError(t, err)

	// THEN they inherit the blob's label, and centroids did not move
	assert.Equal(t, labels[0], got[0])
	assert.Equal(t, labels[3], got[1])
}

func TestPartialFit_FirstBatchSeedsCentroids(t *testing.T) {
	c := NewKMeans(2)
	labels, err := c.PartialFit(twoBlobs())
	require.NoError(t, err)
	assert.Len(t, labels, 6)
	assert.Len(t, c.Centers(), 2)
}

func TestPartialFit_RunningMeanMovesCentroid(t *testing.T) {
	// GIVEN seeded centroids
	c := NewKMeans(2)
	labels, err := c.Fit(twoBlobs())
	require.NoError(t, err)
	high := labels[3] // label of the (9,9) blob
	before := c.Centers()[high]

	// WHEN folding in a point beyond that blob
	got, err := c.PartialFit(mat.NewDense(1, 2, []float64{12, 12}))
	require.NoError(t, err)

	// THEN it joins the nearest cluster and drags the centroid outward
	assert.Equal(t, []int{high}, got)
	after := c.Centers()[high]
	assert.Greater(t, after[0], before[0])
	assert.Greater(t, after[1], before[1])
}

func TestCentroidState_RoundTrip(t *testing.T) {
	// GIVEN a fitted clusterer
	fitted := NewKMeans(2)
	labels, err := fitted.Fit(twoBlobs())
	require.NoError(t, err)

	// WHEN exporting its state into a fresh instance
	centers, counts := fitted.CentroidState()
	require.Len(t, centers, 2)
	require.Equal(t, 6, counts[0]+counts[1])
	fresh := NewKMeans(2)
	require.NoError(t, fresh.RestoreCentroidState(centers, counts))

	// THEN the fresh instance predicts with the same label layout
	got, err := fresh.Predict(mat.NewDense(2, 2, []float64{
		1.05, 1.0,
		8.95, 9.0,
	}))
	require.NoError(t, err)
	assert.Equal(t, labels[0], got[0])
	assert.Equal(t, labels[3], got[1])
}

func TestCentroidState_UnfittedExportsNothing(t *testing.T) {
	centers, counts := NewKMeans(2).CentroidState()
	assert.Nil(t, centers)
	assert.Nil(t, counts)
}

func TestRestoreCentroidState_RejectsBadState(t *testing.T) {
	c := NewKMeans(2)
	assert.Error(t, c.RestoreCentroidState(nil, nil))
	assert.Error(t, c.RestoreCentroidState([][]float64{{1, 1}}, []int{1, 2}))
	assert.Error(t, c.RestoreCentroidState([][]float64{{1, 1}, {2}}, []int{1, 2}))
}

func TestPartialFit_WidthMismatch(t *testing.T) {
	c := NewKMeans(2)
	_, err := c.Fit(twoBlobs())
	require.NoError(t, err)

	_, err = c.PartialFit(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.Error(t, err)
}
