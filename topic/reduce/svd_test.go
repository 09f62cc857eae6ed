package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func embeddings() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		1.0, 0.1, 0.0,
		0.9, 0.0, 0.1,
		0.0, 1.0, 0.9,
		0.1, 0.9, 1.0,
	})
}

func TestSVD_FitTransformShrinksWidth(t *testing.T) {
	// GIVEN a 3-dimensional embedding batch
	s := NewSVD(2)
	require.NoError(t, s.Fit(embeddings()))

	// WHEN transforming
	y, err := s.Transform(embeddings())
	require.NoError(t, err)

	// THEN rows are preserved and width is k
	rows, cols := y.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)
}

func TestSVD_TransformBeforeFitFails(t *testing.T) {
	s := NewSVD(2)
	_, err := s.Transform(embeddings())
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestSVD_RejectsImpossibleTarget(t *testing.T) {
	s := NewSVD(5)
	assert.Error(t, s.Fit(embeddings()), "cannot request more dimensions than the input has")
}

func TestSVD_PartialFitFreezesBasis(t *testing.T) {
	// GIVEN a basis learned from the first batch
	s := NewSVD(2)
	require.NoError(t, s.PartialFit(embeddings()))
	first, err := s.Transform(embeddings())
	require.NoError(t, err)

	// WHEN a later batch arrives
	later := mat.NewDense(4, 3, []float64{
		0.5, 0.5, 0.5,
		0.2, 0.8, 0.1,
		0.9, 0.1, 0.3,
		0.3, 0.3, 0.9,
	})
	require.NoError(t, s.PartialFit(later))

	// THEN earlier points still project identically
	second, err := s.Transform(embeddings())
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(first, second, 1e-12),
		"frozen basis must keep batches comparable in the reduced space")
}

func TestPassthrough_IdentityAfterFit(t *testing.T) {
	p := NewPassthrough()
	_, err := p.Transform(embeddings())
	assert.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, p.PartialFit(embeddings()))
	y, err := p.Transform(embeddings())
	require.NoError(t, err)
	assert.True(t, mat.Equal(embeddings(), y))
}
