// Package reduce provides dimensionality-reduction adapters for topic
// model embeddings. The heavy lifting is delegated to james-bowman/nlp's
// TruncatedSVD; this package only adapts row-major document matrices onto
// nlp's column-major convention.
package reduce

import (
	"errors"
	"fmt"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Transform before any (Partial)Fit call.
var ErrNotFitted = errors.New("reducer has not been fitted")

// SVD projects embeddings onto their top-k singular directions. PartialFit
// learns the basis from the first batch and keeps it frozen afterwards, so
// points from successive batches stay comparable in the reduced space.
type SVD struct {
	k      int
	svd    *nlp.TruncatedSVD
	fitted bool
}

// NewSVD returns a reducer targeting k output dimensions.
func NewSVD(k int) *SVD {
	return &SVD{k: k, svd: nlp.NewTruncatedSVD(k)}
}

// Fit learns the projection basis from x (documents as rows).
func (s *SVD) Fit(x *mat.Dense) error {
	rows, cols := x.Dims()
	if s.k > cols || s.k > rows {
		return fmt.Errorf("cannot reduce %dx%d matrix to %d dimensions", rows, cols, s.k)
	}
	// nlp treats columns as samples.
	if _, err := s.svd.FitTransform(x.T()); err != nil {
		return fmt.Errorf("truncated SVD fit: %w", err)
	}
	s.fitted = true
	return nil
}

// PartialFit fits the basis on the first batch; later batches reuse it.
func (s *SVD) PartialFit(x *mat.Dense) error {
	if s.fitted {
		return nil
	}
	return s.Fit(x)
}

// Transform projects rows of x into the reduced space.
func (s *SVD) Transform(x *mat.Dense) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	y, err := s.svd.Transform(x.T())
	if err != nil {
		return nil, fmt.Errorf("truncated SVD transform: %w", err)
	}
	return mat.DenseCopyOf(y.T()), nil
}
