package reduce

import "gonum.org/v1/gonum/mat"

// Passthrough is the identity reducer: embeddings are clustered as-is.
// Useful when the embedder is already low-dimensional, and in tests.
type Passthrough struct {
	fitted bool
}

func NewPassthrough() *Passthrough { return &Passthrough{} }

func (p *Passthrough) Fit(x *mat.Dense) error { p.fitted = true; return nil }

func (p *Passthrough) PartialFit(x *mat.Dense) error { return p.Fit(x) }

func (p *Passthrough) Transform(x *mat.Dense) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	return mat.DenseCopyOf(x), nil
}
