package envelope

import (
	"fmt"

	"github.com/sgostarter/i/l"
)

// Shape evaluates one envelope over a time vector.
type Shape func(t []float64, params Params) ([]float64, error)

// Registry maps shape names to envelope functions. It is populated
// once by NewRegistry and read-only afterwards, so lookups and
// evaluations are safe from any number of goroutines.
type Registry struct {
	logger l.Wrapper
	shapes map[string]Shape
}

// NewRegistry builds a registry holding every envelope defined in
// this package, keyed by its canonical name.
func NewRegistry(logger l.Wrapper) *Registry {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	r := &Registry{
		logger: logger.WithFields(l.StringField(l.ClsKey, "envelopeRegistry")),
		shapes: make(map[string]Shape),
	}

	r.Register("no_drive", NoDrive)
	r.Register("pwc", Pwc)
	r.Register("fourier_sin", FourierSin)
	r.Register("fourier_cos", FourierCos)
	r.Register("rect", Rect)
	r.Register("flattop_risefall", FlattopRisefall)
	r.Register("flattop", Flattop)
	r.Register("gaussian_sigma", GaussianSigma)
	r.Register("gaussian", r.gaussian)
	r.Register("gaussian_nonorm", GaussianNoNorm)
	r.Register("gaussian_der_nonorm", GaussianDerNoNorm)
	r.Register("gaussian_der", GaussianDer)
	r.Register("drag_sigma", DragSigma)
	r.Register("drag", r.drag)
	r.Register("drag_der", DragDer)
	r.Register("flattop_variant", FlattopVariant)

	return r
}

// Register inserts or overwrites the mapping name -> fn. The last
// registration under a name wins.
func (r *Registry) Register(name string, fn Shape) {
	r.shapes[name] = fn
}

func (r *Registry) Lookup(name string) (Shape, error) {
	fn, ok := r.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrShapeNotFound, name)
	}

	return fn, nil
}

// Names returns all registered shape names, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))

	for name := range r.shapes {
		names = append(names, name)
	}

	return names
}

func (r *Registry) Evaluate(name string, t []float64, params Params) (vs []float64, err error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return
	}

	return fn(t, params)
}

// gaussian is GaussianSigma with the standard width sigma=t_final/4.
//
// Deprecated: use gaussian_sigma with an explicit sigma.
func (r *Registry) gaussian(t []float64, params Params) ([]float64, error) {
	r.logger.Warn("gaussian uses the standard width, use gaussian_sigma instead")

	ps, err := withStandardSigma(params)
	if err != nil {
		return nil, err
	}

	return GaussianSigma(t, ps)
}

// drag is DragSigma with the standard width sigma=t_final/4.
//
// Deprecated: use drag_sigma with an explicit sigma.
func (r *Registry) drag(t []float64, params Params) ([]float64, error) {
	r.logger.Warn("drag uses the standard width, use drag_sigma instead")

	ps, err := withStandardSigma(params)
	if err != nil {
		return nil, err
	}

	return DragSigma(t, ps)
}

func withStandardSigma(params Params) (ps Params, err error) {
	q, err := params.Quantity("t_final")
	if err != nil {
		return
	}

	tFinal := q.Value()

	ps = params.With("sigma", &Qty{
		Val:  tFinal / 4,
		Min:  tFinal / 8,
		Max:  tFinal / 2,
		Unit: q.GetUnit(),
	})

	return
}
