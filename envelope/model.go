package envelope

import (
	"fmt"
)

// Quantity is a physical parameter: a scalar (or vector) value plus
// optional unit and bounds. Bounds and unit are only consulted by
// shapes that synthesize derived quantities.
type Quantity interface {
	Value() float64
	Values() []float64
	GetUnit() string
	Bounds() (min, max float64)
}

type Qty struct {
	Val  float64 `yaml:"value" json:"value"`
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Unit string  `yaml:"unit" json:"unit"`
}

func NewQty(value float64) *Qty {
	return &Qty{Val: value}
}

func (q *Qty) Value() float64 {
	return q.Val
}

func (q *Qty) Values() []float64 {
	return []float64{q.Val}
}

func (q *Qty) GetUnit() string {
	return q.Unit
}

func (q *Qty) Bounds() (min, max float64) {
	return q.Min, q.Max
}

// VecQty carries a vector-valued parameter, such as the fourier
// component weights and frequencies.
type VecQty struct {
	Vals []float64 `yaml:"values" json:"values"`
	Unit string    `yaml:"unit" json:"unit"`
}

func NewVecQty(values ...float64) *VecQty {
	return &VecQty{Vals: values}
}

func (q *VecQty) Value() float64 {
	if len(q.Vals) == 0 {
		return 0
	}

	return q.Vals[0]
}

func (q *VecQty) Values() []float64 {
	return q.Vals
}

func (q *VecQty) GetUnit() string {
	return q.Unit
}

func (q *VecQty) Bounds() (min, max float64) {
	return 0, 0
}

// Params maps parameter names to quantities. A Params value is
// never mutated by any shape; shapes that need a derived quantity
// work on an augmented copy via With.
type Params map[string]Quantity

func (p Params) Quantity(key string) (Quantity, error) {
	q, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}

	return q, nil
}

func (p Params) Value(key string) (v float64, err error) {
	q, err := p.Quantity(key)
	if err != nil {
		return
	}

	v = q.Value()

	return
}

func (p Params) Values(key string) (vs []float64, err error) {
	q, err := p.Quantity(key)
	if err != nil {
		return
	}

	vs = q.Values()

	return
}

// With returns a copy of p with key set to q. The receiver is left
// untouched so concurrent callers never observe injected keys.
func (p Params) With(key string, q Quantity) Params {
	np := make(Params, len(p)+1)

	for k, v := range p {
		np[k] = v
	}

	np[key] = q

	return np
}
