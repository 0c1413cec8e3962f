package paramstore

import (
	"github.com/sgostarter/libenvelopes/envelope"
)

type StoredQuantity struct {
	Value  float64   `yaml:"value" json:"value"`
	Values []float64 `yaml:"values,omitempty" json:"values,omitempty"`
	Min    float64   `yaml:"min,omitempty" json:"min,omitempty"`
	Max    float64   `yaml:"max,omitempty" json:"max,omitempty"`
	Unit   string    `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// StoredSet is the persisted form of an envelope.Params value.
type StoredSet map[string]StoredQuantity

func FromQuantity(q envelope.Quantity) StoredQuantity {
	if vq, ok := q.(*envelope.VecQty); ok {
		return StoredQuantity{
			Values: append([]float64(nil), vq.Vals...),
			Unit:   vq.Unit,
		}
	}

	min, max := q.Bounds()

	return StoredQuantity{
		Value: q.Value(),
		Min:   min,
		Max:   max,
		Unit:  q.GetUnit(),
	}
}

func (sq StoredQuantity) ToQuantity() envelope.Quantity {
	if len(sq.Values) > 0 {
		return &envelope.VecQty{
			Vals: append([]float64(nil), sq.Values...),
			Unit: sq.Unit,
		}
	}

	return &envelope.Qty{
		Val:  sq.Value,
		Min:  sq.Min,
		Max:  sq.Max,
		Unit: sq.Unit,
	}
}

func FromParams(ps envelope.Params) StoredSet {
	set := make(StoredSet, len(ps))

	for k, q := range ps {
		set[k] = FromQuantity(q)
	}

	return set
}

func (s StoredSet) Params() envelope.Params {
	ps := make(envelope.Params, len(s))

	for k, sq := range s {
		ps[k] = sq.ToQuantity()
	}

	return ps
}
