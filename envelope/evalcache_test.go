package envelope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedEvaluator(t *testing.T) {
	ce := NewCachedEvaluator(NewRegistry(nil), time.Minute, nil)

	params := Params{
		"t_final": NewQty(10),
		"sigma":   NewQty(2),
	}

	ts := []float64{0, 2.5, 5, 7.5, 10}

	vs1, err := ce.Evaluate("gaussian_sigma", ts, params)
	assert.Nil(t, err)
	assert.Len(t, vs1, 5)

	vs2, err := ce.Evaluate("gaussian_sigma", ts, params)
	assert.Nil(t, err)
	assert.EqualValues(t, vs1, vs2)

	// callers must not be able to poison the cache through the
	// returned slice
	vs2[0] = 1e9

	vs3, err := ce.Evaluate("gaussian_sigma", ts, params)
	assert.Nil(t, err)
	assert.EqualValues(t, vs1, vs3)
}

func TestCachedEvaluatorDistinguishesParams(t *testing.T) {
	ce := NewCachedEvaluator(NewRegistry(nil), time.Minute, nil)

	ts := []float64{0, 5, 10}

	vs1, err := ce.Evaluate("gaussian_nonorm", ts, Params{
		"t_final": NewQty(10),
		"sigma":   NewQty(2),
	})
	assert.Nil(t, err)

	vs2, err := ce.Evaluate("gaussian_nonorm", ts, Params{
		"t_final": NewQty(10),
		"sigma":   NewQty(4),
	})
	assert.Nil(t, err)
	assert.NotEqual(t, vs1, vs2)
}

func TestCachedEvaluatorUnknownShape(t *testing.T) {
	ce := NewCachedEvaluator(NewRegistry(nil), time.Minute, nil)

	_, err := ce.Evaluate("not_a_shape", []float64{0}, nil)
	assert.ErrorIs(t, err, ErrShapeNotFound)
}
