package paramstore

import (
	"testing"

	"github.com/sgostarter/libenvelopes/envelope"
	"github.com/stretchr/testify/assert"
)

func TestCodec(t *testing.T) {
	ps := envelope.Params{
		"t_final": &envelope.Qty{Val: 10e-9, Min: 5e-9, Max: 20e-9, Unit: "s"},
		"sigma":   envelope.NewQty(2.5e-9),
		"amps":    envelope.NewVecQty(0.5, 0.3, 0.2),
	}

	d, err := ExportYAML(FromParams(ps))
	assert.Nil(t, err)

	set, err := ImportYAML(d)
	assert.Nil(t, err)
	assert.Len(t, set, 3)

	back := set.Params()

	v, err := back.Value("t_final")
	assert.Nil(t, err)
	assert.EqualValues(t, 10e-9, v)

	q, err := back.Quantity("t_final")
	assert.Nil(t, err)
	assert.EqualValues(t, "s", q.GetUnit())

	min, max := q.Bounds()
	assert.EqualValues(t, 5e-9, min)
	assert.EqualValues(t, 20e-9, max)

	vs, err := back.Values("amps")
	assert.Nil(t, err)
	assert.EqualValues(t, []float64{0.5, 0.3, 0.2}, vs)
}

func TestImportYAMLShortForms(t *testing.T) {
	set, err := ImportYAML([]byte(`
t_final: 10
freqs:
  - 1
  - 2.5
`))
	assert.Nil(t, err)

	ps := set.Params()

	v, err := ps.Value("t_final")
	assert.Nil(t, err)
	assert.EqualValues(t, 10, v)

	vs, err := ps.Values("freqs")
	assert.Nil(t, err)
	assert.EqualValues(t, []float64{1, 2.5}, vs)
}

func TestImportYAMLBadDocument(t *testing.T) {
	_, err := ImportYAML([]byte("t_final: [true, {}]"))
	assert.NotNil(t, err)
}
