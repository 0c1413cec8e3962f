package paramstore

import (
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

func ExportYAML(set StoredSet) ([]byte, error) {
	return yaml.Marshal(set)
}

// ImportYAML parses a parameter-set document. Hand-written files may
// abbreviate a quantity to a bare scalar or sequence; both forms are
// accepted alongside the full value/min/max/unit mapping.
func ImportYAML(d []byte) (set StoredSet, err error) {
	var raw map[string]interface{}

	err = yaml.Unmarshal(d, &raw)
	if err != nil {
		return
	}

	set = make(StoredSet, len(raw))

	for k, v := range raw {
		switch vv := v.(type) {
		case map[string]interface{}:
			var db []byte

			db, err = yaml.Marshal(vv)
			if err != nil {
				return
			}

			var sq StoredQuantity

			err = yaml.Unmarshal(db, &sq)
			if err != nil {
				return
			}

			set[k] = sq
		case []interface{}:
			vals := make([]float64, 0, len(vv))

			for _, item := range vv {
				var f float64

				f, err = cast.ToFloat64E(item)
				if err != nil {
					return
				}

				vals = append(vals, f)
			}

			set[k] = StoredQuantity{Values: vals}
		default:
			var f float64

			f, err = cast.ToFloat64E(v)
			if err != nil {
				return
			}

			set[k] = StoredQuantity{Value: f}
		}
	}

	return
}
