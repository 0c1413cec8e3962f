// nolint
package redisimpls

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libenvelopes/paramstore"
	"github.com/stretchr/testify/assert"
)

func TestRedisParamStorage(t *testing.T) {
	opts, err := redis.ParseURL("redis://:@127.0.0.1:6379") // redis://<user>:<password>@<host>:<port>/<db_number>
	assert.Nil(t, err)

	redisCli := redis.NewClient(opts)

	redisCli.FlushDB(context.Background())

	stg := NewRedisParamStorage("x", redisCli, nil)

	_, err = stg.LoadSet("qubit1")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	set := paramstore.StoredSet{
		"t_final": {Value: 10e-9, Min: 5e-9, Max: 20e-9, Unit: "s"},
		"amps":    {Values: []float64{0.5, 0.3}},
	}

	id1, err := stg.SaveSet("qubit1", set)
	assert.Nil(t, err)

	loaded, err := stg.LoadSet("qubit1")
	assert.Nil(t, err)
	assert.EqualValues(t, set, loaded)

	names, err := stg.SetNames()
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"qubit1"}, names)

	set2 := paramstore.StoredSet{
		"t_final": {Value: 12e-9, Unit: "s"},
	}

	id2, err := stg.SaveSet("qubit1", set2)
	assert.Nil(t, err)
	assert.NotEqualValues(t, id1, id2)

	snap, err := stg.LoadSnapshot("qubit1", id1)
	assert.Nil(t, err)
	assert.EqualValues(t, set, snap)

	ids, err := stg.ListSnapshots("qubit1")
	assert.Nil(t, err)
	assert.Len(t, ids, 2)

	err = stg.DelSet("qubit1")
	assert.Nil(t, err)

	err = stg.DelSet("qubit1")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	ids, err = stg.ListSnapshots("qubit1")
	assert.Nil(t, err)
	assert.Empty(t, ids)
}
