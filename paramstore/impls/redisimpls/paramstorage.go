package redisimpls

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libenvelopes/paramstore"
)

func NewRedisParamStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) paramstore.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "paramStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &paramStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type paramStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *paramStorageImpl) setsKey() string {
	return impl.preKey + ":envelope_param_sets"
}

func (impl *paramStorageImpl) snapshotsKey(name string) string {
	return impl.preKey + ":envelope_param_snapshots:" + name
}

func (impl *paramStorageImpl) SaveSet(name string, set paramstore.StoredSet) (snapshotID uint64, err error) {
	d, err := json.Marshal(set)
	if err != nil {
		return
	}

	err = impl.redisCli.HSet(context.Background(), impl.setsKey(), name, d).Err()
	if err != nil {
		return
	}

	snapshotID = snowflake.ID()

	err = impl.redisCli.HSet(context.Background(), impl.snapshotsKey(name),
		strconv.FormatUint(snapshotID, 10), d).Err()

	return
}

func (impl *paramStorageImpl) LoadSet(name string) (set paramstore.StoredSet, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.setsKey(), name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = json.Unmarshal(d, &set)

	return
}

func (impl *paramStorageImpl) DelSet(name string) (err error) {
	n, err := impl.redisCli.HDel(context.Background(), impl.setsKey(), name).Result()
	if err != nil {
		return
	}

	if n == 0 {
		err = commerr.ErrNotFound

		return
	}

	err = impl.redisCli.Del(context.Background(), impl.snapshotsKey(name)).Err()

	return
}

func (impl *paramStorageImpl) SetNames() ([]string, error) {
	return impl.redisCli.HKeys(context.Background(), impl.setsKey()).Result()
}

func (impl *paramStorageImpl) LoadSnapshot(name string, snapshotID uint64) (set paramstore.StoredSet, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.snapshotsKey(name),
		strconv.FormatUint(snapshotID, 10)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = json.Unmarshal(d, &set)

	return
}

func (impl *paramStorageImpl) ListSnapshots(name string) (ids []uint64, err error) {
	fields, err := impl.redisCli.HKeys(context.Background(), impl.snapshotsKey(name)).Result()
	if err != nil {
		return
	}

	ids = make([]uint64, 0, len(fields))

	for _, field := range fields {
		id, e := strconv.ParseUint(field, 10, 64)
		if e != nil {
			impl.logger.Error("bad snapshot field:", field)

			continue
		}

		ids = append(ids, id)
	}

	return
}
