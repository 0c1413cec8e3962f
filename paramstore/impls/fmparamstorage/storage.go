package fmparamstorage

import (
	"path/filepath"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libenvelopes/paramstore"
)

func NewFMParamStorage(root string, storage stg.FileStorage) paramstore.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmParamStorageImpl{
		setStorage: mwf.NewMemWithFile[map[string]paramstore.StoredSet, mwf.Serial, mwf.Lock](
			make(map[string]paramstore.StoredSet), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, "paramSets.json"), storage),
		snapshotStorage: mwf.NewMemWithFile[map[string]map[uint64]paramstore.StoredSet, mwf.Serial, mwf.Lock](
			make(map[string]map[uint64]paramstore.StoredSet), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, "paramSnapshots.json"), storage),
	}
}

type fmParamStorageImpl struct {
	setStorage      *mwf.MemWithFile[map[string]paramstore.StoredSet, mwf.Serial, mwf.Lock]
	snapshotStorage *mwf.MemWithFile[map[string]map[uint64]paramstore.StoredSet, mwf.Serial, mwf.Lock]
}

func (impl *fmParamStorageImpl) SaveSet(name string, set paramstore.StoredSet) (snapshotID uint64, err error) {
	snapshotID = snowflake.ID()

	err = impl.setStorage.Change(func(oldM map[string]paramstore.StoredSet) (newM map[string]paramstore.StoredSet, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]paramstore.StoredSet)
		}

		newM[name] = set

		return
	})
	if err != nil {
		return
	}

	err = impl.snapshotStorage.Change(func(oldM map[string]map[uint64]paramstore.StoredSet) (newM map[string]map[uint64]paramstore.StoredSet, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]map[uint64]paramstore.StoredSet)
		}

		if newM[name] == nil {
			newM[name] = make(map[uint64]paramstore.StoredSet)
		}

		newM[name][snapshotID] = set

		return
	})

	return
}

func (impl *fmParamStorageImpl) LoadSet(name string) (set paramstore.StoredSet, err error) {
	impl.setStorage.Read(func(m map[string]paramstore.StoredSet) {
		if s, ok := m[name]; ok {
			set = s
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmParamStorageImpl) DelSet(name string) error {
	return impl.setStorage.Change(func(oldM map[string]paramstore.StoredSet) (newM map[string]paramstore.StoredSet, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]paramstore.StoredSet)
		}

		if _, ok := newM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, name)

		return
	})
}

func (impl *fmParamStorageImpl) SetNames() (names []string, err error) {
	impl.setStorage.Read(func(m map[string]paramstore.StoredSet) {
		for name := range m {
			names = append(names, name)
		}
	})

	return
}

func (impl *fmParamStorageImpl) LoadSnapshot(name string, snapshotID uint64) (set paramstore.StoredSet, err error) {
	impl.snapshotStorage.Read(func(m map[string]map[uint64]paramstore.StoredSet) {
		if s, ok := m[name][snapshotID]; ok {
			set = s
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmParamStorageImpl) ListSnapshots(name string) (ids []uint64, err error) {
	impl.snapshotStorage.Read(func(m map[string]map[uint64]paramstore.StoredSet) {
		for id := range m[name] {
			ids = append(ids, id)
		}
	})

	return
}
