package paramstore

// Storage persists named parameter sets between calibration runs.
// Every save also records an immutable snapshot so earlier
// calibration results stay recoverable.
type Storage interface {
	SaveSet(name string, set StoredSet) (snapshotID uint64, err error)
	LoadSet(name string) (StoredSet, error)
	DelSet(name string) error
	SetNames() ([]string, error)

	LoadSnapshot(name string, snapshotID uint64) (StoredSet, error)
	ListSnapshots(name string) ([]uint64, error)
}
