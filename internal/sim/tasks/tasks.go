package tasks

// Kind names one task variant a creep can be committed to.
type Kind string

const (
	KindUpgrade Kind = "UPGRADE"
	KindHarvest Kind = "HARVEST"
	KindBuild   Kind = "BUILD"
	KindRepair  Kind = "REPAIR"
	KindStore   Kind = "STORE"
)

// StoreKind narrows a STORE task to one storable structure kind. The
// set is open: a new storable structure adds a constant here and a
// case to the executor's switch.
type StoreKind string

const (
	StoreSpawn     StoreKind = "SPAWN"
	StoreExtension StoreKind = "EXTENSION"
	StoreTower     StoreKind = "TOWER"
)

// Task is one committed intention, persisted across ticks in the
// registry. Target is a stable object ID, never a live handle: live
// game objects are valid for exactly one tick and must be re-resolved
// on every visit (the stale handle rule).
type Task struct {
	Kind   Kind
	Target ObjectID
	// Store is set only for KindStore.
	Store StoreKind
}

// ObjectID is duplicated here to avoid import cycles (tasks is used
// by both engine and world).
type ObjectID string
