package world

import "roomkeeper/internal/sim/tasks"

// ObjectID aliases the stable identifier stored inside tasks.
type ObjectID = tasks.ObjectID

type Pos struct {
	X int
	Y int
}

// Chebyshev is the room distance metric: diagonal steps count as one,
// matching creep movement.
func Chebyshev(a, b Pos) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Terrain classifies a tile for movement speed and road durability.
type Terrain int

const (
	TerrainPlain Terrain = iota
	TerrainSwamp
	TerrainWall
)

func (t Terrain) String() string {
	switch t {
	case TerrainPlain:
		return "plain"
	case TerrainSwamp:
		return "swamp"
	case TerrainWall:
		return "wall"
	}
	return "unknown"
}

// StructureKind tags every resolvable room object.
type StructureKind string

const (
	KindController StructureKind = "CONTROLLER"
	KindSpawn      StructureKind = "SPAWN"
	KindExtension  StructureKind = "EXTENSION"
	KindTower      StructureKind = "TOWER"
	KindRoad       StructureKind = "ROAD"
	KindSource     StructureKind = "SOURCE"
	KindSite       StructureKind = "SITE"
	KindHostile    StructureKind = "HOSTILE"
)

// Object is a live, tick-scoped handle to a room object. Holders must
// not retain it past the current tick; re-resolve the ID instead.
type Object interface {
	ID() ObjectID
	Pos() Pos
	Kind() StructureKind
}

// StoreTarget is the union of structures that accept energy
// transfers. The unexported fill keeps implementations inside this
// package.
type StoreTarget interface {
	Object
	Used() int
	Free() int
	fill(n int)
}

// obj carries the identity shared by every room object.
type obj struct {
	id   ObjectID
	pos  Pos
	kind StructureKind
}

func (o *obj) ID() ObjectID        { return o.id }
func (o *obj) Pos() Pos            { return o.pos }
func (o *obj) Kind() StructureKind { return o.kind }

// store is the single-resource energy store shared by spawns,
// extensions and towers.
type store struct {
	used int
	cap  int
}

func (s *store) Used() int { return s.used }
func (s *store) Free() int { return s.cap - s.used }

func (s *store) fill(n int) {
	s.used += n
	if s.used > s.cap {
		s.used = s.cap
	}
}

func (s *store) drain(n int) int {
	if n > s.used {
		n = s.used
	}
	s.used -= n
	return n
}
