// Package ecs provides the core entity-component-system registry: a
// sparse-set backed store of heterogeneous components indexed by compact
// integer entities, with fast multi-component iteration over views.
package ecs

import "math"

// Entity is a dense, non-negative integer identifier for a logical
// object. Entities are not generational: a recycled id is
// indistinguishable from its prior incarnation. A host that needs to
// detect stale handles across recycling should layer a generation
// component on top.
type Entity uint32

// NullEntity is the reserved sentinel meaning "no entity". It is the
// maximum representable Entity value rather than zero, because zero is
// a legitimate id that Create can and will eventually reuse.
const NullEntity Entity = math.MaxUint32

// Valid reports whether e is not the sentinel. It says nothing about
// whether e was ever created or has since been destroyed; use
// Registry.Valid for that.
func (e Entity) Valid() bool {
	return e != NullEntity
}
