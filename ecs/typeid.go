package ecs

import (
	"reflect"
	"sync"
)

// ComponentTypeID is the small, dense integer a component type is
// assigned on first use. It doubles as the key into Registry.storages.
type ComponentTypeID = Entity

// typeRegistry assigns a stable, process-wide id to each component type
// the first time it is mentioned by any Registry. Two registries in the
// same process therefore agree on the id for a given component type.
var typeRegistry struct {
	mu   sync.Mutex
	ids  map[reflect.Type]ComponentTypeID
	next ComponentTypeID
}

func typeIDFor[T any]() ComponentTypeID {
	t := reflect.TypeFor[T]()

	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()

	if typeRegistry.ids == nil {
		typeRegistry.ids = make(map[reflect.Type]ComponentTypeID)
	}
	if id, ok := typeRegistry.ids[t]; ok {
		return id
	}

	id := typeRegistry.next
	typeRegistry.next++
	typeRegistry.ids[t] = id
	return id
}
