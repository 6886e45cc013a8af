package ecs

// Component capability interfaces. A component type may implement any
// subset of these; Container[T] detects which ones it satisfies once,
// at construction, and dispatches accordingly with no further runtime
// branching. These are the only hooks the core recognizes (spec'd
// behavior conventions, not a base class components must embed).
type (
	// Starter is implemented by components that run setup logic when
	// Registry.Start is called. Every call to Registry.Start dispatches
	// Start to every stored component again.
	Starter interface{ Start() }

	// Updater is implemented by components that run per-tick logic.
	Updater interface{ Update(ctx *UpdateContext) }

	// CollisionEnterHandler is implemented by components that react to
	// the start of a collision with another entity.
	CollisionEnterHandler interface{ OnCollisionEnter(other Entity) }

	// CollisionExitHandler is implemented by components that react to
	// the end of a collision with another entity.
	CollisionExitHandler interface{ OnCollisionExit(other Entity) }

	// TriggerEnterHandler is implemented by components that react to
	// entering a trigger volume owned by another entity.
	TriggerEnterHandler interface{ OnTriggerEnter(other Entity) }

	// TriggerExitHandler is implemented by components that react to
	// leaving a trigger volume owned by another entity.
	TriggerExitHandler interface{ OnTriggerExit(other Entity) }
)

// erasedContainer is the type-erased capability surface the registry
// holds one of per component type. Container[T] implements it for
// every T; the registry never needs T's identity to drive lifecycle
// dispatch or bulk teardown.
type erasedContainer interface {
	typeID() ComponentTypeID
	destroy(id Entity) // removes id if present; no-op otherwise
	contains(id Entity) bool
	size() int
	clear()
	denseIDs() []Entity
	componentAny(id Entity) any

	start()
	update(ctx *UpdateContext)
	onCollisionEnter(owner, other Entity)
	onCollisionExit(owner, other Entity)
	onTriggerEnter(owner, other Entity)
	onTriggerExit(owner, other Entity)
}

// Container holds every component of type T and dispatches the
// lifecycle hooks T opts into. The capability bits are resolved once
// in newContainer by asserting *T against each capability interface;
// none of the hot-path methods below re-check.
type Container[T any] struct {
	set sparseSet[T]
	id  ComponentTypeID

	canStart           bool
	canUpdate          bool
	canCollisionEnter  bool
	canCollisionExit   bool
	canTriggerEnter    bool
	canTriggerExit     bool
}

func newContainer[T any]() *Container[T] {
	var probe *T
	_, canStart := any(probe).(Starter)
	_, canUpdate := any(probe).(Updater)
	_, canCollisionEnter := any(probe).(CollisionEnterHandler)
	_, canCollisionExit := any(probe).(CollisionExitHandler)
	_, canTriggerEnter := any(probe).(TriggerEnterHandler)
	_, canTriggerExit := any(probe).(TriggerExitHandler)

	return &Container[T]{
		id:                typeIDFor[T](),
		canStart:          canStart,
		canUpdate:         canUpdate,
		canCollisionEnter: canCollisionEnter,
		canCollisionExit:  canCollisionExit,
		canTriggerEnter:   canTriggerEnter,
		canTriggerExit:    canTriggerExit,
	}
}

// Emplace attaches a T to id. Precondition: id does not already have
// this component.
func (c *Container[T]) Emplace(id Entity, value T) *T {
	return c.set.Emplace(id, value)
}

// Get returns a pointer to id's T. Precondition: id has this
// component.
func (c *Container[T]) Get(id Entity) *T {
	return c.set.Get(id)
}

// TryGet returns id's T and true, or the zero value and false when id
// does not have this component.
func (c *Container[T]) TryGet(id Entity) (*T, bool) {
	if !c.set.Contains(id) {
		return nil, false
	}
	return c.set.Get(id), true
}

// Contains reports whether id has this component.
func (c *Container[T]) Contains(id Entity) bool {
	return c.set.Contains(id)
}

// Remove detaches id's T. Precondition: id has this component. Unlike
// destroy (used for whole-entity teardown), removing an absent
// component is a contract violation, not a no-op.
func (c *Container[T]) Remove(id Entity) {
	c.set.Remove(id)
}

// componentAny returns id's component boxed as any, for Registry.Inspect.
func (c *Container[T]) componentAny(id Entity) any {
	return c.set.Get(id)
}

// Size returns the number of entities carrying this component.
func (c *Container[T]) Size() int {
	return c.set.Size()
}

// DenseIDs exposes the live entity ids in current dense order, used by
// views to drive or test intersection.
func (c *Container[T]) DenseIDs() []Entity {
	return c.set.DenseIDs()
}

// EntityOf computes the owning entity of a T obtained from this
// container, by pointer arithmetic into the dense value buffer.
func (c *Container[T]) EntityOf(v *T) Entity {
	return c.set.EntityOf(v)
}

func (c *Container[T]) typeID() ComponentTypeID { return c.id }

func (c *Container[T]) destroy(id Entity) {
	if c.set.Contains(id) {
		c.set.Remove(id)
	}
}

func (c *Container[T]) contains(id Entity) bool  { return c.set.Contains(id) }
func (c *Container[T]) size() int                { return c.set.Size() }
func (c *Container[T]) clear()                   { c.set.Clear() }
func (c *Container[T]) denseIDs() []Entity       { return c.set.DenseIDs() }

func (c *Container[T]) start() {
	if !c.canStart {
		return
	}
	vals := c.set.Values()
	for i := range vals {
		any(&vals[i]).(Starter).Start()
	}
}

func (c *Container[T]) update(ctx *UpdateContext) {
	if !c.canUpdate {
		return
	}
	vals := c.set.Values()
	for i := range vals {
		any(&vals[i]).(Updater).Update(ctx)
	}
}

func (c *Container[T]) onCollisionEnter(owner, other Entity) {
	if !c.canCollisionEnter || !c.set.Contains(owner) {
		return
	}
	any(c.set.Get(owner)).(CollisionEnterHandler).OnCollisionEnter(other)
}

func (c *Container[T]) onCollisionExit(owner, other Entity) {
	if !c.canCollisionExit || !c.set.Contains(owner) {
		return
	}
	any(c.set.Get(owner)).(CollisionExitHandler).OnCollisionExit(other)
}

func (c *Container[T]) onTriggerEnter(owner, other Entity) {
	if !c.canTriggerEnter || !c.set.Contains(owner) {
		return
	}
	any(c.set.Get(owner)).(TriggerEnterHandler).OnTriggerEnter(other)
}

func (c *Container[T]) onTriggerExit(owner, other Entity) {
	if !c.canTriggerExit || !c.set.Contains(owner) {
		return
	}
	any(c.set.Get(owner)).(TriggerExitHandler).OnTriggerExit(other)
}
