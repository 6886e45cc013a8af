package ecs

import "sort"

// timedDestruction is one entry of the timed-destruction list: an
// entity to destroy once remaining counts down past zero.
type timedDestruction struct {
	remaining float32
	entity    Entity
}

// Registry is the top-level façade: it creates and destroys entities,
// owns every component storage, and dispatches lifecycle and event
// hooks across them. All registry operations are expected to run on a
// single logical thread; the core has no internal scheduler and no
// suspension points.
type Registry struct {
	nextID   Entity
	recycled *heap[Entity]

	destroyDeferred []Entity
	destroyTimed    []timedDestruction

	storages sparseSet[erasedContainer]

	// Services is the opaque host service locator, stored verbatim and
	// never dereferenced by the core.
	Services any
}

// NewRegistry returns an empty registry ready for use.
func NewRegistry() *Registry {
	return &Registry{
		recycled: newHeap[Entity](func(a, b Entity) bool { return a < b }),
	}
}

// Create returns a fresh entity id, reusing the smallest recycled id
// if one is available. Never returns NullEntity.
func (r *Registry) Create() Entity {
	if r.recycled.Len() > 0 {
		return r.recycled.Pop()
	}
	id := r.nextID
	r.nextID++
	return id
}

// Valid reports whether e was issued by Create, is not the sentinel,
// and is not currently recycled or pending destruction (deferred or
// timed).
func (r *Registry) Valid(e Entity) bool {
	if !e.Valid() || e >= r.nextID {
		return false
	}
	if r.recycled.Contains(e) {
		return false
	}
	for _, d := range r.destroyDeferred {
		if d == e {
			return false
		}
	}
	for _, t := range r.destroyTimed {
		if t.entity == e {
			return false
		}
	}
	return true
}

func (r *Registry) removeAllComponents(e Entity) {
	for _, c := range r.storages.Values() {
		c.destroy(e)
	}
}

// Destroy removes e from every storage that contains it and returns
// its id to the recycled pool. Precondition: e is not the sentinel, was
// issued by Create, and has not been destroyed since. A pending
// LateDestroy or DestroyAfter does not block destroying e directly;
// the later sweep then finds e already destroyed and skips it.
func (r *Registry) Destroy(e Entity) {
	assertf(e.Valid(), "destroy: the sentinel entity cannot be destroyed")
	assertf(r.issued(e), "destroy: entity %d was never created or is already destroyed", e)
	r.removeAllComponents(e)
	r.recycled.Push(e)
}

// issued reports whether e is not the sentinel, was issued by Create,
// and is not back in the recycled pool. Unlike Valid, it ignores the
// deferred and timed destruction lists.
func (r *Registry) issued(e Entity) bool {
	return e.Valid() && e < r.nextID && !r.recycled.Contains(e)
}

// destroyIfLive is Destroy without the precondition, used by the
// deferred- and timed-destruction sweeps in Update: those lists may
// name an entity already destroyed through another path, and that
// destruction must be idempotent.
func (r *Registry) destroyIfLive(e Entity) {
	if !r.issued(e) {
		return
	}
	r.removeAllComponents(e)
	r.recycled.Push(e)
}

// DestroyAfter schedules e for destruction once seconds of cumulative
// Update time deltas have elapsed.
func (r *Registry) DestroyAfter(e Entity, seconds float32) {
	r.destroyTimed = append(r.destroyTimed, timedDestruction{remaining: seconds, entity: e})
}

// LateDestroy schedules e for destruction at the end of the current
// Update, after every storage has had a chance to run its own Update.
// Safe to call from within a component's own Update method.
func (r *Registry) LateDestroy(e Entity) {
	r.destroyDeferred = append(r.destroyDeferred, e)
}

// containerFor returns the container for T, materializing it (and
// assigning its ComponentTypeID) on first use.
func containerFor[T any](r *Registry) *Container[T] {
	id := typeIDFor[T]()
	if r.storages.Contains(id) {
		return (*r.storages.Get(id)).(*Container[T])
	}
	c := newContainer[T]()
	var erased erasedContainer = c
	r.storages.Emplace(id, erased)
	return c
}

// Emplace attaches a T to e. Precondition: e does not already have a
// T.
func Emplace[T any](r *Registry, e Entity, value T) *T {
	return containerFor[T](r).Emplace(e, value)
}

// Get returns a pointer to e's T. Precondition: e has a T.
func Get[T any](r *Registry, e Entity) *T {
	return containerFor[T](r).Get(e)
}

// TryGet returns e's T and true, or nil and false if e has none.
func TryGet[T any](r *Registry, e Entity) (*T, bool) {
	return containerFor[T](r).TryGet(e)
}

// Remove detaches e's T. Precondition: e has a T.
func Remove[T any](r *Registry, e Entity) {
	containerFor[T](r).Remove(e)
}

// Contains reports whether e has a T.
func Contains[T any](r *Registry, e Entity) bool {
	return containerFor[T](r).Contains(e)
}

// EntityOf computes the entity owning the T that v points to, by
// pointer arithmetic into that T's storage. Precondition: v points into
// the live prefix of T's storage. Useful for a component to self-identify
// during its own Update, whose hook signature carries no entity id.
func EntityOf[T any](r *Registry, v *T) Entity {
	return containerFor[T](r).EntityOf(v)
}

// CreateReference captures a rebindable (entity, storage) handle to
// e's T.
func CreateReference[T any](r *Registry, e Entity) Reference[T] {
	return Reference[T]{entity: e, container: containerFor[T](r)}
}

// ExcludeType materializes (if necessary) the storage for T and
// returns its ComponentTypeID, for use as an exclusion argument to the
// NewView* constructors.
func ExcludeType[T any](r *Registry) ComponentTypeID {
	return containerFor[T](r).typeID()
}

func (r *Registry) containersOf(ids []ComponentTypeID) []erasedContainer {
	out := make([]erasedContainer, 0, len(ids))
	for _, id := range ids {
		if r.storages.Contains(id) {
			out = append(out, *r.storages.Get(id))
		}
	}
	return out
}

// NewView1 constructs a view over every entity with a T1, excluding
// any entity that has one of the named excluded component types.
func NewView1[T1 any](r *Registry, excludes ...ComponentTypeID) *View1[T1] {
	return &View1[T1]{excludeSet{r.containersOf(excludes)}, containerFor[T1](r)}
}

// NewView2 constructs a view over the intersection of T1 and T2.
func NewView2[T1, T2 any](r *Registry, excludes ...ComponentTypeID) *View2[T1, T2] {
	return &View2[T1, T2]{excludeSet{r.containersOf(excludes)}, containerFor[T1](r), containerFor[T2](r)}
}

// NewView3 constructs a view over the intersection of T1, T2 and T3.
func NewView3[T1, T2, T3 any](r *Registry, excludes ...ComponentTypeID) *View3[T1, T2, T3] {
	return &View3[T1, T2, T3]{excludeSet{r.containersOf(excludes)}, containerFor[T1](r), containerFor[T2](r), containerFor[T3](r)}
}

// NewView4 constructs a view over the intersection of T1, T2, T3 and T4.
func NewView4[T1, T2, T3, T4 any](r *Registry, excludes ...ComponentTypeID) *View4[T1, T2, T3, T4] {
	return &View4[T1, T2, T3, T4]{
		excludeSet{r.containersOf(excludes)},
		containerFor[T1](r), containerFor[T2](r), containerFor[T3](r), containerFor[T4](r),
	}
}

// NewAnyView constructs a type-erased view from explicit
// ComponentTypeID lists, for arities beyond four or data-driven
// callers that only have ids in hand (ExcludeType and containerFor's
// id both come from the same process-wide type registry).
func NewAnyView(r *Registry, includes, excludes []ComponentTypeID) *AnyView {
	return newAnyView(r.containersOf(includes), r.containersOf(excludes))
}

// Inspect calls f with the component for every type in types whose
// storage contains e, in the order types is given.
func (r *Registry) Inspect(e Entity, types []ComponentTypeID, f func(ComponentTypeID, any)) {
	for _, id := range types {
		if !r.storages.Contains(id) {
			continue
		}
		c := *r.storages.Get(id)
		if c.contains(e) {
			f(id, c.componentAny(e))
		}
	}
}

// sortedStorages returns every storage ordered by ascending
// ComponentTypeID, the order spec'd for Start/Update dispatch. The
// storages set's own dense order is insertion order and is never
// reshuffled by removal (storages are never individually removed), but
// sorting explicitly keeps the guarantee independent of that detail.
func (r *Registry) sortedStorages() []erasedContainer {
	ids := r.storages.DenseIDs()
	vals := r.storages.Values()

	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return ids[order[a]] < ids[order[b]] })

	out := make([]erasedContainer, len(order))
	for i, idx := range order {
		out[i] = vals[idx]
	}
	return out
}

// Start dispatches Start across every storage, in ascending
// component-type-id order.
func (r *Registry) Start() {
	for _, c := range r.sortedStorages() {
		c.start()
	}
}

// Update dispatches Update(ctx) across every storage in ascending
// component-type-id order, then runs the end-of-tick deferred-destroy
// sweep, then decrements and processes the timed-destroy list.
func (r *Registry) Update(ctx *UpdateContext) {
	ctx.Registry = r
	for _, c := range r.sortedStorages() {
		c.update(ctx)
	}

	deferred := r.destroyDeferred
	r.destroyDeferred = nil
	for _, e := range deferred {
		r.destroyIfLive(e)
	}

	remaining := r.destroyTimed[:0]
	for _, t := range r.destroyTimed {
		t.remaining -= ctx.TimeDelta
		if t.remaining <= 0 {
			r.destroyIfLive(t.entity)
		} else {
			remaining = append(remaining, t)
		}
	}
	r.destroyTimed = remaining
}

// OnCollisionEnter dispatches OnCollisionEnter(other) to whichever
// storage owns a component on owner that implements
// CollisionEnterHandler.
func (r *Registry) OnCollisionEnter(owner, other Entity) {
	for _, c := range r.storages.Values() {
		c.onCollisionEnter(owner, other)
	}
}

// OnCollisionExit dispatches OnCollisionExit(other) the same way
// OnCollisionEnter does.
func (r *Registry) OnCollisionExit(owner, other Entity) {
	for _, c := range r.storages.Values() {
		c.onCollisionExit(owner, other)
	}
}

// OnTriggerEnter dispatches OnTriggerEnter(other) the same way
// OnCollisionEnter does.
func (r *Registry) OnTriggerEnter(owner, other Entity) {
	for _, c := range r.storages.Values() {
		c.onTriggerEnter(owner, other)
	}
}

// OnTriggerExit dispatches OnTriggerExit(other) the same way
// OnCollisionEnter does.
func (r *Registry) OnTriggerExit(owner, other Entity) {
	for _, c := range r.storages.Values() {
		c.onTriggerExit(owner, other)
	}
}

// Entities calls fn with every id in [0, next fresh id) that is not
// currently in the recycled pool.
func (r *Registry) Entities(fn func(e Entity)) {
	for id := Entity(0); id < r.nextID; id++ {
		if !r.recycled.Contains(id) {
			fn(id)
		}
	}
}

// Clear releases every storage and resets the registry to empty,
// including the next-id counter and both destruction lists.
func (r *Registry) Clear() {
	for _, c := range r.storages.Values() {
		c.clear()
	}
	r.storages.Clear()
	r.recycled.Clear()
	r.destroyDeferred = nil
	r.destroyTimed = nil
	r.nextID = 0
}
