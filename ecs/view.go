package ecs

// excludeSet tests membership against a fixed list of excluded
// storages. Shared by every view arity.
type excludeSet struct {
	containers []erasedContainer
}

func (x excludeSet) excluded(id Entity) bool {
	for _, c := range x.containers {
		if c.contains(id) {
			return true
		}
	}
	return false
}

// View1 iterates entities that have a T1 and none of the excluded
// component types. With no exclusions, it simply walks T1's dense ids.
type View1[T1 any] struct {
	excludeSet
	c1 *Container[T1]
}

// Each calls fn for every matching entity, with a fresh pointer to its
// T1 fetched from the container.
func (v *View1[T1]) Each(fn func(e Entity, t1 *T1)) {
	for _, id := range v.c1.DenseIDs() {
		if v.excluded(id) {
			continue
		}
		fn(id, v.c1.Get(id))
	}
}

// IDs calls fn with just the matching entity id, skipping the
// component fetch.
func (v *View1[T1]) IDs(fn func(e Entity)) {
	for _, id := range v.c1.DenseIDs() {
		if !v.excluded(id) {
			fn(id)
		}
	}
}

// View2 drives iteration off whichever of T1/T2 currently holds fewer
// elements, per the view's driver-selection rule.
type View2[T1, T2 any] struct {
	excludeSet
	c1 *Container[T1]
	c2 *Container[T2]
}

func (v *View2[T1, T2]) Each(fn func(e Entity, t1 *T1, t2 *T2)) {
	driver := v.c1.DenseIDs()
	if v.c2.Size() < v.c1.Size() {
		driver = v.c2.DenseIDs()
	}
	for _, id := range driver {
		if !v.c1.Contains(id) || !v.c2.Contains(id) || v.excluded(id) {
			continue
		}
		fn(id, v.c1.Get(id), v.c2.Get(id))
	}
}

func (v *View2[T1, T2]) IDs(fn func(e Entity)) {
	driver := v.c1.DenseIDs()
	if v.c2.Size() < v.c1.Size() {
		driver = v.c2.DenseIDs()
	}
	for _, id := range driver {
		if v.c1.Contains(id) && v.c2.Contains(id) && !v.excluded(id) {
			fn(id)
		}
	}
}

// View3 drives iteration off the smallest of T1/T2/T3.
type View3[T1, T2, T3 any] struct {
	excludeSet
	c1 *Container[T1]
	c2 *Container[T2]
	c3 *Container[T3]
}

func (v *View3[T1, T2, T3]) Each(fn func(e Entity, t1 *T1, t2 *T2, t3 *T3)) {
	driver := v.c1.DenseIDs()
	smallest := v.c1.Size()
	if s := v.c2.Size(); s < smallest {
		driver, smallest = v.c2.DenseIDs(), s
	}
	if s := v.c3.Size(); s < smallest {
		driver = v.c3.DenseIDs()
	}
	for _, id := range driver {
		if !v.c1.Contains(id) || !v.c2.Contains(id) || !v.c3.Contains(id) || v.excluded(id) {
			continue
		}
		fn(id, v.c1.Get(id), v.c2.Get(id), v.c3.Get(id))
	}
}

func (v *View3[T1, T2, T3]) IDs(fn func(e Entity)) {
	driver := v.c1.DenseIDs()
	smallest := v.c1.Size()
	if s := v.c2.Size(); s < smallest {
		driver, smallest = v.c2.DenseIDs(), s
	}
	if s := v.c3.Size(); s < smallest {
		driver = v.c3.DenseIDs()
	}
	for _, id := range driver {
		if v.c1.Contains(id) && v.c2.Contains(id) && v.c3.Contains(id) && !v.excluded(id) {
			fn(id)
		}
	}
}

// View4 drives iteration off the smallest of T1/T2/T3/T4.
type View4[T1, T2, T3, T4 any] struct {
	excludeSet
	c1 *Container[T1]
	c2 *Container[T2]
	c3 *Container[T3]
	c4 *Container[T4]
}

func (v *View4[T1, T2, T3, T4]) Each(fn func(e Entity, t1 *T1, t2 *T2, t3 *T3, t4 *T4)) {
	driver := v.c1.DenseIDs()
	smallest := v.c1.Size()
	if s := v.c2.Size(); s < smallest {
		driver, smallest = v.c2.DenseIDs(), s
	}
	if s := v.c3.Size(); s < smallest {
		driver, smallest = v.c3.DenseIDs(), s
	}
	if s := v.c4.Size(); s < smallest {
		driver = v.c4.DenseIDs()
	}
	for _, id := range driver {
		if !v.c1.Contains(id) || !v.c2.Contains(id) || !v.c3.Contains(id) || !v.c4.Contains(id) || v.excluded(id) {
			continue
		}
		fn(id, v.c1.Get(id), v.c2.Get(id), v.c3.Get(id), v.c4.Get(id))
	}
}

func (v *View4[T1, T2, T3, T4]) IDs(fn func(e Entity)) {
	driver := v.c1.DenseIDs()
	smallest := v.c1.Size()
	if s := v.c2.Size(); s < smallest {
		driver, smallest = v.c2.DenseIDs(), s
	}
	if s := v.c3.Size(); s < smallest {
		driver, smallest = v.c3.DenseIDs(), s
	}
	if s := v.c4.Size(); s < smallest {
		driver = v.c4.DenseIDs()
	}
	for _, id := range driver {
		if v.c1.Contains(id) && v.c2.Contains(id) && v.c3.Contains(id) && v.c4.Contains(id) && !v.excluded(id) {
			fn(id)
		}
	}
}

// AnyView is the type-erased fallback for arities beyond 4 or for
// callers that only have ComponentTypeIDs in hand (e.g. a data-driven
// tool building a view from a configured type list). It satisfies the
// same driver-selection and filter-predicate rules as the typed views.
type AnyView struct {
	includes []erasedContainer
	excludeSet
}

func newAnyView(includes, excludes []erasedContainer) *AnyView {
	return &AnyView{includes: includes, excludeSet: excludeSet{containers: excludes}}
}

// IDs calls fn with every entity id present in every included storage
// and none of the excluded ones.
func (v *AnyView) IDs(fn func(e Entity)) {
	if len(v.includes) == 0 {
		return
	}

	driver := v.includes[0]
	for _, c := range v.includes[1:] {
		if c.size() < driver.size() {
			driver = c
		}
	}

	for _, id := range driver.denseIDs() {
		if v.excluded(id) {
			continue
		}
		match := true
		for _, c := range v.includes {
			if !c.contains(id) {
				match = false
				break
			}
		}
		if match {
			fn(id)
		}
	}
}
