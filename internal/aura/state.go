package aura

import "sync"

// objectState is the per-object store of active aura instances plus the
// derived per-effect cache. All fields are guarded by mu; the manager
// locks mu around every full mutation (register-and-recompute or
// remove-and-recompute), so timers firing for different instances on the
// same object never interleave.
type objectState struct {
	mu sync.Mutex

	// gone marks a state that was removed from the manager's map after
	// its last instance went away; a goroutine that raced the removal
	// must re-fetch instead of mutating it.
	gone bool

	instances map[string]*AuraInstance
	order     []string // instance ids, insertion order

	// active is the derived cache: for every effect id, the union of
	// effect instances across registered aura instances, in registration
	// order. Reducers fold over these slices as-is.
	active map[string][]*boundInstance

	// values holds the value last passed to Apply per effect id.
	values map[string]Value
}

func newObjectState() *objectState {
	return &objectState{
		instances: make(map[string]*AuraInstance, 4),
		active:    make(map[string][]*boundInstance, 4),
		values:    make(map[string]Value, 4),
	}
}

// register adds an aura instance and its effect instances to the caches.
// Must be called with mu held.
func (st *objectState) register(ai *AuraInstance) {
	st.instances[ai.id] = ai
	st.order = append(st.order, ai.id)
	for _, b := range ai.bound {
		st.active[b.effectID] = append(st.active[b.effectID], b)
	}
}

// unregister removes an aura instance from the caches, preserving the
// registration order of the remaining active instances. Must be called
// with mu held.
func (st *objectState) unregister(ai *AuraInstance) {
	delete(st.instances, ai.id)
	for i, id := range st.order {
		if id == ai.id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	for _, b := range ai.bound {
		st.active[b.effectID] = removeBound(st.active[b.effectID], b)
		if len(st.active[b.effectID]) == 0 {
			delete(st.active, b.effectID)
		}
	}
}

// byAura returns registered instances of the named aura, insertion order.
// Must be called with mu held.
func (st *objectState) byAura(auraName string) []*AuraInstance {
	var out []*AuraInstance
	for _, id := range st.order {
		if ai := st.instances[id]; ai != nil && ai.auraName == auraName {
			out = append(out, ai)
		}
	}
	return out
}

// all returns every registered instance, insertion order. Must be called
// with mu held.
func (st *objectState) all() []*AuraInstance {
	out := make([]*AuraInstance, 0, len(st.order))
	for _, id := range st.order {
		if ai := st.instances[id]; ai != nil {
			out = append(out, ai)
		}
	}
	return out
}

func removeBound(list []*boundInstance, b *boundInstance) []*boundInstance {
	for i, cur := range list {
		if cur == b {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
