// Package aura implements composable timed status effects for game
// objects. Effect values are always recomputed from the full set of
// currently-active contributions, so removing one of several overlapping
// applications never clears state that surviving contributions still hold.
package aura

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Manager is the public API of the effect engine. It tracks per-object
// effect state, arms lifecycle timers, and guarantees that every applied
// value is recomputed from the full set of currently-active instances.
//
// Thread-safe: each object is an independent critical section. Mutations
// to one object (register-and-recompute, remove-and-recompute, tick) are
// totally ordered; different objects may be mutated concurrently.
type Manager struct {
	registry *Registry
	clock    Clock

	mu      sync.Mutex
	objects map[Object]*objectState
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock, e.g. with a ManualClock driven by
// the host game loop.
func WithClock(c Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// NewManager creates a manager reading effect and aura definitions from
// reg. Lifecycle timers run on the wall clock unless WithClock overrides.
func NewManager(reg *Registry, opts ...Option) *Manager {
	m := &Manager{
		registry: reg,
		clock:    wallClock{},
		objects:  make(map[Object]*objectState, 16),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the definition registry the manager reads from.
func (m *Manager) Registry() *Registry { return m.registry }

// ApplyAura applies the named aura to obj and returns the new aura
// instance id. Settings may be nil. The constructor runs before any state
// is touched; a constructor failure or a template referencing an
// unregistered effect leaves obj unmodified.
func (m *Manager) ApplyAura(obj Object, auraName string, settings *Fields) (string, error) {
	ctor, err := m.registry.Aura(auraName)
	if err != nil {
		return "", err
	}
	if settings == nil {
		settings = NewFields()
	}

	tmpl, err := ctor.Build(settings)
	if err != nil {
		return "", fmt.Errorf("aura %q: %w", auraName, errors.Join(ErrInvalidSettings, err))
	}
	if tmpl == nil || len(tmpl.Effects) == 0 {
		return "", fmt.Errorf("aura %q: %w: constructor returned no effects", auraName, ErrInvalidSettings)
	}

	effects := make([]*Effect, len(tmpl.Effects))
	seen := make(map[string]bool, len(tmpl.Effects))
	for i, te := range tmpl.Effects {
		if seen[te.EffectID] {
			return "", fmt.Errorf("aura %q: %w: effect %q bound twice", auraName, ErrInvalidSettings, te.EffectID)
		}
		seen[te.EffectID] = true
		eff, err := m.registry.Effect(te.EffectID)
		if err != nil {
			return "", fmt.Errorf("aura %q: %w", auraName, err)
		}
		effects[i] = eff
	}

	ai := &AuraInstance{
		id:       uuid.NewString(),
		auraName: auraName,
		object:   obj,
		shared:   tmpl.Shared.Clone(),
	}
	for _, te := range tmpl.Effects {
		inst := te.Instance
		if inst == nil {
			inst = NewEffectInstance(nil)
		}
		replicateShared(ai.shared, inst)
		ai.bound = append(ai.bound, &boundInstance{
			effectID: te.EffectID,
			inst:     inst,
			owner:    ai,
		})
	}

	st := m.lockState(obj, true)
	st.register(ai)
	m.armTimers(obj, ai)
	for i, b := range ai.bound {
		m.recomputeLocked(st, obj, effects[i], b.effectID)
	}
	m.releaseState(obj, st)

	slog.Debug("aura applied",
		"aura", auraName,
		"id", ai.id,
		"effects", len(ai.bound))
	return ai.id, nil
}

// RemoveAuraInstance removes one aura instance by id. No-op if the id is
// not registered on obj, so a manual call racing a duration timer is safe
// and never triggers a second recompute or cleanup.
func (m *Manager) RemoveAuraInstance(obj Object, id string) {
	st := m.lockState(obj, false)
	if st == nil {
		return
	}
	ai, ok := st.instances[id]
	if !ok {
		m.releaseState(obj, st)
		return
	}
	m.removeLocked(st, obj, []*AuraInstance{ai})
	m.releaseState(obj, st)

	slog.Debug("aura instance removed", "aura", ai.auraName, "id", id)
}

// RemoveAura removes every instance of the named aura on obj, batched so
// each affected effect recomputes exactly once. No-op if none match.
func (m *Manager) RemoveAura(obj Object, auraName string) {
	st := m.lockState(obj, false)
	if st == nil {
		return
	}
	matched := st.byAura(auraName)
	if len(matched) == 0 {
		m.releaseState(obj, st)
		return
	}
	m.removeLocked(st, obj, matched)
	m.releaseState(obj, st)

	slog.Debug("aura removed", "aura", auraName, "instances", len(matched))
}

// RemoveAll removes every aura instance on obj with the same cleanup and
// batch-recompute guarantees as RemoveAura.
func (m *Manager) RemoveAll(obj Object) {
	st := m.lockState(obj, false)
	if st == nil {
		return
	}
	all := st.all()
	if len(all) == 0 {
		m.releaseState(obj, st)
		return
	}
	m.removeLocked(st, obj, all)
	m.releaseState(obj, st)

	slog.Debug("all auras removed", "instances", len(all))
}

// HasAura reports whether any instance of the named aura is on obj.
func (m *Manager) HasAura(obj Object, auraName string) bool {
	st := m.lockState(obj, false)
	if st == nil {
		return false
	}
	defer m.releaseState(obj, st)

	for _, ai := range st.instances {
		if ai.auraName == auraName {
			return true
		}
	}
	return false
}

// HasEffect reports whether the effect has at least one active instance
// on obj.
func (m *Manager) HasEffect(obj Object, effectID string) bool {
	st := m.lockState(obj, false)
	if st == nil {
		return false
	}
	defer m.releaseState(obj, st)
	return len(st.active[effectID]) > 0
}

// EffectValue returns the value last applied for the effect on obj, which
// always equals the reducer folded over the current active set. With no
// active instances it is the effect's default.
func (m *Manager) EffectValue(obj Object, effectID string) (Value, error) {
	eff, err := m.registry.Effect(effectID)
	if err != nil {
		return Value{}, err
	}

	st := m.lockState(obj, false)
	if st == nil {
		return eff.Default, nil
	}
	defer m.releaseState(obj, st)

	if len(st.active[effectID]) == 0 {
		return eff.Default, nil
	}
	return st.values[effectID], nil
}

// Auras returns the defining aura name of every instance on obj, one
// entry per instance, in application order.
func (m *Manager) Auras(obj Object) []string {
	st := m.lockState(obj, false)
	if st == nil {
		return nil
	}
	defer m.releaseState(obj, st)

	out := make([]string, 0, len(st.order))
	for _, ai := range st.all() {
		out = append(out, ai.auraName)
	}
	return out
}

// InstanceCount returns the number of aura instances on obj.
func (m *Manager) InstanceCount(obj Object) int {
	st := m.lockState(obj, false)
	if st == nil {
		return 0
	}
	defer m.releaseState(obj, st)
	return len(st.instances)
}

// ObjectCount returns the number of objects with at least one aura.
func (m *Manager) ObjectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// removeLocked removes the given instances in order: cancel timers,
// unregister, run cleanup pre-applies against the shrunken active set,
// then recompute each affected effect exactly once. Must be called with
// st.mu held.
func (m *Manager) removeLocked(st *objectState, obj Object, list []*AuraInstance) {
	var affected []string
	seen := make(map[string]bool, 4)

	for _, ai := range list {
		ai.stopTimers()
		st.unregister(ai)
		for _, b := range ai.bound {
			if !seen[b.effectID] {
				seen[b.effectID] = true
				affected = append(affected, b.effectID)
			}
		}
		for _, b := range ai.bound {
			if !b.inst.Cleanup() {
				continue
			}
			eff, err := m.registry.Effect(b.effectID)
			if err != nil {
				continue
			}
			eff.Apply.Apply(obj, reduceActive(eff, st.active[b.effectID]))
		}
	}

	for _, effectID := range affected {
		eff, err := m.registry.Effect(effectID)
		if err != nil {
			continue
		}
		m.recomputeLocked(st, obj, eff, effectID)
	}
}

// recomputeLocked folds the current active set and applies the result,
// caching it for EffectValue. Must be called with st.mu held.
func (m *Manager) recomputeLocked(st *objectState, obj Object, eff *Effect, effectID string) {
	v := reduceActive(eff, st.active[effectID])
	st.values[effectID] = v
	eff.Apply.Apply(obj, v)
}

// armTimers arms duration and tick timers for every bound instance that
// carries the reserved fields. Must be called with st.mu held; the fire
// paths re-check registration under the lock, so a callback that slips
// past Stop is a no-op.
func (m *Manager) armTimers(obj Object, ai *AuraInstance) {
	id := ai.id
	for _, b := range ai.bound {
		if d, ok := b.inst.Duration(); ok {
			ai.timers = append(ai.timers, m.clock.AfterFunc(d, func() {
				m.expire(obj, id)
			}))
		}
		if iv, ok := b.inst.TickEvery(); ok && iv > 0 {
			effectID := b.effectID
			ai.timers = append(ai.timers, m.clock.TickFunc(iv, func() {
				m.tick(obj, id, effectID)
			}))
		}
	}
}

// expire is the duration-timer fire path: same removal semantics as
// RemoveAuraInstance, gated on the instance still being registered.
func (m *Manager) expire(obj Object, id string) {
	st := m.lockState(obj, false)
	if st == nil {
		return
	}
	ai, ok := st.instances[id]
	if !ok {
		m.releaseState(obj, st)
		return
	}
	m.removeLocked(st, obj, []*AuraInstance{ai})
	m.releaseState(obj, st)

	slog.Debug("aura expired", "aura", ai.auraName, "id", id)
}

// tick is the tick-timer fire path: recompute the owning effect from the
// unchanged active set, gated on the instance still being registered.
func (m *Manager) tick(obj Object, id, effectID string) {
	st := m.lockState(obj, false)
	if st == nil {
		return
	}
	defer m.releaseState(obj, st)

	if _, ok := st.instances[id]; !ok {
		return
	}
	eff, err := m.registry.Effect(effectID)
	if err != nil {
		return
	}
	m.recomputeLocked(st, obj, eff, effectID)
}

// lockState returns obj's state with its mutex held, creating it when
// create is set. Returns nil when absent and create is false. The manager
// map lock is never held while acquiring a state lock.
func (m *Manager) lockState(obj Object, create bool) *objectState {
	for {
		m.mu.Lock()
		st := m.objects[obj]
		if st == nil {
			if !create {
				m.mu.Unlock()
				return nil
			}
			st = newObjectState()
			m.objects[obj] = st
		}
		m.mu.Unlock()

		st.mu.Lock()
		if !st.gone {
			return st
		}
		st.mu.Unlock()
	}
}

// releaseState unlocks st, destroying it when its last instance is gone
// so empty objects do not accumulate.
func (m *Manager) releaseState(obj Object, st *objectState) {
	if len(st.instances) > 0 {
		st.mu.Unlock()
		return
	}
	st.gone = true
	st.mu.Unlock()

	m.mu.Lock()
	if m.objects[obj] == st {
		delete(m.objects, obj)
	}
	m.mu.Unlock()
}

// replicateShared copies shared fields into an effect instance; keys the
// instance already defines win.
func replicateShared(shared *Fields, inst *EffectInstance) {
	shared.Range(func(key string, v Value) bool {
		if !inst.fields.Has(key) {
			inst.fields.Set(key, v)
		}
		return true
	})
}
