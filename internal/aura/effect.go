package aura

import "time"

// Object is an opaque handle for the thing effects act on. It must be
// comparable: the manager uses it only as a map key and passes it through
// to Apply callbacks unchanged.
type Object = any

// Reserved EffectInstance field names with lifecycle meaning.
const (
	// FieldDuration holds seconds until the owning aura instance is
	// auto-removed.
	FieldDuration = "Duration"
	// FieldTick holds seconds between forced recomputations while active.
	FieldTick = "Tick"
	// FieldCleanup, when true, requests one final apply call excluding the
	// instance at the moment it is removed.
	FieldCleanup = "Cleanup"
)

// Reducer folds one effect instance into a running aggregate.
type Reducer interface {
	Reduce(acc Value, inst *EffectInstance) Value
}

// ReducerFunc adapts a function to the Reducer interface.
type ReducerFunc func(acc Value, inst *EffectInstance) Value

func (f ReducerFunc) Reduce(acc Value, inst *EffectInstance) Value { return f(acc, inst) }

// Applier pushes a freshly aggregated value onto the target object.
// It is arbitrary user code and may not be idempotent, which is why the
// manager guarantees exactly one call per affected effect per mutation.
type Applier interface {
	Apply(obj Object, value Value)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(obj Object, value Value)

func (f ApplierFunc) Apply(obj Object, value Value) { f(obj, value) }

// Effect is a reusable aggregation scheme for one kind of object
// manipulation. Immutable after registration.
type Effect struct {
	ID      string
	Default Value // aggregation seed when zero instances are active
	Reduce  Reducer
	Apply   Applier
}

// EffectInstance is one concrete application of an effect: an ordered
// mapping of instance data plus the reserved lifecycle fields. Each
// instance is owned by exactly one aura instance and never shared.
type EffectInstance struct {
	fields *Fields
}

// NewEffectInstance wraps fields into an effect instance. A nil fields
// mapping is replaced with an empty one.
func NewEffectInstance(fields *Fields) *EffectInstance {
	if fields == nil {
		fields = NewFields()
	}
	return &EffectInstance{fields: fields}
}

// Fields returns the instance data mapping.
func (ei *EffectInstance) Fields() *Fields { return ei.fields }

// Get returns the value for key and whether it is present.
func (ei *EffectInstance) Get(key string) (Value, bool) { return ei.fields.Get(key) }

// Duration returns the auto-removal delay and whether the reserved
// Duration field is set to a number.
func (ei *EffectInstance) Duration() (time.Duration, bool) {
	return ei.secondsField(FieldDuration)
}

// TickEvery returns the forced-recompute interval and whether the reserved
// Tick field is set to a number.
func (ei *EffectInstance) TickEvery() (time.Duration, bool) {
	return ei.secondsField(FieldTick)
}

// Cleanup reports whether the reserved Cleanup flag is set.
func (ei *EffectInstance) Cleanup() bool {
	v, ok := ei.fields.Get(FieldCleanup)
	return ok && v.Bool()
}

func (ei *EffectInstance) secondsField(key string) (time.Duration, bool) {
	v, ok := ei.fields.Get(key)
	if !ok || v.Kind() != KindNumber {
		return 0, false
	}
	return time.Duration(v.Num() * float64(time.Second)), true
}
