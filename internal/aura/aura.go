package aura

// Constructor builds an aura template from caller settings. Constructors
// are pure: every Build call must return a fresh template whose effect
// instances are not shared with any previous call.
type Constructor interface {
	Build(settings *Fields) (*Template, error)
}

// ConstructorFunc adapts a function to the Constructor interface.
type ConstructorFunc func(settings *Fields) (*Template, error)

func (f ConstructorFunc) Build(settings *Fields) (*Template, error) { return f(settings) }

// TemplateEffect binds one effect instance to the effect it contributes to.
type TemplateEffect struct {
	EffectID string
	Instance *EffectInstance
}

// Template is the output of a Constructor: shared fields plus an ordered
// list of effect instances. Shared fields are replicated into every
// instance at application time; instance-local keys win on conflict.
type Template struct {
	Shared  *Fields
	Effects []TemplateEffect
}

// NewTemplate creates an empty template.
func NewTemplate() *Template {
	return &Template{Shared: NewFields()}
}

// SetShared sets a shared field. Returns t for chaining.
func (t *Template) SetShared(key string, v Value) *Template {
	if t.Shared == nil {
		t.Shared = NewFields()
	}
	t.Shared.Set(key, v)
	return t
}

// AddEffect appends an effect instance. Registration (and therefore fold)
// order within the aura follows AddEffect order. Returns t for chaining.
func (t *Template) AddEffect(effectID string, inst *EffectInstance) *Template {
	if inst == nil {
		inst = NewEffectInstance(nil)
	}
	t.Effects = append(t.Effects, TemplateEffect{EffectID: effectID, Instance: inst})
	return t
}

// boundInstance is one effect instance registered on an object, tagged
// with its effect id and owning aura instance.
type boundInstance struct {
	effectID string
	inst     *EffectInstance
	owner    *AuraInstance
}

// AuraInstance is one concrete application of an aura on an object. It
// owns its effect instances and the timers armed for them; removal of the
// instance removes every contained effect instance.
type AuraInstance struct {
	id       string
	auraName string
	object   Object
	shared   *Fields
	bound    []*boundInstance
	timers   []Timer
}

// ID returns the instance GUID assigned at application time.
func (ai *AuraInstance) ID() string { return ai.id }

// AuraName returns the name of the defining aura.
func (ai *AuraInstance) AuraName() string { return ai.auraName }

// Object returns the handle the instance is applied to.
func (ai *AuraInstance) Object() Object { return ai.object }

// Shared returns the replicated shared fields.
func (ai *AuraInstance) Shared() *Fields { return ai.shared }

// EffectIDs returns the ids of the effects this instance contributes to,
// in registration order.
func (ai *AuraInstance) EffectIDs() []string {
	out := make([]string, len(ai.bound))
	for i, b := range ai.bound {
		out[i] = b.effectID
	}
	return out
}

func (ai *AuraInstance) stopTimers() {
	for _, t := range ai.timers {
		t.Stop()
	}
	ai.timers = nil
}
