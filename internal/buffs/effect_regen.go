package buffs

import "github.com/udisondev/aurago/internal/aura"

// RegenEffect sums health regeneration rates. The Regeneration aura arms
// a Tick timer so the rate is re-applied every interval even when the
// active set is static, letting hosts with decaying regen re-sample it.
// Instance field "PerSecond" (number).
func RegenEffect() *aura.Effect {
	return &aura.Effect{
		ID:      EffectRegen,
		Default: aura.Number(0),
		Reduce: aura.ReducerFunc(func(acc aura.Value, inst *aura.EffectInstance) aura.Value {
			rate, _ := inst.Get(FieldPerSecond)
			return aura.Number(acc.Num() + rate.Num())
		}),
		Apply: aura.ApplierFunc(func(obj aura.Object, v aura.Value) {
			if t, ok := obj.(Regenerating); ok {
				t.SetRegenRate(v.Num())
			}
		}),
	}
}
