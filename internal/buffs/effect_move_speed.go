package buffs

import "github.com/udisondev/aurago/internal/aura"

// MoveSpeedEffect multiplies movement speed by every active contribution.
// Instance field "Multiplier" (number); instances without it contribute
// a neutral 1.0.
func MoveSpeedEffect() *aura.Effect {
	return &aura.Effect{
		ID:      EffectMoveSpeed,
		Default: aura.Number(1.0),
		Reduce: aura.ReducerFunc(func(acc aura.Value, inst *aura.EffectInstance) aura.Value {
			mult, ok := inst.Get(FieldMultiplier)
			if !ok || mult.Kind() != aura.KindNumber {
				return acc
			}
			return aura.Number(acc.Num() * mult.Num())
		}),
		Apply: aura.ApplierFunc(func(obj aura.Object, v aura.Value) {
			if t, ok := obj.(Mover); ok {
				t.SetMoveSpeedMultiplier(v.Num())
			}
		}),
	}
}
