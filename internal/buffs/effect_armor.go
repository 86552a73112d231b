package buffs

import "github.com/udisondev/aurago/internal/aura"

// ArmorBonusEffect sums flat defense bonuses from all active instances.
// Instance field "Amount" (number).
func ArmorBonusEffect() *aura.Effect {
	return &aura.Effect{
		ID:      EffectArmorBonus,
		Default: aura.Number(0),
		Reduce: aura.ReducerFunc(func(acc aura.Value, inst *aura.EffectInstance) aura.Value {
			amount, _ := inst.Get(FieldAmount)
			return aura.Number(acc.Num() + amount.Num())
		}),
		Apply: aura.ApplierFunc(func(obj aura.Object, v aura.Value) {
			if t, ok := obj.(Armored); ok {
				t.SetArmorBonus(v.Num())
			}
		}),
	}
}
