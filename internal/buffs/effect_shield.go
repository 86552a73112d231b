package buffs

import (
	"log/slog"

	"github.com/udisondev/aurago/internal/aura"
)

// ShieldEffect grants the strongest active absorption shield; weaker
// shields do not stack. Instance field "Points" (number). The shield aura
// sets Cleanup, so removal produces one teardown apply computed without
// the departing shield before the normal recompute.
func ShieldEffect() *aura.Effect {
	return &aura.Effect{
		ID:      EffectShield,
		Default: aura.Number(0),
		Reduce: aura.ReducerFunc(func(acc aura.Value, inst *aura.EffectInstance) aura.Value {
			points, _ := inst.Get(FieldPoints)
			if points.Num() > acc.Num() {
				return points
			}
			return acc
		}),
		Apply: aura.ApplierFunc(func(obj aura.Object, v aura.Value) {
			t, ok := obj.(Shieldable)
			if !ok {
				return
			}
			t.SetShieldPoints(v.Num())
			if v.Num() == 0 {
				slog.Debug("shield dropped")
			}
		}),
	}
}
