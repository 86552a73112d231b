package buffs

import (
	"log/slog"

	"github.com/udisondev/aurago/internal/aura"
)

// StunnedEffect blocks actions while one or more stun contributions are
// active. One-or-more aggregation: any active instance yields true, so
// removing one of two overlapping stuns keeps the object stunned.
func StunnedEffect() *aura.Effect {
	return &aura.Effect{
		ID:      EffectStunned,
		Default: aura.Bool(false),
		Reduce: aura.ReducerFunc(func(_ aura.Value, _ *aura.EffectInstance) aura.Value {
			return aura.Bool(true)
		}),
		Apply: aura.ApplierFunc(func(obj aura.Object, v aura.Value) {
			t, ok := obj.(Stunnable)
			if !ok {
				return
			}
			t.SetStunned(v.Bool())
			slog.Debug("stun state applied", "stunned", v.Bool())
		}),
	}
}
