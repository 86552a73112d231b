// Package buffs is the built-in effect and aura catalogue: the stock
// one-or-more, sum, product and max aggregation patterns made concrete,
// plus constructors for the common timed auras built on them.
package buffs

import "github.com/udisondev/aurago/internal/aura"

// Effect ids.
const (
	EffectStunned    = "Stunned"
	EffectMoveSpeed  = "MoveSpeed"
	EffectArmorBonus = "ArmorBonus"
	EffectRegen      = "Regen"
	EffectShield     = "Shield"
)

// Aura names.
const (
	AuraStun         = "Stun"
	AuraHaste        = "Haste"
	AuraIronSkin     = "IronSkin"
	AuraRegeneration = "Regeneration"
	AuraArcaneShield = "ArcaneShield"
	AuraBattleFury   = "BattleFury"
)

// Instance/settings field names.
const (
	FieldMultiplier = "Multiplier"
	FieldAmount     = "Amount"
	FieldPerSecond  = "PerSecond"
	FieldPoints     = "Points"
)

// RegisterAll registers the full catalogue into reg.
func RegisterAll(reg *aura.Registry) error {
	effects := []*aura.Effect{
		StunnedEffect(),
		MoveSpeedEffect(),
		ArmorBonusEffect(),
		RegenEffect(),
		ShieldEffect(),
	}
	for _, e := range effects {
		if err := reg.RegisterEffect(e); err != nil {
			return err
		}
	}

	auras := map[string]aura.Constructor{
		AuraStun:         aura.ConstructorFunc(NewStunAura),
		AuraHaste:        aura.ConstructorFunc(NewHasteAura),
		AuraIronSkin:     aura.ConstructorFunc(NewIronSkinAura),
		AuraRegeneration: aura.ConstructorFunc(NewRegenerationAura),
		AuraArcaneShield: aura.ConstructorFunc(NewArcaneShieldAura),
		AuraBattleFury:   aura.ConstructorFunc(NewBattleFuryAura),
	}
	for name, c := range auras {
		if err := reg.RegisterAura(name, c); err != nil {
			return err
		}
	}
	return nil
}
