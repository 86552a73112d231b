package buffs

import (
	"fmt"

	"github.com/udisondev/aurago/internal/aura"
)

// NewStunAura builds a stun lasting "Duration" seconds (default 2).
func NewStunAura(settings *aura.Fields) (*aura.Template, error) {
	dur, err := numSetting(settings, aura.FieldDuration, 2)
	if err != nil {
		return nil, err
	}
	if dur <= 0 {
		return nil, fmt.Errorf("stun duration must be positive, got %g", dur)
	}
	return aura.NewTemplate().
		SetShared(aura.FieldDuration, aura.Number(dur)).
		AddEffect(EffectStunned, nil), nil
}

// NewHasteAura builds a speed boost. Settings: "Multiplier" (default 1.5,
// must be positive), "Duration" seconds (default 5).
func NewHasteAura(settings *aura.Fields) (*aura.Template, error) {
	mult, err := numSetting(settings, FieldMultiplier, 1.5)
	if err != nil {
		return nil, err
	}
	if mult <= 0 {
		return nil, fmt.Errorf("haste multiplier must be positive, got %g", mult)
	}
	dur, err := numSetting(settings, aura.FieldDuration, 5)
	if err != nil {
		return nil, err
	}
	if dur <= 0 {
		return nil, fmt.Errorf("haste duration must be positive, got %g", dur)
	}
	inst := aura.NewEffectInstance(aura.NewFields().Set(FieldMultiplier, aura.Number(mult)))
	return aura.NewTemplate().
		SetShared(aura.FieldDuration, aura.Number(dur)).
		AddEffect(EffectMoveSpeed, inst), nil
}

// NewIronSkinAura builds a flat armor bonus. Settings: "Amount" (default
// 50), "Duration" seconds (optional; omitted means until removed).
func NewIronSkinAura(settings *aura.Fields) (*aura.Template, error) {
	amount, err := numSetting(settings, FieldAmount, 50)
	if err != nil {
		return nil, err
	}
	inst := aura.NewEffectInstance(aura.NewFields().Set(FieldAmount, aura.Number(amount)))
	t := aura.NewTemplate().AddEffect(EffectArmorBonus, inst)

	if settings.Has(aura.FieldDuration) {
		dur, err := numSetting(settings, aura.FieldDuration, 0)
		if err != nil {
			return nil, err
		}
		if dur <= 0 {
			return nil, fmt.Errorf("iron skin duration must be positive, got %g", dur)
		}
		t.SetShared(aura.FieldDuration, aura.Number(dur))
	}
	return t, nil
}

// NewRegenerationAura builds a ticking heal-over-time. Settings:
// "PerSecond" (default 5), "Duration" seconds (default 10), "Tick"
// seconds (default 1).
func NewRegenerationAura(settings *aura.Fields) (*aura.Template, error) {
	rate, err := numSetting(settings, FieldPerSecond, 5)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("regen rate must be positive, got %g", rate)
	}
	dur, err := numSetting(settings, aura.FieldDuration, 10)
	if err != nil {
		return nil, err
	}
	tick, err := numSetting(settings, aura.FieldTick, 1)
	if err != nil {
		return nil, err
	}
	if tick <= 0 {
		return nil, fmt.Errorf("regen tick must be positive, got %g", tick)
	}
	inst := aura.NewEffectInstance(aura.NewFields().Set(FieldPerSecond, aura.Number(rate)))
	return aura.NewTemplate().
		SetShared(aura.FieldDuration, aura.Number(dur)).
		SetShared(aura.FieldTick, aura.Number(tick)).
		AddEffect(EffectRegen, inst), nil
}

// NewArcaneShieldAura builds an absorption shield with teardown. Settings:
// "Points" (default 100), "Duration" seconds (default 8). The shield
// instance carries Cleanup so breaking it produces one apply computed
// without it before the recompute.
func NewArcaneShieldAura(settings *aura.Fields) (*aura.Template, error) {
	points, err := numSetting(settings, FieldPoints, 100)
	if err != nil {
		return nil, err
	}
	if points <= 0 {
		return nil, fmt.Errorf("shield points must be positive, got %g", points)
	}
	dur, err := numSetting(settings, aura.FieldDuration, 8)
	if err != nil {
		return nil, err
	}
	inst := aura.NewEffectInstance(aura.NewFields().
		Set(FieldPoints, aura.Number(points)).
		Set(aura.FieldCleanup, aura.Bool(true)))
	return aura.NewTemplate().
		SetShared(aura.FieldDuration, aura.Number(dur)).
		AddEffect(EffectShield, inst), nil
}

// NewBattleFuryAura bundles haste and armor under one removable handle.
// Settings: "Multiplier" (default 1.2), "Amount" (default 30), "Duration"
// seconds (default 15), shared by both contained instances.
func NewBattleFuryAura(settings *aura.Fields) (*aura.Template, error) {
	mult, err := numSetting(settings, FieldMultiplier, 1.2)
	if err != nil {
		return nil, err
	}
	if mult <= 0 {
		return nil, fmt.Errorf("fury multiplier must be positive, got %g", mult)
	}
	amount, err := numSetting(settings, FieldAmount, 30)
	if err != nil {
		return nil, err
	}
	dur, err := numSetting(settings, aura.FieldDuration, 15)
	if err != nil {
		return nil, err
	}
	speed := aura.NewEffectInstance(aura.NewFields().Set(FieldMultiplier, aura.Number(mult)))
	armor := aura.NewEffectInstance(aura.NewFields().Set(FieldAmount, aura.Number(amount)))
	return aura.NewTemplate().
		SetShared(aura.FieldDuration, aura.Number(dur)).
		AddEffect(EffectMoveSpeed, speed).
		AddEffect(EffectArmorBonus, armor), nil
}

// numSetting reads an optional numeric setting, falling back to def.
func numSetting(settings *aura.Fields, key string, def float64) (float64, error) {
	v, ok := settings.Get(key)
	if !ok {
		return def, nil
	}
	if v.Kind() != aura.KindNumber {
		return 0, fmt.Errorf("setting %q must be a number, got %s", key, v)
	}
	return v.Num(), nil
}
