package buffs

// Per-effect target capabilities. Appliers type-assert the object handle
// against these; an object that lacks the capability is left untouched.

// Stunnable objects can be action-blocked.
type Stunnable interface {
	SetStunned(stunned bool)
}

// Mover objects have adjustable movement speed.
type Mover interface {
	SetMoveSpeedMultiplier(mult float64)
}

// Armored objects accept a flat defense bonus.
type Armored interface {
	SetArmorBonus(bonus float64)
}

// Regenerating objects accept a health regeneration rate.
type Regenerating interface {
	SetRegenRate(perSecond float64)
}

// Shieldable objects accept an absorption shield.
type Shieldable interface {
	SetShieldPoints(points float64)
}
