package aura

import "errors"

var (
	// ErrDuplicateRegistration is returned when an effect or aura id is
	// registered twice.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrUnknownEffect is returned when an effect id is not registered.
	// Aura templates referencing unregistered effects surface this at
	// application time, not at aura registration.
	ErrUnknownEffect = errors.New("unknown effect")

	// ErrUnknownAura is returned when an aura name is not registered.
	ErrUnknownAura = errors.New("unknown aura")

	// ErrInvalidSettings wraps a constructor failure. The constructor's
	// own error is joined in and stays inspectable via errors.Is/As.
	ErrInvalidSettings = errors.New("invalid aura settings")
)
