package aura

import (
	"errors"
	"testing"
)

func noopEffect(id string) *Effect {
	return &Effect{
		ID:      id,
		Default: Number(0),
		Reduce:  ReducerFunc(func(acc Value, _ *EffectInstance) Value { return acc }),
		Apply:   ApplierFunc(func(_ Object, _ Value) {}),
	}
}

func noopAura() Constructor {
	return ConstructorFunc(func(_ *Fields) (*Template, error) {
		return NewTemplate().AddEffect("x", nil), nil
	})
}

func TestRegistry_DuplicateEffect(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterEffect(noopEffect("Armor")); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	err := r.RegisterEffect(noopEffect("Armor"))
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestRegistry_DuplicateAura(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterAura("Stun", noopAura()); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	err := r.RegisterAura("Stun", noopAura())
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestRegistry_Lookups(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterEffect(noopEffect("Armor")); err != nil {
		t.Fatalf("RegisterEffect: %v", err)
	}
	if err := r.RegisterAura("Stun", noopAura()); err != nil {
		t.Fatalf("RegisterAura: %v", err)
	}

	if _, err := r.Effect("Armor"); err != nil {
		t.Errorf("registered effect lookup: %v", err)
	}
	if _, err := r.Aura("Stun"); err != nil {
		t.Errorf("registered aura lookup: %v", err)
	}

	if _, err := r.Effect("Ghost"); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("expected ErrUnknownEffect, got %v", err)
	}
	if _, err := r.Aura("Ghost"); !errors.Is(err, ErrUnknownAura) {
		t.Errorf("expected ErrUnknownAura, got %v", err)
	}
}

func TestRegistry_RejectsIncomplete(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterEffect(&Effect{ID: "NoFuncs"}); err == nil {
		t.Error("effect without reduce/apply should be rejected")
	}
	if err := r.RegisterEffect(noopEffect("")); err == nil {
		t.Error("effect without id should be rejected")
	}
	if err := r.RegisterAura("", noopAura()); err == nil {
		t.Error("aura without name should be rejected")
	}
	if err := r.RegisterAura("NilCtor", nil); err == nil {
		t.Error("aura without constructor should be rejected")
	}
}
