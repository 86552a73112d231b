package aura

import "testing"

func TestFields_InsertionOrder(t *testing.T) {
	f := NewFields().
		Set("c", Number(3)).
		Set("a", Number(1)).
		Set("b", Number(2))

	want := []string{"c", "a", "b"}
	got := f.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected keys %v in insertion order, got %v", want, got)
		}
	}
}

func TestFields_OverwriteKeepsPosition(t *testing.T) {
	f := NewFields().
		Set("a", Number(1)).
		Set("b", Number(2)).
		Set("a", Number(10))

	if f.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", f.Len())
	}
	if f.Keys()[0] != "a" {
		t.Errorf("overwritten key must keep its position, got %v", f.Keys())
	}
	v, _ := f.Get("a")
	if v.Num() != 10 {
		t.Errorf("expected overwritten value 10, got %s", v)
	}
}

func TestFields_Clone(t *testing.T) {
	f := NewFields().Set("a", Number(1))
	c := f.Clone()
	c.Set("b", Number(2))

	if f.Has("b") {
		t.Error("mutating the clone must not touch the original")
	}
	if !c.Has("a") {
		t.Error("clone must carry the original keys")
	}
}

func TestFields_NilSafe(t *testing.T) {
	var f *Fields
	if f.Len() != 0 || f.Has("x") {
		t.Error("nil Fields should behave as empty")
	}
	if _, ok := f.Get("x"); ok {
		t.Error("nil Fields Get should report absent")
	}
	f.Range(func(string, Value) bool {
		t.Error("nil Fields Range should not call fn")
		return false
	})
}

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
		str  string
	}{
		{"null", Value{}, KindNull, "null"},
		{"number", Number(1.5), KindNumber, "1.5"},
		{"bool", Bool(true), KindBool, "true"},
		{"string", String("hi"), KindString, "hi"},
		{"map", Map(NewFields().Set("k", Number(1))), KindMap, "{k: 1}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.v.Kind() != tc.kind {
				t.Errorf("expected kind %d, got %d", tc.kind, tc.v.Kind())
			}
			if tc.v.String() != tc.str {
				t.Errorf("expected %q, got %q", tc.str, tc.v.String())
			}
		})
	}
}

func TestValue_CrossKindAccessors(t *testing.T) {
	v := String("not a number")
	if v.Num() != 0 || v.Bool() || v.Map() != nil {
		t.Error("mismatched accessors must return zero values")
	}
	if Number(4).Str() != "" {
		t.Error("Str on a number must return empty")
	}
}

func TestEffectInstance_ReservedFields(t *testing.T) {
	inst := NewEffectInstance(NewFields().
		Set(FieldDuration, Number(1.5)).
		Set(FieldTick, Number(0.5)).
		Set(FieldCleanup, Bool(true)))

	d, ok := inst.Duration()
	if !ok || d.Seconds() != 1.5 {
		t.Errorf("expected Duration 1.5s, got %v (%t)", d, ok)
	}
	tick, ok := inst.TickEvery()
	if !ok || tick.Seconds() != 0.5 {
		t.Errorf("expected Tick 0.5s, got %v (%t)", tick, ok)
	}
	if !inst.Cleanup() {
		t.Error("expected Cleanup set")
	}

	bare := NewEffectInstance(nil)
	if _, ok := bare.Duration(); ok {
		t.Error("missing Duration must report absent")
	}
	if bare.Cleanup() {
		t.Error("missing Cleanup must report false")
	}

	weird := NewEffectInstance(NewFields().Set(FieldDuration, String("soon")))
	if _, ok := weird.Duration(); ok {
		t.Error("non-numeric Duration must report absent")
	}
}
