package sim

import "testing"

func TestParseBehaviour(t *testing.T) {
	for _, name := range BehaviourNames() {
		b, ok := ParseBehaviour(name)
		if !ok {
			t.Errorf("ParseBehaviour(%q) failed", name)
			continue
		}
		if b.String() != name {
			t.Errorf("ParseBehaviour(%q).String() = %q", name, b.String())
		}
	}

	if b, ok := ParseBehaviour("  Smooth "); !ok || b != BehaviourSmooth {
		t.Errorf("ParseBehaviour should trim and ignore case, got %v, %v", b, ok)
	}
	if _, ok := ParseBehaviour("smoth"); ok {
		t.Error("ParseBehaviour(\"smoth\") should fail")
	}
}

func TestBehaviourImplemented(t *testing.T) {
	if !BehaviourSmooth.Implemented() {
		t.Error("Smooth should be implemented")
	}
	for _, b := range []Behaviour{BehaviourDart, BehaviourSinker, BehaviourWobble, BehaviourRunner, BehaviourPuffer, Behaviour(42)} {
		if b.Implemented() {
			t.Errorf("%s should not be implemented", b)
		}
	}
	if Behaviour(42).String() != "behaviour(42)" {
		t.Errorf("Unknown behaviour String() = %q", Behaviour(42).String())
	}
}

func TestFishType(t *testing.T) {
	ft, ok := ParseFishType("SIMPLE")
	if !ok || ft != FishSimple {
		t.Fatalf("ParseFishType(\"SIMPLE\") = %v, %v", ft, ok)
	}

	r := ft.SpeedRange()
	if r.Min != 20 || r.Max != 40 {
		t.Errorf("SpeedRange() = %+v, expected [20, 40]", r)
	}
	if ft.Behaviour() != BehaviourSmooth {
		t.Errorf("Behaviour() = %s, expected smooth", ft.Behaviour())
	}
	if ft.DefaultY() != 0 {
		t.Errorf("DefaultY() = %v, expected 0", ft.DefaultY())
	}
	if _, ok := ParseFishType("tuna"); ok {
		t.Error("ParseFishType(\"tuna\") should fail")
	}
}
