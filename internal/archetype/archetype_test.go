package archetype

import "testing"

func TestResolveFallsBackToBalanced(t *testing.T) {
	rg := NewRegistry()
	got := rg.Resolve("shoto_prime")
	if got.Name != "balanced" {
		t.Errorf("Resolve(unknown) = %q, want balanced", got.Name)
	}
}

func TestBuiltinValues(t *testing.T) {
	rg := NewRegistry()

	g := rg.Resolve("grappler")
	if g.BodyType != Heavy || g.Muscle != MuscleHigh {
		t.Errorf("grappler = %+v, want heavy body, high muscle", g)
	}
	// Fractions are preserved raw, exactly as defined.
	if g.Proportions.Head != 0.10 || g.Proportions.Torso != 0.50 || g.Proportions.Legs != 0.40 {
		t.Errorf("grappler proportions = %+v", g.Proportions)
	}

	z := rg.Resolve("zoner")
	if z.BodyType != Tall || z.Stance != "defensive" {
		t.Errorf("zoner = %+v", z)
	}

	if len(rg.Names()) != 5 {
		t.Errorf("registry has %d archetypes, want 5", len(rg.Names()))
	}
}

func TestCharacterArchetypeListing(t *testing.T) {
	if name, ok := CharacterArchetype("zangief"); !ok || name != "grappler" {
		t.Errorf("CharacterArchetype(zangief) = %q, %v", name, ok)
	}
	if _, ok := CharacterArchetype("dan"); ok {
		t.Error("CharacterArchetype(dan) = listed, want unlisted")
	}
}

func TestForCharacter(t *testing.T) {
	cases := map[string]string{
		"ryu":        "balanced",
		"ken":        "rushdown",
		"chun_li":    "technical",
		"zangief":    "grappler",
		"sagat":      "zoner",
		"e_honda":    "grappler",
		"dan":        "balanced", // not in the table
		"":           "balanced",
	}
	for id, want := range cases {
		if got := ForCharacter(id); got != want {
			t.Errorf("ForCharacter(%q) = %q, want %q", id, got, want)
		}
	}
}
