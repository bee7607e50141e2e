package pose

import "testing"

func TestOffsetTotalOverVocabulary(t *testing.T) {
	want := map[string][2]int{
		"idle":    {0, 0},
		"walk":    {2, 0},
		"punch":   {3, -2},
		"kick":    {1, -1},
		"jump":    {0, -8},
		"special": {2, -4},
	}
	for _, name := range Vocabulary {
		dx, dy := Offset(name, 1)
		if dx != want[name][0] || dy != want[name][1] {
			t.Errorf("Offset(%q, 1) = (%d, %d), want (%d, %d)",
				name, dx, dy, want[name][0], want[name][1])
		}
	}
}

func TestOffsetScalesProportionally(t *testing.T) {
	for _, name := range Vocabulary {
		dx1, dy1 := Offset(name, 1)
		dx4, dy4 := Offset(name, 4)
		if dx4 != dx1*4 || dy4 != dy1*4 {
			t.Errorf("Offset(%q, 4) = (%d, %d), want (%d, %d)", name, dx4, dy4, dx1*4, dy1*4)
		}
	}
}

func TestOffsetUnknownPose(t *testing.T) {
	for _, name := range []string{"", "attack", "krouch", "IDLE"} {
		if dx, dy := Offset(name, 4); dx != 0 || dy != 0 {
			t.Errorf("Offset(%q, 4) = (%d, %d), want (0, 0)", name, dx, dy)
		}
	}
}

func TestLean(t *testing.T) {
	cases := []struct {
		pose  string
		scale int
		want  int
	}{
		{"idle", 1, 0},
		{"walk", 1, 1},
		{"punch", 4, 12},
		{"kick", 4, -8},
		{"jump", 4, 0},
		{"special", 1, 2},
		{"attack", 4, 0},
		{"nonsense", 1, 0},
	}
	for _, c := range cases {
		if got := Lean(c.pose, c.scale); got != c.want {
			t.Errorf("Lean(%q, %d) = %d, want %d", c.pose, c.scale, got, c.want)
		}
	}
}

func TestCanonicalStem(t *testing.T) {
	cases := map[string]string{
		"idle":    "idle",
		"walk":    "walk",
		"jump":    "jump",
		"attack":  "attack",
		"punch":   "attack",
		"kick":    "attack",
		"special": "attack",
		"krouch":  "krouch",
	}
	for in, want := range cases {
		if got := CanonicalStem(in); got != want {
			t.Errorf("CanonicalStem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalStemsDedup(t *testing.T) {
	got := CanonicalStems([]string{"idle", "punch", "kick", "special", "idle", "jump"})
	want := []string{"idle", "attack", "jump"}
	if len(got) != len(want) {
		t.Fatalf("CanonicalStems = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CanonicalStems = %v, want %v", got, want)
		}
	}
}

func TestLimbVariantSelection(t *testing.T) {
	if got := LegStyle("kick"); got != LegsExtendedKick {
		t.Errorf("LegStyle(kick) = %v, want LegsExtendedKick", got)
	}
	if got := LegStyle("jump"); got != LegsBentJump {
		t.Errorf("LegStyle(jump) = %v, want LegsBentJump", got)
	}
	if got := ArmStyle("punch"); got != ArmsExtendedStrike {
		t.Errorf("ArmStyle(punch) = %v, want ArmsExtendedStrike", got)
	}
	if got := ArmStyle("special"); got != ArmsDramatic {
		t.Errorf("ArmStyle(special) = %v, want ArmsDramatic", got)
	}

	// Typos and the stored stem name select the default variants.
	for _, name := range []string{"kik", "attack", "idle", ""} {
		if got := LegStyle(name); got != LegsStanding {
			t.Errorf("LegStyle(%q) = %v, want LegsStanding", name, got)
		}
		if got := ArmStyle(name); got != ArmsAtSides {
			t.Errorf("ArmStyle(%q) = %v, want ArmsAtSides", name, got)
		}
	}
}
