// Package pose maps pose names to positional offsets, body lean, limb
// stance variants, and the canonical filename stem each pose is stored
// under.
package pose

// Vocabulary is the fixed set of renderable pose names.
var Vocabulary = []string{"idle", "walk", "punch", "kick", "jump", "special"}

// offsets and leans are per-unit-scale displacement tables. Any name
// outside the vocabulary maps to the idle entry (zero).
var offsets = map[string][2]int{
	"idle":    {0, 0},
	"walk":    {2, 0},
	"punch":   {3, -2},
	"kick":    {1, -1},
	"jump":    {0, -8},
	"special": {2, -4},
}

var leans = map[string]int{
	"idle":    0,
	"walk":    1,
	"punch":   3,
	"kick":    -2,
	"jump":    0,
	"special": 2,
}

// Offset returns the (dx, dy) displacement for a pose at the given
// canvas scale. Pure and total: unknown pose names yield (0, 0).
func Offset(pose string, scale int) (int, int) {
	o := offsets[pose]
	return o[0] * scale, o[1] * scale
}

// Lean returns the horizontal body lean for a pose at the given canvas
// scale. Pure and total: unknown pose names yield 0.
func Lean(pose string, scale int) int {
	return leans[pose] * scale
}

// CanonicalStem maps a requested pose name to the filename stem it is
// stored under. punch, kick and special all alias to "attack"; requests
// that collide on the same stem are last-write-wins by contract.
func CanonicalStem(pose string) string {
	switch pose {
	case "punch", "kick", "special":
		return "attack"
	}
	return pose
}

// CanonicalStems maps requested pose names to stored stems, deduplicated
// in request order so aliased poses resolve to one file each.
func CanonicalStems(poses []string) []string {
	seen := make(map[string]bool, len(poses))
	var stems []string
	for _, p := range poses {
		stem := CanonicalStem(p)
		if !seen[stem] {
			seen[stem] = true
			stems = append(stems, stem)
		}
	}
	return stems
}

// LegStance selects the leg geometry variant for a pose.
type LegStance int

const (
	LegsStanding LegStance = iota // both legs planted
	LegsExtendedKick              // one standing leg, one extended
	LegsBentJump                  // both legs bent mid-air
)

// ArmStance selects the arm geometry variant for a pose.
type ArmStance int

const (
	ArmsAtSides        ArmStance = iota // default hanging arms
	ArmsExtendedStrike                  // one arm extended with a fist
	ArmsDramatic                        // asymmetric special-move arms
)

// LegStyle returns the leg variant for a pose. Selection is by exact
// name, so anything outside the vocabulary draws the standing variant.
func LegStyle(pose string) LegStance {
	switch pose {
	case "kick":
		return LegsExtendedKick
	case "jump":
		return LegsBentJump
	}
	return LegsStanding
}

// ArmStyle returns the arm variant for a pose, by exact name.
func ArmStyle(pose string) ArmStance {
	switch pose {
	case "punch":
		return ArmsExtendedStrike
	case "special":
		return ArmsDramatic
	}
	return ArmsAtSides
}
