package archetype

// BodyType classifies the overall build and drives limb/torso widths.
type BodyType string

const (
	Lean   BodyType = "lean"
	Medium BodyType = "medium"
	Heavy  BodyType = "heavy"
	Tall   BodyType = "tall"
)

// MuscleLevel controls decorative muscle definition on the torso.
type MuscleLevel string

const (
	MuscleLow    MuscleLevel = "low"
	MuscleMedium MuscleLevel = "medium"
	MuscleHigh   MuscleLevel = "high"
)

// Proportions are the head/torso/legs height fractions of the canvas.
// The fractions are kept raw and are not required to sum to 1.0;
// normalizing them would change the pixel height of every body part in
// already-shipped art.
type Proportions struct {
	Head  float64
	Torso float64
	Legs  float64
}

// Archetype bundles the body parameters for one fighter class.
type Archetype struct {
	Name        string
	BodyType    BodyType
	Stance      string
	Proportions Proportions
	Muscle      MuscleLevel
}

// DefaultName is the archetype used for any unknown lookup.
const DefaultName = "balanced"

var builtins = map[string]Archetype{
	"balanced": {
		Name:        "balanced",
		BodyType:    Medium,
		Stance:      "neutral",
		Proportions: Proportions{Head: 0.12, Torso: 0.45, Legs: 0.43},
		Muscle:      MuscleMedium,
	},
	"rushdown": {
		Name:        "rushdown",
		BodyType:    Lean,
		Stance:      "forward",
		Proportions: Proportions{Head: 0.11, Torso: 0.44, Legs: 0.45},
		Muscle:      MuscleLow,
	},
	"grappler": {
		Name:        "grappler",
		BodyType:    Heavy,
		Stance:      "wide",
		Proportions: Proportions{Head: 0.10, Torso: 0.50, Legs: 0.40},
		Muscle:      MuscleHigh,
	},
	"zoner": {
		Name:        "zoner",
		BodyType:    Tall,
		Stance:      "defensive",
		Proportions: Proportions{Head: 0.13, Torso: 0.42, Legs: 0.45},
		Muscle:      MuscleMedium,
	},
	"technical": {
		Name:        "technical",
		BodyType:    Medium,
		Stance:      "precise",
		Proportions: Proportions{Head: 0.12, Torso: 0.43, Legs: 0.45},
		Muscle:      MuscleMedium,
	},
}

// characterArchetypes is the static character→archetype table used by
// the batch orchestrator. Characters not listed default to balanced.
var characterArchetypes = map[string]string{
	"ryu":        "balanced",
	"ken":        "rushdown",
	"chun_li":    "technical",
	"zangief":    "grappler",
	"sagat":      "zoner",
	"lei_wulong": "technical",
	"akuma":      "technical",
	"cammy":      "rushdown",
	"guile":      "zoner",
	"dhalsim":    "zoner",
	"blanka":     "rushdown",
	"e_honda":    "grappler",
}

// Registry holds the shipped archetypes. Read-only after construction.
type Registry struct {
	defs map[string]Archetype
}

// NewRegistry returns a registry with the five shipped archetypes.
func NewRegistry() *Registry {
	return &Registry{defs: builtins}
}

// Resolve returns the archetype for a name, defaulting to balanced for
// unknown names. Never fails.
func (rg *Registry) Resolve(name string) Archetype {
	if a, ok := rg.defs[name]; ok {
		return a
	}
	return rg.defs[DefaultName]
}

// CharacterArchetype returns the archetype name for a character id and
// whether the character is listed in the static table.
func CharacterArchetype(characterID string) (string, bool) {
	name, ok := characterArchetypes[characterID]
	return name, ok
}

// ForCharacter maps a character id to its archetype name, defaulting to
// balanced for characters not in the table.
func ForCharacter(characterID string) string {
	if name, ok := CharacterArchetype(characterID); ok {
		return name
	}
	return DefaultName
}

// Names returns the registered archetype names.
func (rg *Registry) Names() []string {
	names := make([]string, 0, len(rg.defs))
	for n := range rg.defs {
		names = append(names, n)
	}
	return names
}
