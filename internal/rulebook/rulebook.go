// Package rulebook loads the immutable species, ability and effect catalog
// from YAML and links keys to shared definitions.
package rulebook

import (
	_ "embed"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

//go:embed default.yaml
var defaultData []byte

// Document is the on-disk layout of a rulebook file
type Document struct {
	Effects   []*effects.Definition `yaml:"effects"`
	Abilities []*ability.Definition `yaml:"abilities"`
	Species   []*combatant.Species  `yaml:"species"`
}

// Rulebook is a linked, read-only catalog. Definitions it returns are shared
// by every combatant and must not be mutated.
type Rulebook struct {
	effects   map[string]*effects.Definition
	abilities map[string]*ability.Definition
	species   map[string]*combatant.Species
}

// LoadDefault returns the rulebook compiled into the binary
func LoadDefault() (*Rulebook, error) {
	return Parse(defaultData)
}

// Load reads a rulebook file; an empty path loads the default
func Load(path string) (*Rulebook, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scerr.Wrapf(err, "reading rulebook %s", path)
	}
	return Parse(data)
}

// Parse decodes and links a rulebook document
func Parse(data []byte) (*Rulebook, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, scerr.WrapWithCode(err, scerr.CodeValidation, "parsing rulebook")
	}
	return New(&doc)
}

// New validates and links a decoded document
func New(doc *Document) (*Rulebook, error) {
	if doc == nil {
		return nil, scerr.InvalidArgument("rulebook document cannot be nil")
	}

	rb := &Rulebook{
		effects:   make(map[string]*effects.Definition, len(doc.Effects)),
		abilities: make(map[string]*ability.Definition, len(doc.Abilities)),
		species:   make(map[string]*combatant.Species, len(doc.Species)),
	}

	for _, def := range doc.Effects {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rb.effects[def.Key]; dup {
			return nil, scerr.Validationf("duplicate effect %q", def.Key).WithMeta("effect", def.Key)
		}
		rb.effects[def.Key] = def
	}

	for _, def := range doc.Abilities {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rb.abilities[def.Key]; dup {
			return nil, scerr.Validationf("duplicate ability %q", def.Key).WithMeta("ability", def.Key)
		}
		rb.linkEffects(def)
		rb.abilities[def.Key] = def
	}

	for _, sp := range doc.Species {
		if err := validateSpecies(sp); err != nil {
			return nil, err
		}
		if _, dup := rb.species[sp.Key]; dup {
			return nil, scerr.Validationf("duplicate species %q", sp.Key).WithMeta("species", sp.Key)
		}
		rb.linkAbilities(sp)
		rb.species[sp.Key] = sp
	}

	log.Printf("[RULEBOOK] Loaded %d species, %d abilities, %d effects",
		len(rb.species), len(rb.abilities), len(rb.effects))
	return rb, nil
}

// linkEffects resolves effect keys positionally. A missing key leaves a nil
// entry that resolution skips.
func (rb *Rulebook) linkEffects(def *ability.Definition) {
	def.Effects = make([]*effects.Definition, len(def.EffectKeys))
	for i, key := range def.EffectKeys {
		eff, ok := rb.effects[key]
		if !ok {
			log.Printf("[RULEBOOK] Ability %s references unknown effect %s", def.Key, key)
			continue
		}
		def.Effects[i] = eff
	}
}

func (rb *Rulebook) linkAbilities(sp *combatant.Species) {
	sp.Abilities = make([]*ability.Definition, 0, len(sp.AbilityKeys))
	for _, key := range sp.AbilityKeys {
		def, ok := rb.abilities[key]
		if !ok {
			log.Printf("[RULEBOOK] Species %s references unknown ability %s", sp.Key, key)
			continue
		}
		sp.Abilities = append(sp.Abilities, def)
	}
}

func validateSpecies(sp *combatant.Species) error {
	if sp == nil {
		return scerr.InvalidArgument("species cannot be nil")
	}
	if sp.Key == "" {
		return scerr.Validation("species must have a key")
	}
	if !sp.Element.IsValid() {
		return scerr.Validationf("species %s has unknown element %q", sp.Key, sp.Element).WithMeta("species", sp.Key)
	}
	if sp.Base.HP <= 0 {
		return scerr.Validationf("species %s needs positive base HP", sp.Key).WithMeta("species", sp.Key)
	}
	return nil
}

// Species looks up a species by key
func (rb *Rulebook) Species(key string) (*combatant.Species, error) {
	sp, ok := rb.species[key]
	if !ok {
		return nil, scerr.NotFoundf("species %q not found", key).WithMeta("species", key)
	}
	return sp, nil
}

// Ability looks up an ability by key
func (rb *Rulebook) Ability(key string) (*ability.Definition, error) {
	def, ok := rb.abilities[key]
	if !ok {
		return nil, scerr.NotFoundf("ability %q not found", key).WithMeta("ability", key)
	}
	return def, nil
}

// Effect looks up an effect by key
func (rb *Rulebook) Effect(key string) (*effects.Definition, error) {
	def, ok := rb.effects[key]
	if !ok {
		return nil, scerr.NotFoundf("effect %q not found", key).WithMeta("effect", key)
	}
	return def, nil
}

// SpeciesKeys lists every species key in sorted order
func (rb *Rulebook) SpeciesKeys() []string {
	keys := make([]string, 0, len(rb.species))
	for k := range rb.species {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
