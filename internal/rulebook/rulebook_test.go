package rulebook_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/rulebook"
)

func TestLoadDefault(t *testing.T) {
	rb, err := rulebook.LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"emberfox", "lumenmoth", "mossback", "shadecat", "tidecrab"}, rb.SpeciesKeys())

	fox, err := rb.Species("emberfox")
	require.NoError(t, err)
	assert.Equal(t, element.Fire, fox.Element)
	assert.Equal(t, 110, fox.Base.Attack)
	require.Len(t, fox.Abilities, 3)
	assert.Equal(t, "ember_bite", fox.Abilities[0].Key)

	burst, err := rb.Ability("flame_burst")
	require.NoError(t, err)
	assert.Equal(t, ability.TargetAllEnemies, burst.TargetType)
	assert.Equal(t, 250*time.Millisecond, burst.TimeBetweenHits)
	assert.Equal(t, 3, burst.Hits())

	cry, err := rb.Ability("war_cry")
	require.NoError(t, err)
	require.Len(t, cry.Effects, 2)
	assert.Equal(t, "attack_up", cry.Effects[0].Key)

	poison, err := rb.Effect("poison")
	require.NoError(t, err)
	assert.Equal(t, 5, poison.StackLimit())
	assert.True(t, poison.ResistedBy(element.Earth))

	breakDef, err := rb.Effect("defense_break")
	require.NoError(t, err)
	assert.Equal(t, []stats.Value{{Type: stats.Defense, Amount: -40, Percentage: true}}, breakDef.Modifiers)

	// Linked definitions are shared, not copied
	bite, err := rb.Ability("ember_bite")
	require.NoError(t, err)
	burn, err := rb.Effect("burn")
	require.NoError(t, err)
	assert.Same(t, burn, bite.Effects[0])
}

func TestLookups_NotFound(t *testing.T) {
	rb, err := rulebook.LoadDefault()
	require.NoError(t, err)

	_, err = rb.Species("dragon")
	assert.True(t, scerr.IsNotFound(err))
	_, err = rb.Ability("meteor")
	assert.True(t, scerr.IsNotFound(err))
	_, err = rb.Effect("frozen")
	assert.True(t, scerr.IsNotFound(err))
}

func TestParse_MissingReferencesAreSkipped(t *testing.T) {
	doc := `
effects:
  - { key: stun, name: Stun, classification: debuff, category: control, duration: 1, prevents_action: true }
abilities:
  - key: bash
    name: Bash
    category: normal
    action_type: attack
    target_type: single
    base_power: 10
    effects: [frozen, stun]
species:
  - key: golem
    name: Golem
    element: earth
    base: { hp: 500, attack: 50 }
    abilities: [bash, meteor]
`
	rb, err := rulebook.Parse([]byte(doc))
	require.NoError(t, err)

	bash, err := rb.Ability("bash")
	require.NoError(t, err)
	require.Len(t, bash.Effects, 2)
	assert.Nil(t, bash.Effects[0])
	assert.Equal(t, "stun", bash.Effects[1].Key)

	golem, err := rb.Species("golem")
	require.NoError(t, err)
	require.Len(t, golem.Abilities, 1)
	assert.Equal(t, "bash", golem.Abilities[0].Key)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "effects: [:"},
		{"duplicate effect", `
effects:
  - { key: a, classification: buff }
  - { key: a, classification: buff }`},
		{"bad classification", `
effects:
  - { key: a, classification: sideways }`},
		{"duplicate ability", `
abilities:
  - { key: x, category: normal, action_type: attack, target_type: single }
  - { key: x, category: normal, action_type: attack, target_type: single }`},
		{"bad element", `
species:
  - { key: s, element: plasma, base: { hp: 1 } }`},
		{"no hp", `
species:
  - { key: s, element: fire, base: { attack: 1 } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rulebook.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, scerr.IsValidation(err), "got %v", err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")
	doc := `
effects:
  - { key: shield, name: Shield, classification: buff, category: protection, duration: 2 }
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	rb, err := rulebook.Load(path)
	require.NoError(t, err)
	shield, err := rb.Effect("shield")
	require.NoError(t, err)
	assert.Equal(t, effects.CategoryProtection, shield.Category)

	_, err = rulebook.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
