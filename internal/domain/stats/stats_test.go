package stats_test

import (
	"testing"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/stretchr/testify/assert"
)

func TestBlock_GetSet(t *testing.T) {
	var b stats.Block
	for i, st := range stats.All {
		b = b.Set(st, i+1)
	}

	for i, st := range stats.All {
		assert.Equal(t, i+1, b.Get(st), "stat %s", st)
	}
	assert.Equal(t, 0, b.Get(stats.Type("luck")))
}

func TestBlock_AddSub(t *testing.T) {
	a := stats.Block{HP: 100, Attack: 20, Defense: 5, CritRate: 15}
	d := stats.Block{HP: 10, Attack: -4, Speed: 3}

	sum := a.Add(d)
	assert.Equal(t, stats.Block{HP: 110, Attack: 16, Defense: 5, Speed: 3, CritRate: 15}, sum)
	assert.Equal(t, a, sum.Sub(d))
	assert.True(t, stats.Block{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestType_LevelScaled(t *testing.T) {
	scaled := map[stats.Type]bool{
		stats.HP: true, stats.Attack: true, stats.Defense: true, stats.Speed: true,
	}
	for _, st := range stats.All {
		assert.Equal(t, scaled[st], st.LevelScaled(), "stat %s", st)
	}
	assert.False(t, stats.Type("mana").IsValid())
	assert.True(t, stats.CritDamage.IsValid())
}

func TestValue_Contribution(t *testing.T) {
	base := stats.Block{Attack: 20, Defense: 15}

	tests := []struct {
		name  string
		value stats.Value
		want  int
	}{
		{name: "flat", value: stats.Value{Type: stats.Attack, Amount: 7}, want: 7},
		{name: "flat rounds", value: stats.Value{Type: stats.Attack, Amount: 7.5}, want: 8},
		{name: "percent of base", value: stats.Value{Type: stats.Attack, Amount: 50, Percentage: true}, want: 10},
		{name: "percent rounds", value: stats.Value{Type: stats.Defense, Amount: 10, Percentage: true}, want: 2},
		{name: "negative percent", value: stats.Value{Type: stats.Defense, Amount: -30, Percentage: true}, want: -5},
		{name: "percent of zero base", value: stats.Value{Type: stats.Speed, Amount: 40, Percentage: true}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Contribution(base))
		})
	}
}
