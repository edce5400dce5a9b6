package dice_test

import (
	"errors"
	"testing"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/dice"
	mockdice "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12,
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestChance(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	ok, err := dice.Chance(roller, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dice.Chance(roller, 100)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, roller.Remaining(), "edge chances must not consume rolls")

	roller.SetRolls([]int{2500, 2501})
	ok, err = dice.Chance(roller, 25)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dice.Chance(roller, 25)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPick(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3})

	idx, err := dice.Pick(roller, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = dice.Pick(roller, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestChance_RollsPercentDieOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(1, dice.PercentSides, 0).Return(&dice.RollResult{Total: 1250}, nil)
	ok, err := dice.Chance(roller, 12.5)
	require.NoError(t, err)
	assert.True(t, ok)

	roller.EXPECT().Roll(1, dice.PercentSides, 0).Return(nil, errors.New("rng offline"))
	_, err = dice.Chance(roller, 50)
	assert.Error(t, err)
}

func TestPick_UsesSidesOfN(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(1, 3, 0).Return(&dice.RollResult{Total: 3}, nil)
	idx, err := dice.Pick(roller, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestSeededRoller_Replays(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 20; i++ {
		ra, err := a.Roll(1, dice.PercentSides, 0)
		require.NoError(t, err)
		rb, err := b.Roll(1, dice.PercentSides, 0)
		require.NoError(t, err)

		assert.Equal(t, ra.Total, rb.Total)
		assert.GreaterOrEqual(t, ra.Total, 1)
		assert.LessOrEqual(t, ra.Total, dice.PercentSides)
	}
}

func TestRandomRoller_RejectsInvalid(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidCount)

	_, err = roller.Roll(1, 0, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidSides)
}
