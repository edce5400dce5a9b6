package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/roster"
	mockroster "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/roster/mock"
)

func TestInMemory_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := mockroster.NewMockTimeProvider(ctrl)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Minute)
	clock.EXPECT().Now().Return(created)
	clock.EXPECT().Now().Return(updated)

	repo := roster.NewInMemory(clock)
	entry := &roster.Entry{ID: "e-1", OwnerID: "o-1", SpeciesKey: "emberfox", Level: 5, Stars: 1}

	require.NoError(t, repo.Create(ctx, entry))
	assert.True(t, scerr.IsAlreadyExists(repo.Create(ctx, entry)))

	got, err := repo.Get(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)

	// Mutating the returned copy does not touch the store
	got.Level = 9
	again, err := repo.Get(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Level)

	entry.OwnerID = "o-2"
	entry.Runes = []*equipment.Rune{{ID: "r", Slot: 3, Main: stats.Value{Type: stats.Speed, Amount: 4}}}
	require.NoError(t, repo.Update(ctx, entry))
	assert.Equal(t, created, entry.CreatedAt)
	assert.Equal(t, updated, entry.UpdatedAt)

	list, err := repo.ListByOwner(ctx, "o-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = repo.ListByOwner(ctx, "o-2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Runes, 1)

	require.NoError(t, repo.Delete(ctx, "e-1"))
	_, err = repo.Get(ctx, "e-1")
	assert.True(t, scerr.IsNotFound(err))
	assert.True(t, scerr.IsNotFound(repo.Delete(ctx, "e-1")))
}

func TestEntry_Validate(t *testing.T) {
	base := func() *roster.Entry {
		return &roster.Entry{ID: "e", OwnerID: "o", SpeciesKey: "s", Level: 10, Stars: 1}
	}

	tests := []struct {
		name   string
		mutate func(e *roster.Entry)
		code   scerr.Code
	}{
		{"valid", func(*roster.Entry) {}, ""},
		{"missing id", func(e *roster.Entry) { e.ID = "" }, scerr.CodeInvalidArgument},
		{"missing species", func(e *roster.Entry) { e.SpeciesKey = "" }, scerr.CodeValidation},
		{"too many stars", func(e *roster.Entry) { e.Stars = 7 }, scerr.CodeValidation},
		{"level over cap", func(e *roster.Entry) { e.Level = 11 }, scerr.CodeValidation},
		{"bad rune", func(e *roster.Entry) {
			e.Runes = []*equipment.Rune{{ID: "r", Slot: 0, Main: stats.Value{Type: stats.Speed, Amount: 1}}}
		}, scerr.CodeValidation},
		{"duplicate slot", func(e *roster.Entry) {
			r := &equipment.Rune{ID: "r", Slot: 0, Main: stats.Value{Type: stats.Attack, Amount: 1}}
			e.Runes = []*equipment.Rune{r, r}
		}, scerr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base()
			tt.mutate(e)
			err := e.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.code, scerr.GetCode(err))
		})
	}
}
