package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newColorUC(t *testing.T) (*ColorUseCase, *fakeColorRepo) {
	t.Helper()

	colorRepo := newFakeColorRepo()
	return NewColorUC(colorRepo, nopLogger{}), colorRepo
}

func TestCreateColor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates color with code", func(t *testing.T) {
		uc, _ := newColorUC(t)

		info, err := uc.CreateColor(ctx, &SaveColorReq{Name: "Red", ColorCode: strPtr("#FF0000")})
		require.NoError(t, err)
		assert.Equal(t, "Red", info.Name)
		require.NotNil(t, info.ColorCode)
		assert.Equal(t, "#FF0000", *info.ColorCode)
	})

	t.Run("code is optional", func(t *testing.T) {
		uc, _ := newColorUC(t)

		info, err := uc.CreateColor(ctx, &SaveColorReq{Name: "Eggshell"})
		require.NoError(t, err)
		assert.Nil(t, info.ColorCode)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		uc, _ := newColorUC(t)

		for _, code := range []string{"FF0000", "#FF00", "#GG0000", "red", "#FF00001"} {
			_, err := uc.CreateColor(ctx, &SaveColorReq{Name: "Red", ColorCode: strPtr(code)})
			assert.ErrorIs(t, err, e.ErrInvalidColorCode, "code %q", code)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc, _ := newColorUC(t)

		_, err := uc.CreateColor(ctx, &SaveColorReq{Name: " "})
		assert.ErrorIs(t, err, e.ErrNameRequired)
	})
}

func TestUpdateColor(t *testing.T) {
	ctx := context.Background()

	uc, colorRepo := newColorUC(t)
	id := seedColor(t, colorRepo, "Red")

	info, err := uc.UpdateColor(ctx, id, &SaveColorReq{Name: "Crimson", ColorCode: strPtr("#DC143C")})
	require.NoError(t, err)
	assert.Equal(t, "Crimson", info.Name)

	_, err = uc.UpdateColor(ctx, 99, &SaveColorReq{Name: "Ghost"})
	assert.ErrorIs(t, err, e.ErrColorNotFound)
}

func TestDeleteColor(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses to delete color in use", func(t *testing.T) {
		uc, colorRepo := newColorUC(t)
		id := seedColor(t, colorRepo, "Red")
		colorRepo.used[id] = true

		err := uc.DeleteColor(ctx, id)
		assert.ErrorIs(t, err, e.ErrColorHasVariants)
		assert.Empty(t, colorRepo.deleted)
	})

	t.Run("deletes unused color", func(t *testing.T) {
		uc, colorRepo := newColorUC(t)
		id := seedColor(t, colorRepo, "Red")

		require.NoError(t, uc.DeleteColor(ctx, id))
		assert.Contains(t, colorRepo.deleted, id)
	})
}
