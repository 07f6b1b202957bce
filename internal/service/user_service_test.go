package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbyte-be/internal/cache"
	"fitbyte-be/internal/models"
)

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	mem := newMemoryCache()
	svc := NewUserService(repo, mem)

	user, err := repo.Create(ctx, "runner@fit.io", "hash")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "runner@fit.io", profile.Email)
	assert.Nil(t, profile.Preference)
	assert.Nil(t, profile.Weight)

	_, err = mem.Get(ctx, cache.ProfileKey(user.ID))
	require.NoError(t, err, "profile should be cached after a read")

	weight := 72.5
	name := "Runner"
	updated, err := svc.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{
		Preference: "CARDIO",
		WeightUnit: "KG",
		HeightUnit: "CM",
		Weight:     &weight,
		Name:       &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "CARDIO", *updated.Preference)
	assert.Equal(t, weight, *updated.Weight)

	_, err = mem.Get(ctx, cache.ProfileKey(user.ID))
	assert.ErrorIs(t, err, cache.ErrMiss, "update must invalidate the cached profile")

	// absent optional fields keep their value
	updated, err = svc.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{
		Preference: "WEIGHT",
		WeightUnit: "LBS",
		HeightUnit: "INCH",
	})
	require.NoError(t, err)
	assert.Equal(t, "WEIGHT", *updated.Preference)
	assert.Equal(t, "Runner", *updated.Name)

	refreshed, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "LBS", *refreshed.WeightUnit)
}

func TestProfileUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo(), nil)

	_, err := svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateProfile(ctx, "missing", &models.UpdateProfileRequest{Preference: "CARDIO", WeightUnit: "KG", HeightUnit: "CM"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
