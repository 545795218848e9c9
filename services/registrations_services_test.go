package services

import (
	"context"
	"testing"

	"coderfest/database"
	"coderfest/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	database.REDIS = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr
}

func sampleRegistration(id string) models.Registration {
	return models.Registration{
		RegistrationID: id,
		TeamName:       "Byte Club",
		LeaderName:     "Asha Verma",
		LeaderEmail:    "asha@example.com",
		LeaderContact:  "9876543210",
		CollegeName:    "SGSIT",
		Students: []models.StudentDetail{
			{Name: "A", Email: "a@example.com", Contact: "1"},
			{Name: "B", Email: "b@example.com", Contact: "2"},
			{Name: "C", Email: "c@example.com", Contact: "3"},
		},
		PaymentProofURL: "http://localhost:8080/files/" + id + ".png?expires=1&sig=x",
		RegisteredAt:    "2025-11-20T10:30:00Z",
		Status:          models.StatusConfirmed,
	}
}

func TestSaveAndGetRegistration(t *testing.T) {
	mr := setupTestStore(t)
	ctx := context.Background()

	reg := sampleRegistration("REG-1-a")
	require.NoError(t, SaveRegistration(ctx, reg))
	assert.True(t, mr.Exists("registration:REG-1-a"))

	got, err := GetRegistration(ctx, "REG-1-a")
	require.NoError(t, err)
	assert.Equal(t, reg, got)
}

func TestListRegistrationsScansPrefixOnly(t *testing.T) {
	mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, SaveRegistration(ctx, sampleRegistration("REG-1-a")))
	require.NoError(t, SaveRegistration(ctx, sampleRegistration("REG-2-b")))
	mr.Set("session:xyz", "not a registration")

	regs, err := ListRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 2)

	ids := []string{regs[0].RegistrationID, regs[1].RegistrationID}
	assert.ElementsMatch(t, []string{"REG-1-a", "REG-2-b"}, ids)
}

func TestListRegistrationsEmptyStore(t *testing.T) {
	setupTestStore(t)

	regs, err := ListRegistrations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, regs)
	assert.Empty(t, regs)
}

func TestListRegistrationsFailsOnCorruptRecord(t *testing.T) {
	mr := setupTestStore(t)

	mr.Set("registration:REG-bad", "{not json")
	_, err := ListRegistrations(context.Background())
	assert.Error(t, err)
}
