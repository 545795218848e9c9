package services

import (
	"context"
	"encoding/json"
	"fmt"

	"coderfest/database"
	"coderfest/models"
)

// SaveRegistration persists the record under registration:<registrationId>.
// Records are written once and never updated; no TTL is set.
func SaveRegistration(ctx context.Context, reg models.Registration) error {
	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("marshal registration %s: %w", reg.RegistrationID, err)
	}
	key := database.RegistrationKey(reg.RegistrationID)
	if err := database.REDIS.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store registration %s: %w", reg.RegistrationID, err)
	}
	return nil
}

// GetRegistration fetches a single record by its registration ID
func GetRegistration(ctx context.Context, registrationID string) (models.Registration, error) {
	var reg models.Registration
	data, err := database.REDIS.Get(ctx, database.RegistrationKey(registrationID)).Bytes()
	if err != nil {
		return reg, fmt.Errorf("fetch registration %s: %w", registrationID, err)
	}
	if err := json.Unmarshal(data, &reg); err != nil {
		return reg, fmt.Errorf("decode registration %s: %w", registrationID, err)
	}
	return reg, nil
}

// ListRegistrations scans the store for every registration: key and returns
// the full decoded set. Unfiltered and unpaginated; fine at event scale.
func ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	var keys []string
	iter := database.REDIS.Scan(ctx, 0, database.RegistrationKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan registrations: %w", err)
	}

	registrations := make([]models.Registration, 0, len(keys))
	if len(keys) == 0 {
		return registrations, nil
	}

	values, err := database.REDIS.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch registrations: %w", err)
	}
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Key deleted between SCAN and MGET
			continue
		}
		var reg models.Registration
		if err := json.Unmarshal([]byte(raw), &reg); err != nil {
			return nil, fmt.Errorf("decode registration at %s: %w", keys[i], err)
		}
		registrations = append(registrations, reg)
	}
	return registrations, nil
}
