package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"presscraft/internal/api/dto"
	"presscraft/internal/entity"
	"presscraft/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_CreateAppliesDefaults(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	svc := NewSubscriptionService(subRepo, &fakeRunRepo{}, logger.NewNop()).(*subscriptionService)
	now := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	resp, err := svc.CreateSubscription(context.Background(), &dto.SubscriptionRequest{
		Name:           "데스커 클리핑",
		Type:           entity.TaskTypeNewsClipping,
		Query:          "데스커",
		CronExpression: "0 9 * * *",
	})
	require.NoError(t, err)
	assert.Equal(t, "date", resp.Sort)
	assert.Equal(t, 1, resp.MaxPages)
	assert.Equal(t, 7, resp.LookbackDays)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.NextExecution)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), *resp.NextExecution)
}

func TestSubscriptionService_Validation(t *testing.T) {
	svc := NewSubscriptionService(newFakeSubscriptionRepo(), &fakeRunRepo{}, logger.NewNop())

	cases := map[string]dto.SubscriptionRequest{
		"missing name":  {Type: entity.TaskTypeCoverageReport, CronExpression: "@daily"},
		"unknown type":  {Name: "x", Type: "stock", CronExpression: "@daily"},
		"missing query": {Name: "x", Type: entity.TaskTypeNewsClipping, CronExpression: "@daily"},
		"bad cron":      {Name: "x", Type: entity.TaskTypeCoverageReport, CronExpression: "every day"},
		"too many page": {Name: "x", Type: entity.TaskTypeNewsClipping, Query: "q", MaxPages: 11, CronExpression: "@daily"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateSubscription(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSubscriptionService_RunsAndNotFound(t *testing.T) {
	subRepo := newFakeSubscriptionRepo(entity.ClippingSubscription{ID: 1, Name: "a", Type: entity.TaskTypeCoverageReport, CronExpression: "@daily"})
	runRepo := &fakeRunRepo{}
	require.NoError(t, runRepo.Create(context.Background(), &entity.ClippingRun{SubscriptionID: 1, Status: entity.RunStatusSuccess}))
	require.NoError(t, runRepo.Create(context.Background(), &entity.ClippingRun{
		SubscriptionID: 1,
		Status:         entity.RunStatusFailed,
		ErrorMessage:   sql.NullString{String: "boom", Valid: true},
	}))
	svc := NewSubscriptionService(subRepo, runRepo, logger.NewNop())

	runs, err := svc.GetRuns(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, entity.RunStatusFailed, runs[0].Status)
	assert.Equal(t, "boom", runs[0].ErrorMessage)

	_, err = svc.GetRuns(context.Background(), 2)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	assert.ErrorIs(t, svc.DeleteSubscription(context.Background(), 2), ErrSubscriptionNotFound)
}
