package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"presscraft/internal/entity"
	"presscraft/pkg/common"
	"presscraft/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_PublishesDueSubscriptions(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo(
		entity.ClippingSubscription{ID: 1, Type: entity.TaskTypeNewsClipping, CronExpression: "0 9 * * *", IsActive: true,
			NextExecution: sql.NullTime{Time: now, Valid: true}},
		entity.ClippingSubscription{ID: 2, Type: entity.TaskTypeCoverageReport, CronExpression: "@daily", IsActive: true,
			NextExecution: sql.NullTime{Time: now.Add(time.Hour), Valid: true}},
		entity.ClippingSubscription{ID: 3, Type: entity.TaskTypeCoverageReport, CronExpression: "@daily", IsActive: false},
	)
	runRepo := &fakeRunRepo{}
	pub := &fakePublisher{}
	svc := NewSchedulerService(subRepo, runRepo, pub, logger.NewNop(), time.Minute, 1000).(*schedulerService)
	svc.now = func() time.Time { return now }

	svc.ProcessSubscriptions(context.Background())

	require.Len(t, pub.args, 1)
	assert.Equal(t, common.RedisStreamClippingTaskExecution, pub.args[0].Stream)
	assert.Equal(t, int64(1000), pub.args[0].MaxLen)

	values := pub.args[0].Values.(map[string]interface{})
	var task entity.ClippingTask
	require.NoError(t, json.Unmarshal(values["payload"].([]byte), &task))
	assert.Equal(t, uint(1), task.SubscriptionID)
	assert.Equal(t, uint(1), task.RunID)
	assert.Equal(t, entity.TaskTypeNewsClipping, task.Type)

	require.Len(t, runRepo.runs, 1)
	assert.Equal(t, entity.RunStatusRunning, runRepo.runs[0].Status)

	updated := subRepo.subs[1]
	assert.Equal(t, now, updated.LastExecution.Time)
	assert.Equal(t, now.Add(24*time.Hour), updated.NextExecution.Time)
}

func TestScheduler_MarksRunFailedWhenEnqueueFails(t *testing.T) {
	subRepo := newFakeSubscriptionRepo(entity.ClippingSubscription{ID: 1, Type: entity.TaskTypeCoverageReport, CronExpression: "@daily", IsActive: true})
	runRepo := &fakeRunRepo{}
	pub := &fakePublisher{err: errors.New("redis down")}
	svc := NewSchedulerService(subRepo, runRepo, pub, logger.NewNop(), time.Minute, 0)

	svc.ProcessSubscriptions(context.Background())

	require.Len(t, runRepo.updated, 1)
	assert.Equal(t, entity.RunStatusFailed, runRepo.updated[0].Status)
	assert.Equal(t, "redis down", runRepo.updated[0].ErrorMessage.String)
	assert.Empty(t, subRepo.updated)
}
