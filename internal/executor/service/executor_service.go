package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"presscraft/internal/entity"
	"presscraft/internal/executor/repository"
	"presscraft/internal/executor/strategy"
	"presscraft/pkg/common"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	readBlock         = 2 * time.Second
	pendingClaimCount = 10
)

// StreamClient is the part of the Redis client the executor consumes through.
type StreamClient interface {
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAutoClaim(ctx context.Context, a *redis.XAutoClaimArgs) *redis.XAutoClaimCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// ExecutorService manages the execution of clipping tasks.
type ExecutorService interface {
	ProcessTask(ctx context.Context)
	ProcessPending(ctx context.Context)
}

// NewExecutorService creates a new ExecutorService.
func NewExecutorService(
	streamClient StreamClient,
	subRepo repository.SubscriptionRepository,
	runRepo repository.ClippingRunRepository,
	log *logger.Logger,
	taskTimeout time.Duration,
	pendingMaxIdle time.Duration,
	strategies []strategy.ClippingStrategy,
) ExecutorService {
	strategyMap := make(map[entity.TaskType]strategy.ClippingStrategy)
	for _, s := range strategies {
		strategyMap[s.GetType()] = s
	}

	return &executorService{
		streamClient:   streamClient,
		subRepo:        subRepo,
		runRepo:        runRepo,
		logger:         log,
		taskTimeout:    taskTimeout,
		pendingMaxIdle: pendingMaxIdle,
		strategies:     strategyMap,
		now:            time.Now,
	}
}

type executorService struct {
	streamClient   StreamClient
	subRepo        repository.SubscriptionRepository
	runRepo        repository.ClippingRunRepository
	logger         *logger.Logger
	taskTimeout    time.Duration
	pendingMaxIdle time.Duration
	strategies     map[entity.TaskType]strategy.ClippingStrategy
	now            func() time.Time
}

// ProcessTask dequeues and executes a single task.
func (s *executorService) ProcessTask(ctx context.Context) {
	streams, err := s.streamClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamClippingTaskExecution, ">"},
		Count:    1,
		Block:    readBlock,
	}).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.Nil) {
			return
		}
		s.logger.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}
	s.handleMessage(ctx, streams[0].Messages[0])
}

// ProcessPending claims messages that another consumer read but never
// acknowledged and executes them again.
func (s *executorService) ProcessPending(ctx context.Context) {
	messages, _, err := s.streamClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamClippingTaskExecution,
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		MinIdle:  s.pendingMaxIdle,
		Start:    "0",
		Count:    pendingClaimCount,
	}).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, redis.Nil) {
			return
		}
		s.logger.Error("Failed to claim pending messages", logger.ErrorField(err))
		return
	}

	for _, message := range messages {
		s.logger.Info("Retrying pending message", logger.Field("message_id", message.ID))
		s.handleMessage(ctx, message)
	}
}

func (s *executorService) handleMessage(ctx context.Context, message redis.XMessage) {
	defer s.ack(ctx, message.ID)

	// The task data is expected to be a JSON string in the 'payload' field.
	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.logger.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		return
	}

	var task entity.ClippingTask
	if err := json.Unmarshal([]byte(taskData), &task); err != nil {
		s.logger.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", message.ID))
		return
	}

	s.logger.Info("Processing task", logger.Field("run_id", task.RunID), logger.Field("subscription_id", task.SubscriptionID))

	run, err := s.runRepo.FindByID(ctx, task.RunID)
	if err != nil {
		s.logger.Error("Failed to find clipping run", logger.ErrorField(err), logger.Field("run_id", task.RunID))
		return
	}
	if run.Status != entity.RunStatusRunning {
		s.logger.Info("Run already finished, skipping", logger.Field("run_id", run.ID), logger.Field("status", run.Status))
		return
	}

	sub, err := s.subRepo.FindByID(ctx, task.SubscriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = fmt.Errorf("subscription %d no longer exists", task.SubscriptionID)
		}
		s.finish(ctx, run, task.Type, "", err)
		return
	}

	executionCtx, cancel := context.WithTimeout(ctx, s.taskTimeout)
	defer cancel()

	s.executeAndUpdate(executionCtx, run, sub)
}

func (s *executorService) executeAndUpdate(ctx context.Context, run *entity.ClippingRun, sub *entity.ClippingSubscription) {
	strategy, ok := s.strategies[sub.Type]
	if !ok {
		s.finish(ctx, run, sub.Type, "", fmt.Errorf("no executor strategy found for task type: %s", sub.Type))
		return
	}

	output, err := strategy.Execute(ctx, run, sub)
	s.finish(ctx, run, sub.Type, output, err)
}

// finish records the outcome of a run. The update uses a fresh context so a
// timed-out execution is still recorded.
func (s *executorService) finish(ctx context.Context, run *entity.ClippingRun, taskType entity.TaskType, output string, execErr error) {
	if execErr != nil {
		s.logger.Error("Task execution failed", logger.ErrorField(execErr), logger.Field("run_id", run.ID))
		run.Status = entity.RunStatusFailed
		run.ErrorMessage = sql.NullString{String: execErr.Error(), Valid: true}
	} else {
		s.logger.Info("Task executed successfully", logger.Field("run_id", run.ID))
		run.Status = entity.RunStatusSuccess
	}
	if output != "" {
		run.Result = datatypes.JSON(output)
	}
	run.CompletedAt = sql.NullTime{Time: s.now(), Valid: true}

	metrics.ClippingRuns.WithLabelValues(string(taskType), string(run.Status)).Inc()

	updateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.runRepo.Update(updateCtx, run); err != nil {
		s.logger.Error("Failed to update clipping run", logger.ErrorField(err), logger.Field("run_id", run.ID))
	}
}

func (s *executorService) ack(ctx context.Context, id string) {
	if err := s.streamClient.XAck(context.WithoutCancel(ctx), common.RedisStreamClippingTaskExecution, common.RedisStreamGroup, id).Err(); err != nil {
		s.logger.Error("Failed to acknowledge message", logger.ErrorField(err), logger.Field("message_id", id))
	}
}
