package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"presscraft/internal/entity"
	"presscraft/internal/executor/strategy"
	"presscraft/pkg/common"
	"presscraft/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStreamClient struct {
	streams   []redis.XStream
	readErr   error
	claimed   []redis.XMessage
	acked     []string
	readArgs  *redis.XReadGroupArgs
	claimArgs *redis.XAutoClaimArgs
}

func (f *fakeStreamClient) XReadGroup(_ context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd {
	f.readArgs = a
	return redis.NewXStreamSliceCmdResult(f.streams, f.readErr)
}

func (f *fakeStreamClient) XAutoClaim(ctx context.Context, a *redis.XAutoClaimArgs) *redis.XAutoClaimCmd {
	f.claimArgs = a
	cmd := redis.NewXAutoClaimCmd(ctx)
	cmd.SetVal(f.claimed, "0-0")
	return cmd
}

func (f *fakeStreamClient) XAck(_ context.Context, stream, group string, ids ...string) *redis.IntCmd {
	f.acked = append(f.acked, ids...)
	return redis.NewIntResult(int64(len(ids)), nil)
}

type fakeSubRepo struct {
	subs map[uint]*entity.ClippingSubscription
}

func (f *fakeSubRepo) FindByID(_ context.Context, id uint) (*entity.ClippingSubscription, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

type fakeRunRepo struct {
	runs    map[uint]*entity.ClippingRun
	updated []entity.ClippingRun
}

func (f *fakeRunRepo) FindByID(_ context.Context, id uint) (*entity.ClippingRun, error) {
	run, ok := f.runs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return run, nil
}

func (f *fakeRunRepo) Update(_ context.Context, run *entity.ClippingRun) error {
	f.updated = append(f.updated, *run)
	return nil
}

type fakeStrategy struct {
	taskType entity.TaskType
	output   string
	err      error
	calls    int
}

func (f *fakeStrategy) Execute(context.Context, *entity.ClippingRun, *entity.ClippingSubscription) (string, error) {
	f.calls++
	return f.output, f.err
}

func (f *fakeStrategy) GetType() entity.TaskType {
	return f.taskType
}

func message(id, payload string) redis.XMessage {
	return redis.XMessage{ID: id, Values: map[string]interface{}{"payload": payload}}
}

func streamOf(msgs ...redis.XMessage) []redis.XStream {
	return []redis.XStream{{Stream: common.RedisStreamClippingTaskExecution, Messages: msgs}}
}

const taskPayload = `{"runId":7,"subscriptionId":3,"type":"news_clipping"}`

func newTestExecutor(stream *fakeStreamClient, subs *fakeSubRepo, runs *fakeRunRepo, strategies ...strategy.ClippingStrategy) *executorService {
	svc := NewExecutorService(stream, subs, runs, logger.NewNop(), time.Second, time.Minute, strategies).(*executorService)
	svc.now = func() time.Time { return time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC) }
	return svc
}

func fixtures() (*fakeSubRepo, *fakeRunRepo) {
	subs := &fakeSubRepo{subs: map[uint]*entity.ClippingSubscription{
		3: {ID: 3, Name: "데스커 클리핑", Type: entity.TaskTypeNewsClipping, Query: "데스커"},
	}}
	runs := &fakeRunRepo{runs: map[uint]*entity.ClippingRun{
		7: {ID: 7, SubscriptionID: 3, Status: entity.RunStatusRunning},
	}}
	return subs, runs
}

func TestExecutorService_ProcessTask_Success(t *testing.T) {
	subs, runs := fixtures()
	stream := &fakeStreamClient{streams: streamOf(message("1-0", taskPayload))}
	strat := &fakeStrategy{taskType: entity.TaskTypeNewsClipping, output: `{"newItems":2}`}

	newTestExecutor(stream, subs, runs, strat).ProcessTask(context.Background())

	assert.Equal(t, 1, strat.calls)
	assert.Equal(t, common.RedisStreamGroup, stream.readArgs.Group)
	assert.Equal(t, []string{common.RedisStreamClippingTaskExecution, ">"}, stream.readArgs.Streams)
	require.Len(t, runs.updated, 1)
	run := runs.updated[0]
	assert.Equal(t, entity.RunStatusSuccess, run.Status)
	assert.JSONEq(t, `{"newItems":2}`, string(run.Result))
	assert.True(t, run.CompletedAt.Valid)
	assert.False(t, run.ErrorMessage.Valid)
	assert.Equal(t, []string{"1-0"}, stream.acked)
}

func TestExecutorService_ProcessTask_StrategyError(t *testing.T) {
	subs, runs := fixtures()
	stream := &fakeStreamClient{streams: streamOf(message("1-0", taskPayload))}
	strat := &fakeStrategy{taskType: entity.TaskTypeNewsClipping, err: errors.New("search failed")}

	newTestExecutor(stream, subs, runs, strat).ProcessTask(context.Background())

	require.Len(t, runs.updated, 1)
	assert.Equal(t, entity.RunStatusFailed, runs.updated[0].Status)
	assert.Equal(t, "search failed", runs.updated[0].ErrorMessage.String)
	assert.Equal(t, []string{"1-0"}, stream.acked)
}

func TestExecutorService_ProcessTask_UnknownStrategy(t *testing.T) {
	subs, runs := fixtures()
	stream := &fakeStreamClient{streams: streamOf(message("1-0", taskPayload))}

	newTestExecutor(stream, subs, runs).ProcessTask(context.Background())

	require.Len(t, runs.updated, 1)
	assert.Equal(t, entity.RunStatusFailed, runs.updated[0].Status)
	assert.Contains(t, runs.updated[0].ErrorMessage.String, "no executor strategy")
}

func TestExecutorService_ProcessTask_DeletedSubscription(t *testing.T) {
	subs, runs := fixtures()
	delete(subs.subs, 3)
	stream := &fakeStreamClient{streams: streamOf(message("1-0", taskPayload))}
	strat := &fakeStrategy{taskType: entity.TaskTypeNewsClipping}

	newTestExecutor(stream, subs, runs, strat).ProcessTask(context.Background())

	assert.Zero(t, strat.calls)
	require.Len(t, runs.updated, 1)
	assert.Equal(t, entity.RunStatusFailed, runs.updated[0].Status)
	assert.Contains(t, runs.updated[0].ErrorMessage.String, "no longer exists")
}

func TestExecutorService_ProcessTask_MalformedPayloadIsAcked(t *testing.T) {
	subs, runs := fixtures()
	stream := &fakeStreamClient{streams: streamOf(
		redis.XMessage{ID: "1-0", Values: map[string]interface{}{"other": "x"}},
	)}
	newTestExecutor(stream, subs, runs).ProcessTask(context.Background())
	assert.Equal(t, []string{"1-0"}, stream.acked)

	stream = &fakeStreamClient{streams: streamOf(message("2-0", "{not json"))}
	newTestExecutor(stream, subs, runs).ProcessTask(context.Background())
	assert.Equal(t, []string{"2-0"}, stream.acked)
	assert.Empty(t, runs.updated)
}

func TestExecutorService_ProcessTask_FinishedRunIsSkipped(t *testing.T) {
	subs, runs := fixtures()
	runs.runs[7].Status = entity.RunStatusSuccess
	stream := &fakeStreamClient{streams: streamOf(message("1-0", taskPayload))}
	strat := &fakeStrategy{taskType: entity.TaskTypeNewsClipping}

	newTestExecutor(stream, subs, runs, strat).ProcessTask(context.Background())

	assert.Zero(t, strat.calls)
	assert.Empty(t, runs.updated)
	assert.Equal(t, []string{"1-0"}, stream.acked)
}

func TestExecutorService_ProcessTask_EmptyRead(t *testing.T) {
	subs, runs := fixtures()
	stream := &fakeStreamClient{readErr: redis.Nil}

	newTestExecutor(stream, subs, runs).ProcessTask(context.Background())

	assert.Empty(t, stream.acked)
	assert.Empty(t, runs.updated)
}

func TestExecutorService_ProcessPending(t *testing.T) {
	subs, runs := fixtures()
	stream := &fakeStreamClient{claimed: []redis.XMessage{message("9-0", taskPayload)}}
	strat := &fakeStrategy{taskType: entity.TaskTypeNewsClipping, output: `{}`}

	newTestExecutor(stream, subs, runs, strat).ProcessPending(context.Background())

	assert.Equal(t, time.Minute, stream.claimArgs.MinIdle)
	assert.Equal(t, 1, strat.calls)
	assert.Equal(t, []string{"9-0"}, stream.acked)
	require.Len(t, runs.updated, 1)
	assert.Equal(t, entity.RunStatusSuccess, runs.updated[0].Status)
}
