package common

const (
	RedisStreamClippingTaskExecution = "clipping.task.execution"

	RedisStreamGroup    = "executor-group"
	RedisStreamConsumer = "executor-consumer"

	KafkaEventClippingCompleted = "clipping.completed"
	KafkaEventCoverageReported  = "coverage.reported"

	// NotAvailable is the placeholder written into fact sheet fields that have no source data.
	NotAvailable = "정보 없음"
)
