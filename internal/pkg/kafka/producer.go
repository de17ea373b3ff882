package kafka

import (
	"SocialPulse/internal/api/config"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// SyncProducer 把同步任务写入 Kafka。
// 按 user_id 作 key 分区，同一用户的任务有序消费
type SyncProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSyncProducer(cfg *config.Config) (*SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &SyncProducer{
		producer: producer,
		topic:    cfg.KafkaSyncConsumer.Topic,
	}, nil
}

func (p *SyncProducer) EnqueueSync(ctx context.Context, userID uint64, platform string) (string, error) {
	msg := SyncJobMessage{
		TaskID:   uuid.NewString(),
		UserID:   userID,
		Platform: platform,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(userID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return "", err
	}

	log.InfoContext(ctx, "Sync job enqueued",
		"task_id", msg.TaskID,
		"user_id", userID,
		"platform", platform,
		"partition", partition,
		"offset", offset,
	)
	return msg.TaskID, nil
}

func (p *SyncProducer) Close() error {
	return p.producer.Close()
}
