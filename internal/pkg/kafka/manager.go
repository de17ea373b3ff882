package kafka

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	syncConsumer sarama.ConsumerGroup
	syncHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, syncService service.SyncService) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	syncConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaSyncConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		syncConsumer: syncConsumer,
		syncHandler:  NewSyncJobHandler(syncService),
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaSyncConsumer.Topic
		log.Info("Sync job consumer started", "topic", topic)
		for {
			if err := m.syncConsumer.Consume(ctx, []string{topic}, m.syncHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.syncConsumer.Close(); err != nil {
		log.Error("Failed to close sync consumer", "err", err)
	}

	return nil
}
