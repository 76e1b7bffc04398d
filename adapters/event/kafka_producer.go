package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/pixelperfect/backend/internal/config"
)

const (
	TopicVideoEvents = "video.events"
)

type VideoEventType string

const (
	VideoEventTypeUploaded VideoEventType = "video.uploaded"
)

type VideoEventPayload struct {
	EventType      VideoEventType `json:"event_type"`
	VideoID        uuid.UUID      `json:"video_id"`
	OwnerID        uuid.UUID      `json:"owner_id"`
	PublicID       string         `json:"public_id"`
	OriginalSize   int64          `json:"original_size"`
	CompressedSize int64          `json:"compressed_size"`
	Duration       float64        `json:"duration"`
}

type KafkaProducerClient struct {
	VideoEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	videoWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicVideoEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{
		VideoEventsWriter: videoWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishVideoEvent(ctx context.Context, payload VideoEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal video event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.VideoID.String()),
		Value: value,
	}
	if err := c.VideoEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish video event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.VideoEventsWriter != nil {
		c.VideoEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}
