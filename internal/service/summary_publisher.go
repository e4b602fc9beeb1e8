package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/config"
	"github.com/fadilmartias/mentor-eval/internal/logger"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	ActionUpdated = "updated"
	ActionCleared = "cleared"
)

// SummaryMessage is the payload announced on the summary channel.
type SummaryMessage struct {
	UserID  uuid.UUID                `json:"userId"`
	Action  string                   `json:"action"`
	Summary *model.EvaluationSummary `json:"summary,omitempty"`
}

func NewSummaryMessage(userID uuid.UUID, summary *model.EvaluationSummary) SummaryMessage {
	msg := SummaryMessage{UserID: userID, Action: ActionUpdated, Summary: summary}
	if summary == nil {
		msg.Action = ActionCleared
	}
	return msg
}

// RedisSummaryPublisher publishes summary changes on a redis pub/sub channel.
type RedisSummaryPublisher struct {
	rdb     *goredis.Client
	channel string
	log     *zap.Logger
}

// NewRedisSummaryPublisher connects to cfg.Addr and pings it. It returns nil
// and no error when no address is configured.
func NewRedisSummaryPublisher(ctx context.Context, cfg *config.RedisConfig, log *zap.Logger) (*RedisSummaryPublisher, error) {
	if cfg == nil || strings.TrimSpace(cfg.Addr) == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedisSummaryPublisher(rdb, cfg.Channel, log), nil
}

func newRedisSummaryPublisher(rdb *goredis.Client, channel string, log *zap.Logger) *RedisSummaryPublisher {
	if channel == "" {
		channel = "evaluation-summary"
	}
	return &RedisSummaryPublisher{
		rdb:     rdb,
		channel: channel,
		log:     logger.Component(log, "summary_publisher"),
	}
}

func (p *RedisSummaryPublisher) PublishSummary(ctx context.Context, userID uuid.UUID, summary *model.EvaluationSummary) error {
	if p == nil || p.rdb == nil {
		return fmt.Errorf("summary publisher not initialized")
	}
	raw, err := json.Marshal(NewSummaryMessage(userID, summary))
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, raw).Err()
}

// Watch subscribes to the channel and calls onMsg for every message until ctx
// is done. Malformed payloads are skipped.
func (p *RedisSummaryPublisher) Watch(ctx context.Context, onMsg func(SummaryMessage)) error {
	if p == nil || p.rdb == nil {
		return fmt.Errorf("summary publisher not initialized")
	}

	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	// make sure the subscription is live before reporting success
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg SummaryMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				p.log.Warn("bad summary payload", zap.Error(err))
				continue
			}
			onMsg(msg)
		}
	}
}

func (p *RedisSummaryPublisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
