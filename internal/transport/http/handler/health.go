package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"college-assist/internal/transport/http/response"
)

type HealthHandler struct {
	appName   string
	env       string
	startedAt time.Time
	db        *gorm.DB
	redis     *redisv9.Client
	mq        *amqp.Connection
}

func NewHealthHandler(appName, env string, startedAt time.Time, db *gorm.DB, redis *redisv9.Client, mq *amqp.Connection) *HealthHandler {
	return &HealthHandler{
		appName:   appName,
		env:       env,
		startedAt: startedAt,
		db:        db,
		redis:     redis,
		mq:        mq,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := gin.H{
		"mysql":    h.mysqlStatus(ctx),
		"redis":    h.redisStatus(ctx),
		"rabbitmq": h.rabbitStatus(),
	}
	response.OK(c, gin.H{
		"app":          h.appName,
		"env":          h.env,
		"uptime":       time.Since(h.startedAt).Round(time.Second).String(),
		"dependencies": deps,
	})
}

func (h *HealthHandler) mysqlStatus(ctx context.Context) string {
	if h.db == nil {
		return "disabled"
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return "error"
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.redis == nil {
		return "disabled"
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) rabbitStatus() string {
	if h.mq == nil {
		return "disabled"
	}
	if h.mq.IsClosed() {
		return "down"
	}
	return "up"
}
