package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"college-assist/internal/config"
	"college-assist/internal/model"
	"college-assist/internal/platform/mysql"
	"college-assist/internal/platform/rabbitmq"
	"college-assist/internal/platform/redis"
	"college-assist/internal/repository"
	"college-assist/internal/seed"
	"college-assist/internal/snapshot"
)

// App holds the shared process-wide dependencies. MySQL is required; Redis
// and RabbitMQ are optional and the server degrades without them (no context
// cache, no ticket events).
type App struct {
	Config    *config.Config
	MySQL     *gorm.DB
	Redis     *redisv9.Client
	MQConn    *amqp.Connection
	StartedAt time.Time
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := mysql.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, fmt.Errorf("init mysql failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate failed: %w", err)
	}

	store := repository.NewStore(db)
	doc := snapshot.ReadFile(cfg.Snapshot.Path)
	if err := seed.NewSeeder(store).Run(doc); err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	var redisClient *redisv9.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, context caching disabled")
			redisClient = nil
		}
	}

	var mqConn *amqp.Connection
	if cfg.RabbitMQ.URL != "" {
		mqConn, err = rabbitmq.New(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.TicketEventQueue)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq unavailable, ticket events disabled")
			mqConn = nil
		}
	}

	return &App{
		Config:    cfg,
		MySQL:     db,
		Redis:     redisClient,
		MQConn:    mqConn,
		StartedAt: time.Now(),
	}, nil
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Admin{},
		&model.FeeStructure{},
		&model.AdmissionDocument{},
		&model.LibraryBook{},
		&model.LibraryTiming{},
		&model.HostelFacility{},
		&model.HostelFeeSchedule{},
		&model.Scholarship{},
		&model.FacultyMember{},
		&model.PrincipalInfo{},
		&model.Event{},
		&model.CollegeTiming{},
		&model.StudentFeePayment{},
		&model.HelpTicket{},
	)
}

func (a *App) Close() {
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			log.Warn().Err(err).Msg("close rabbitmq failed")
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis failed")
		}
	}
	if a.MySQL != nil {
		if sqlDB, err := a.MySQL.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Warn().Err(err).Msg("close mysql failed")
			}
		}
	}
}
