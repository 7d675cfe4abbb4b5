package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Config struct {
	PostgresqlURL string `env:"POSTGRESQL_URL,notEmpty"`
	RedisURL      string `env:"REDIS_URL,notEmpty"`
	RabbitmqURL   string `env:"RABBITMQ_URL,notEmpty"`

	Port           int      `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	ReconcilePeriod  time.Duration `env:"RECONCILE_PERIOD" envDefault:"1m"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" envDefault:"1m"`

	DefaultMaxReminders       int `env:"DEFAULT_MAX_REMINDERS" envDefault:"6"`
	TriggerRateLimitPerMinute int `env:"TRIGGER_RATE_LIMIT_PER_MINUTE" envDefault:"10"`

	RabbitmqDispatchExchange string `env:"RABBITMQ_DISPATCH_EXCHANGE" envDefault:""`
	RabbitmqDispatchQueue    string `env:"RABBITMQ_DISPATCH_QUEUE" envDefault:"notification-dispatch"`

	SchedulesCollection       string `env:"SCHEDULES_COLLECTION" envDefault:"reminder_schedules"`
	AcknowledgmentsCollection string `env:"ACKNOWLEDGMENTS_COLLECTION" envDefault:"acknowledgments"`
	NotificationsCollection   string `env:"NOTIFICATIONS_COLLECTION" envDefault:"notifications"`
	DispatchQueueCollection   string `env:"DISPATCH_QUEUE_COLLECTION" envDefault:"notification_queue"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ReconcilePeriod, validation.Required),
		validation.Field(&c.ReminderInterval, validation.Required),
		validation.Field(&c.DefaultMaxReminders, validation.Required, validation.Min(1)),
		validation.Field(&c.TriggerRateLimitPerMinute, validation.Required, validation.Min(1)),
		validation.Field(&c.RabbitmqDispatchQueue, validation.Required),
		validation.Field(&c.SchedulesCollection, validation.Required),
		validation.Field(&c.AcknowledgmentsCollection, validation.Required),
		validation.Field(&c.NotificationsCollection, validation.Required),
		validation.Field(&c.DispatchQueueCollection, validation.Required),
	)
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
