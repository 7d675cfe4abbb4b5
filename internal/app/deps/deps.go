package deps

import (
	"context"
	"orderping/internal/config"
	dl "orderping/internal/core/domain/logging"
	drl "orderping/internal/core/domain/ratelimiter"
	"orderping/internal/core/domain/reminder"
	"orderping/internal/db/migrations"
	dbnotification "orderping/internal/db/notification"
	"orderping/internal/db/recordstore"
	dbreminder "orderping/internal/db/reminder"
	"orderping/internal/implementations/logging"
	notificationsink "orderping/internal/implementations/notification_sink"
	ratelimiter "orderping/internal/implementations/rate_limiter"
	"orderping/internal/rabbitmq"
	notificationdispatch "orderping/internal/rabbitmq/publishers/notification_dispatch"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	RecordStore recordstore.Store

	ScheduleRepository       reminder.ScheduleRepository
	AcknowledgmentRepository reminder.AcknowledgmentRepository
	NotificationRepository   reminder.NotificationRepository
	DispatchQueueRepository  reminder.DispatchQueueRepository

	RateLimiter drl.RateLimiter

	DispatchPublisher reminder.DispatchPublisher
	NotificationSink  reminder.NotificationSink
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.RecordStore = recordstore.NewPgxStore(deps.DB)
	deps.ScheduleRepository = dbreminder.NewStoreScheduleRepository(
		deps.RecordStore,
		deps.Config.SchedulesCollection,
		deps.Config.DefaultMaxReminders,
	)
	deps.AcknowledgmentRepository = dbreminder.NewStoreAcknowledgmentRepository(
		deps.RecordStore,
		deps.Config.AcknowledgmentsCollection,
	)
	deps.NotificationRepository = dbnotification.NewStoreNotificationRepository(
		deps.RecordStore,
		deps.Config.NotificationsCollection,
		deps.Now,
	)
	deps.DispatchQueueRepository = dbnotification.NewStoreDispatchQueueRepository(
		deps.RecordStore,
		deps.Config.DispatchQueueCollection,
		deps.Now,
	)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	closeDispatchPublisher := deps.initRabbitmqDispatchPublisher()

	deps.NotificationSink = notificationsink.New(
		deps.Logger,
		deps.NotificationRepository,
		deps.DispatchQueueRepository,
		deps.DispatchPublisher,
	)

	return deps, func() {
		closeFuncs := []func(){
			closeDispatchPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	if err := migrations.Apply(deps.Config.PostgresqlURL); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}

	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqDispatchPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqDispatchQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.DispatchPublisher = notificationdispatch.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqDispatchExchange,
		deps.Config.RabbitmqDispatchQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down dispatch publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Dispatch publisher shut down.")
	}
}
