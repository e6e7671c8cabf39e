package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	announcementapi "github.com/jinhanworks/board-notifier/internal/api/handlers/announcement"
	boardapi "github.com/jinhanworks/board-notifier/internal/api/handlers/board"
	notifapi "github.com/jinhanworks/board-notifier/internal/api/handlers/notification"
	"github.com/jinhanworks/board-notifier/internal/api/router"
	"github.com/jinhanworks/board-notifier/internal/api/server"
	"github.com/jinhanworks/board-notifier/internal/config"
	notifmsg "github.com/jinhanworks/board-notifier/internal/rabbitmq/handlers/notification"
	"github.com/jinhanworks/board-notifier/internal/rabbitmq/handlers/sink"
	"github.com/jinhanworks/board-notifier/internal/rabbitmq/queue"
	announcementrepo "github.com/jinhanworks/board-notifier/internal/repository/announcement"
	articlerepo "github.com/jinhanworks/board-notifier/internal/repository/article"
	commentrepo "github.com/jinhanworks/board-notifier/internal/repository/comment"
	noticerepo "github.com/jinhanworks/board-notifier/internal/repository/notice"
	announcementsvc "github.com/jinhanworks/board-notifier/internal/service/announcement"
	articlesvc "github.com/jinhanworks/board-notifier/internal/service/article"
	commentsvc "github.com/jinhanworks/board-notifier/internal/service/comment"
	"github.com/jinhanworks/board-notifier/internal/service/fanout"
	"github.com/jinhanworks/board-notifier/internal/service/feed"
	"github.com/jinhanworks/board-notifier/internal/worker"
	"github.com/jinhanworks/board-notifier/pkg/email"
	"github.com/jinhanworks/board-notifier/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNotificationQueue(ch, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	articles := articlerepo.NewRepository(db)
	comments := commentrepo.NewRepository(db)
	announcements := announcementrepo.NewRepository(db)
	notices := noticerepo.NewRepository(rdb)

	fanoutService := fanout.NewService(comments, articles, notices, q, cfg.Notification.HandlerTimeout)
	feedService := feed.NewService(notices, announcements, cfg.Notification.Window)
	articleService := articlesvc.NewService(articles, q)
	commentService := commentsvc.NewService(comments, articles, q)
	announcementService := announcementsvc.NewService(announcements, feedService)

	var emailSender sink.Sender
	if cfg.Email.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		emailSender = email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
	}

	var smsSender sink.Sender
	if cfg.SMS.GatewayURL != "" {
		smsSender = sms.NewClient(cfg.SMS.GatewayURL, cfg.SMS.Token)
	}

	pools := []*worker.Pool{
		worker.NewPool(queue.ArticlesQueueName, q.Articles, notifmsg.NewHandler(fanoutService)),
		worker.NewPool(queue.EmailQueueName, q.Email, sink.NewHandler("email", emailSender)),
		worker.NewPool(queue.SMSQueueName, q.SMS, sink.NewHandler("sms", smsSender)),
	}

	for _, p := range pools {
		go p.Run(ctx, cfg.Workers.Count)
	}

	notifHandler := notifapi.NewHandler(feedService)
	boardHandler := boardapi.NewHandler(articleService, commentService, val)
	annHandler := announcementapi.NewHandler(announcementService, val)

	r := router.New(notifHandler, boardHandler, annHandler, cfg.JWT.Secret)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
