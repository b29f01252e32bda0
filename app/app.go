package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/bibliotheca/lending-service/config"
	"github.com/bibliotheca/lending-service/internal/handler"
	"github.com/bibliotheca/lending-service/internal/payment"
	"github.com/bibliotheca/lending-service/internal/repository"
	"github.com/bibliotheca/lending-service/internal/server"
	"github.com/bibliotheca/lending-service/internal/service"
	"github.com/bibliotheca/lending-service/migrations"
	"github.com/bibliotheca/lending-service/pkg/kafka"
	"github.com/bibliotheca/lending-service/pkg/logger"
	"github.com/bibliotheca/lending-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}

	events := service.NewNoopEvents()
	if cfg.Kafka.Enable {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %v", err)
		}
		defer producer.Close()
		events = service.NewEvents(producer, log)
	}

	svc := service.NewService(repo, events, log)
	payments := payment.NewClient(cfg.Payment, log)
	h := handler.New(svc, payments, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	if cfg.Kafka.Enable {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.LendingConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %v", err)
		}
		g.Go(func() error {
			defer consumer.Close()
			return kafka.Consume(ctx, consumer, handler.NewConsumer(svc.SettleFee, log), log, kafka.FeePaymentsTopic)
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
