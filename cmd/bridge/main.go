package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"proposalbridge/internal/platform/config"
	"proposalbridge/internal/platform/httpserver"
	"proposalbridge/internal/platform/kafka"
	kafkaconsumer "proposalbridge/internal/platform/kafka/consumer"
	kafkaproducer "proposalbridge/internal/platform/kafka/producer"
	"proposalbridge/internal/platform/logger"
	"proposalbridge/internal/platform/metrics"
	proposalconsumer "proposalbridge/internal/proposal/consumer"
	"proposalbridge/internal/proposal/publisher"
	"proposalbridge/internal/proposal/routing"
	"proposalbridge/internal/proposal/service"
	httptransport "proposalbridge/internal/transport/http"
)

// main wires high-level dependencies and keeps the process lifecycle small.
// Business logic lives in the internal proposal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Kafka.CreateTopics {
		if err := kafka.EnsureTopics(ctx, cfg.Kafka.Brokers, cfg.Kafka.InboundTopic, cfg.Kafka.OutboundTopic); err != nil {
			log.Error("failed to ensure topics", "error", err)
			os.Exit(1)
		}
	}

	m := metrics.New()

	producer, err := kafkaproducer.New(
		kafkaproducer.Config{Brokers: cfg.Kafka.Brokers},
		kafkaproducer.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to create kafka producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	pub, err := publisher.New(producer, cfg.Kafka.OutboundTopic, publisher.WithLogger(log))
	if err != nil {
		log.Error("failed to create publisher", "error", err)
		os.Exit(1)
	}

	router := routing.New(routing.WithLogger(log))

	svc, err := service.New(pub, router, service.WithLogger(log), service.WithMetrics(m))
	if err != nil {
		log.Error("failed to create proposal service", "error", err)
		os.Exit(1)
	}

	handler, err := proposalconsumer.NewHandler(svc,
		proposalconsumer.WithLogger(log),
		proposalconsumer.WithMetrics(m),
	)
	if err != nil {
		log.Error("failed to create proposal handler", "error", err)
		os.Exit(1)
	}

	cons, err := kafkaconsumer.New(
		kafkaconsumer.Config{
			Brokers: cfg.Kafka.Brokers,
			Topics:  []string{cfg.Kafka.InboundTopic},
			GroupID: cfg.Kafka.GroupID,
		},
		handler,
		kafkaconsumer.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to create kafka consumer", "error", err)
		os.Exit(1)
	}
	defer cons.Close()

	opsHandler := httptransport.NewHandler(map[string]httptransport.Pinger{
		"kafka-consumer": cons,
		"kafka-producer": producer,
	})
	srv := httpserver.New(cfg.OpsAddr, httptransport.NewRouter(opsHandler))

	log.Info("starting proposal bridge",
		"ops_addr", cfg.OpsAddr,
		"inbound_topic", cfg.Kafka.InboundTopic,
		"outbound_topic", cfg.Kafka.OutboundTopic,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return cons.Run(gctx)
	})

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bridge exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("bridge stopped")
}
