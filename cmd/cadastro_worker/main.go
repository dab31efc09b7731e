package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nutricionistas-api/config"
	"github.com/oksasatya/nutricionistas-api/internal/worker"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
	"github.com/oksasatya/nutricionistas-api/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-cadastro-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQCadastroQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.Fatalf("elasticsearch client: %v", err)
	}
	proc := &worker.Processor{
		Indexer: &worker.ESIndexer{Client: es, IndexName: cfg.ESNutricionistaIndex},
		Logger:  logger,
	}

	if cfg.MailSendEnabled {
		mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
		if !mg.Configured() {
			logger.Fatal("MAIL_SEND_ENABLED=true but Mailgun not configured")
		}
		proc.Mailer = mg
	} else {
		logger.Info("MAIL_SEND_ENABLED=false; welcome emails disabled")
	}

	consumer, msgs, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQCadastroQueue, 16)
	if err != nil {
		logger.Fatalf("amqp consume: %v", err)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			c, cancelMsg := context.WithTimeout(ctx, 15*time.Second)
			err := proc.Handle(c, msg.Type, msg.Body)
			cancelMsg()
			switch {
			case err == nil:
				_ = msg.Ack(false)
			case errors.Is(err, worker.ErrPoison):
				logger.WithError(err).WithField("message_id", msg.MessageId).Warn("dropping message")
				_ = msg.Nack(false, false)
			default:
				helpers.LogError(logger, "processing failed; requeueing", err, logrus.Fields{
					"message_id":  msg.MessageId,
					"redelivered": msg.Redelivered,
				})
				_ = msg.Nack(false, true)
			}
		}
	}()

	logger.Infof("cadastro worker listening on queue=%s", cfg.RabbitMQCadastroQueue)
	<-stop
	logger.Info("shutting down...")
	cancel()
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
