package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/optionpricing/internal/pricing/application"
	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/internal/pricing/infrastructure/messaging"
	httphandler "github.com/wyfcoding/optionpricing/internal/pricing/interfaces/http"
	"github.com/wyfcoding/optionpricing/pkg/mq"
	"github.com/wyfcoding/pkg/app"
	configpkg "github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/metrics"
	"github.com/wyfcoding/pkg/middleware"
)

type AppContext struct {
	AppService *application.PricingService
	Config     *configpkg.Config
}

const BootstrapName = "pricing"

func main() {
	app.NewBuilder(BootstrapName).
		WithConfig(&configpkg.Config{}).
		WithService(initService).
		WithGin(registerGin).
		WithGinMiddleware(middleware.CORS()).
		Build().
		Run()
}

func registerGin(e *gin.Engine, srv interface{}) {
	ctx := srv.(*AppContext)
	httpHandler := httphandler.NewPricingHandler(ctx.AppService)
	httpHandler.RegisterRoutes(&e.RouterGroup)
	e.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"service":   BootstrapName,
			"timestamp": time.Now().Unix(),
		})
	})
	slog.Default().Info("HTTP routes registered", "service", BootstrapName)
}

func initService(cfg interface{}, m *metrics.Metrics) (interface{}, func(), error) {
	c := cfg.(*configpkg.Config)
	slog.Info("initializing service dependencies...")

	var publisher domain.EventPublisher
	cleanup := func() {}

	if brokers := c.MessageQueue.Kafka.Brokers; len(brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      brokers,
			MaxRetries:   c.MessageQueue.Kafka.MaxAttempts,
			RetryBackoff: 100,
		})
		if err != nil {
			return nil, nil, err
		}
		topic := c.MessageQueue.Kafka.Topic
		if topic == "" {
			topic = "pricing.events"
		}
		publisher = messaging.NewKafkaEventPublisher(producer, topic)
		cleanup = func() {
			slog.Info("cleaning up resources...")
			_ = producer.Close()
		}
	} else {
		slog.Warn("no kafka brokers configured, domain events disabled")
	}

	appService := application.NewPricingService(publisher)
	return &AppContext{
		AppService: appService,
		Config:     c,
	}, cleanup, nil
}
