package di

import (
	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/internal/events"
	"resort/transport/http"
)

// App bundles the long running parts of the service.
type App struct {
	HTTP       *http.HTTP
	Subscriber *events.Subscriber
}

func NewApp(server *http.HTTP, subscriber *events.Subscriber) *App {
	return &App{
		HTTP:       server,
		Subscriber: subscriber,
	}
}

// ProvideKafkaClient returns nil when Kafka is disabled; publisher and subscriber treat nil as off.
func ProvideKafkaClient(cfg *config.Config, otel otel.Otel) kafka.Client {
	if !cfg.Kafka.Enable {
		return nil
	}

	return kafka.New(cfg, otel)
}
