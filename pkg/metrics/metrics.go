package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus коллекторов сервиса
// Все коллекторы регистрируются в default registry через promauto
type Metrics struct {
	// HTTP метрики (используются middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики бота
	OrdersReceivedTotal     prometheus.Counter
	OrdersFailedTotal       prometheus.Counter
	TelegramSendErrorsTotal prometheus.Counter
}

// New создает и регистрирует коллекторы с лейблом service
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		OrdersReceivedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "webapp_orders_received_total",
			Help:        "Total number of successfully processed WebApp orders",
			ConstLabels: constLabels,
		}),

		OrdersFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "webapp_orders_failed_total",
			Help:        "Total number of WebApp order payloads that failed to process",
			ConstLabels: constLabels,
		}),

		TelegramSendErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "telegram_send_errors_total",
			Help:        "Total number of failed Telegram API send calls",
			ConstLabels: constLabels,
		}),
	}
}

// IncOrderReceived увеличивает счетчик обработанных заказов
// Безопасен при nil-коллекторе (метрики выключены конфигом)
func (m *Metrics) IncOrderReceived() {
	if m == nil {
		return
	}
	m.OrdersReceivedTotal.Inc()
}

// IncOrderFailed увеличивает счетчик необработанных заказов
func (m *Metrics) IncOrderFailed() {
	if m == nil {
		return
	}
	m.OrdersFailedTotal.Inc()
}

// IncTelegramSendError увеличивает счетчик ошибок отправки
func (m *Metrics) IncTelegramSendError() {
	if m == nil {
		return
	}
	m.TelegramSendErrorsTotal.Inc()
}
