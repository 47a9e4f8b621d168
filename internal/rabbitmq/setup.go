package rabbitmq

// ExchangeName — exchange для писем.
const ExchangeName = "notifications"

const (
	// VerificationQueue — очередь писем подтверждения почты.
	VerificationQueue = "email_verification_queue"
	// VerificationRoutingKey — ключ маршрутизации писем подтверждения.
	VerificationRoutingKey = "email.verification"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetEmailQueues возвращает конфигурацию очередей писем.
func GetEmailQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: VerificationQueue, RoutingKey: VerificationRoutingKey},
	}
}
