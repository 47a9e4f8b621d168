package models

// EmailMessage — сообщение для отправки письма, публикуемое в очередь.
// Письма доставляет отдельный сервис mail-sender.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
