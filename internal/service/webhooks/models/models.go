package models

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// Request модели

// CreateWebhookRequest запрос на создание подписки
type CreateWebhookRequest struct {
	AdminToken string `json:"-"`

	URL    string  `json:"url"`
	Event  string  `json:"event"`
	Secret *string `json:"secret,omitempty"`
}

// UpdateWebhookRequest запрос на обновление подписки
// Все поля опциональны - обновляются только переданные значения
type UpdateWebhookRequest struct {
	WebhookID  int64  `json:"-"`
	AdminToken string `json:"-"`

	URL      *string `json:"url,omitempty"`
	Event    *string `json:"event,omitempty"`
	Secret   *string `json:"secret,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Response модели

// WebhookResponse подписка в ответе
// Секрет наружу не сериализуется
type WebhookResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Event     string    `json:"event"`
	HasSecret bool      `json:"hasSecret"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListWebhooksResponse ответ со списком подписок
type ListWebhooksResponse struct {
	Webhooks []*WebhookResponse `json:"webhooks"`
}

// FromDomainWebhook конвертирует доменную модель в ответ
func FromDomainWebhook(hook *domain.Webhook) *WebhookResponse {
	return &WebhookResponse{
		ID:        hook.ID,
		URL:       hook.URL,
		Event:     string(hook.Event),
		HasSecret: hook.Secret != nil && *hook.Secret != "",
		IsActive:  hook.IsActive,
		CreatedAt: hook.CreatedAt,
		UpdatedAt: hook.UpdatedAt,
	}
}
