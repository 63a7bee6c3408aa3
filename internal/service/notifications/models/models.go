package models

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// Request модели

// ListNotificationsRequest запрос на получение входящих бизнеса
type ListNotificationsRequest struct {
	BusinessID int64
	AdminToken string
	UnreadOnly bool
}

// Response модели

// NotificationResponse уведомление в ответе
type NotificationResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	Type          string    `json:"type"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListNotificationsResponse последние уведомления плюс счётчик непрочитанных
type ListNotificationsResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
}

// FromDomainNotification конвертирует доменную модель в ответ
func FromDomainNotification(notif *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:            notif.ID,
		AppointmentID: notif.AppointmentID,
		Type:          string(notif.Type),
		Message:       notif.Message,
		IsRead:        notif.IsRead,
		CreatedAt:     notif.CreatedAt,
	}
}
