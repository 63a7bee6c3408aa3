package domain

import "time"

// NotificationType тип уведомления, повторяет инициировавшее событие
type NotificationType string

const (
	NotificationNewAppointment NotificationType = "new_appointment"
	NotificationApproved       NotificationType = "approved"
	NotificationCancelled      NotificationType = "cancelled"
	NotificationCompleted      NotificationType = "completed"
)

// Notification уведомление во входящих бизнеса
// Создаётся только как побочный эффект создания записи или смены статуса
type Notification struct {
	ID            int64
	BusinessID    int64
	AppointmentID int64
	Type          NotificationType
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}

// NotificationInboxLimit размер окна выдачи входящих (последние N)
const NotificationInboxLimit = 50
