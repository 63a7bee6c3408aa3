package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/dbmetrics"
	"github.com/randevuhub/RH-AppointmentService/pkg/psqlbuilder"
)

var notificationColumns = []string{
	"id",
	"business_id",
	"appointment_id",
	"type",
	"message",
	"is_read",
	"created_at",
}

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое уведомление
func (r *Repository) Create(ctx context.Context, notif *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("business_id", "appointment_id", "type", "message").
		Values(notif.BusinessID, notif.AppointmentID, notif.Type, notif.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&notif.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	notif.CreatedAt = createdAt.Time

	return notif, nil
}

// GetByBusiness получает последние уведомления бизнеса, новые первыми
// При unreadOnly выдача ограничивается непрочитанными
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64, unreadOnly bool, limit uint64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"business_id": businessID})

	if unreadOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC, id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var notif domain.Notification
		var createdAt sql.NullTime

		err := rows.Scan(
			&notif.ID,
			&notif.BusinessID,
			&notif.AppointmentID,
			&notif.Type,
			&notif.Message,
			&notif.IsRead,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBusiness - scan row: %v", ErrScanRow, err)
		}

		notif.CreatedAt = createdAt.Time
		notifications = append(notifications, &notif)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// CountUnread считает непрочитанные уведомления бизнеса
func (r *Repository) CountUnread(ctx context.Context, businessID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{
			"business_id": businessID,
			"is_read":     false,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// MarkRead помечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления бизнеса прочитанными
// Идемпотентна: повторный вызов не является ошибкой
func (r *Repository) MarkAllRead(ctx context.Context, businessID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{
			"business_id": businessID,
			"is_read":     false,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteAll удаляет все строки таблицы (используется при сбросе настройки)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("notifications").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
