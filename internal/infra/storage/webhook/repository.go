package webhook

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/dbmetrics"
	"github.com/randevuhub/RH-AppointmentService/pkg/psqlbuilder"
)

var webhookColumns = []string{
	"id",
	"business_id",
	"url",
	"event",
	"secret",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с подписками на события
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую подписку
func (r *Repository) Create(ctx context.Context, hook *domain.Webhook) (*domain.Webhook, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("webhooks").
		Columns("business_id", "url", "event", "secret", "is_active").
		Values(hook.BusinessID, hook.URL, hook.Event, hook.Secret, hook.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hook.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hook.CreatedAt = createdAt.Time
	hook.UpdatedAt = updatedAt.Time

	return hook, nil
}

// GetByID получает подписку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Webhook, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(webhookColumns...).
		From("webhooks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	hook, err := scanWebhook(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWebhookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan webhook: %v", ErrScanRow, err)
	}

	return hook, nil
}

// GetByBusiness получает подписки бизнеса, новые первыми
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) ([]*domain.Webhook, error) {
	return r.getList(ctx, squirrel.Eq{"business_id": businessID}, "GetByBusiness")
}

// GetActiveByEvent получает активные подписки на указанное событие
// Выборка диспетчера: фильтр только по событию и активности
func (r *Repository) GetActiveByEvent(ctx context.Context, event domain.WebhookEvent) ([]*domain.Webhook, error) {
	return r.getList(ctx, squirrel.Eq{
		"event":     event,
		"is_active": true,
	}, "GetActiveByEvent")
}

// Update обновляет изменяемые поля подписки
func (r *Repository) Update(ctx context.Context, hook *domain.Webhook) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("webhooks").
		Set("url", hook.URL).
		Set("event", hook.Event).
		Set("secret", hook.Secret).
		Set("is_active", hook.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": hook.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWebhookNotFound
	}

	return nil
}

// Delete удаляет подписку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("webhooks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWebhookNotFound
	}

	return nil
}

func (r *Repository) getList(ctx context.Context, where squirrel.Eq, method string) ([]*domain.Webhook, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(webhookColumns...).
		From("webhooks").
		Where(where).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	hooks := make([]*domain.Webhook, 0)
	for rows.Next() {
		hook, err := scanWebhook(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		hooks = append(hooks, hook)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return hooks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWebhook(row rowScanner) (*domain.Webhook, error) {
	var hook domain.Webhook
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hook.ID,
		&hook.BusinessID,
		&hook.URL,
		&hook.Event,
		&hook.Secret,
		&hook.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hook.CreatedAt = createdAt.Time
	hook.UpdatedAt = updatedAt.Time

	return &hook, nil
}

// DeleteAll удаляет все строки таблицы (используется при сбросе настройки)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("webhooks").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
