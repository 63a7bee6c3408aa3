package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/dbmetrics"
	"github.com/randevuhub/RH-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с карточками клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет карточку клиента по номеру телефона
// Повторная запись с того же номера перезаписывает имя (последнее имя побеждает)
func (r *Repository) Upsert(ctx context.Context, phone, name string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("phone", "name").
		Values(phone, name).
		Suffix(`ON CONFLICT (phone) DO UPDATE
			SET name = EXCLUDED.name, updated_at = NOW()
			RETURNING id, phone, name, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var cust domain.Customer
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cust.ID,
		&cust.Phone,
		&cust.Name,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cust.CreatedAt = createdAt.Time
	cust.UpdatedAt = updatedAt.Time

	return &cust, nil
}

// GetSummariesByBusiness получает карточки клиентов бизнеса со сводкой по записям
// Клиент попадает в выдачу, если у него есть хотя бы одна запись в этом бизнесе
func (r *Repository) GetSummariesByBusiness(ctx context.Context, businessID int64) ([]*domain.CustomerSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.phone",
		"c.name",
		"c.created_at",
		"c.updated_at",
		"COUNT(a.id) AS appointment_count",
		"MAX(a.appointment_date) AS last_appointment_date",
	).
		From("customers c").
		Join("appointments a ON a.customer_phone = c.phone").
		Where("a.business_id = ?", businessID).
		GroupBy("c.id", "c.phone", "c.name", "c.created_at", "c.updated_at").
		OrderBy("last_appointment_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSummariesByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSummariesByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summaries := make([]*domain.CustomerSummary, 0)
	for rows.Next() {
		var summary domain.CustomerSummary
		var createdAt, updatedAt, lastDate sql.NullTime

		err := rows.Scan(
			&summary.ID,
			&summary.Phone,
			&summary.Name,
			&createdAt,
			&updatedAt,
			&summary.AppointmentCount,
			&lastDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetSummariesByBusiness - scan row: %v", ErrScanRow, err)
		}

		summary.CreatedAt = createdAt.Time
		summary.UpdatedAt = updatedAt.Time
		if lastDate.Valid {
			d := lastDate.Time
			summary.LastAppointmentDate = &d
		}

		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSummariesByBusiness - rows error: %v", ErrScanRow, err)
	}

	return summaries, nil
}

// DeleteAll удаляет все строки таблицы (используется при сбросе настройки)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("customers").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
