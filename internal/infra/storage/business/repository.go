package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/dbmetrics"
	"github.com/randevuhub/RH-AppointmentService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var businessColumns = []string{
	"id",
	"name",
	"slug",
	"sector",
	"description",
	"address",
	"phone",
	"admin_password",
	"working_days",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"is_setup_complete",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бизнесами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый бизнес
func (r *Repository) Create(ctx context.Context, biz *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("businesses").
		Columns(
			"name",
			"slug",
			"sector",
			"description",
			"address",
			"phone",
			"admin_password",
			"working_days",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"is_setup_complete",
		).
		Values(
			biz.Name,
			biz.Slug,
			biz.Sector,
			biz.Description,
			biz.Address,
			biz.Phone,
			biz.AdminPassword,
			biz.WorkingDays.String(),
			biz.OpenTime,
			biz.CloseTime,
			biz.SlotDurationMinutes,
			biz.IsSetupComplete,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&biz.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrBusinessExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	biz.CreatedAt = createdAt.Time
	biz.UpdatedAt = updatedAt.Time

	return biz, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает бизнес по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

// GetFirst получает первый (и в рамках деплоя единственный) бизнес
func (r *Repository) GetFirst(ctx context.Context) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFirst - build select query: %v", ErrBuildQuery, err)
	}

	biz, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFirst - scan business: %v", ErrScanRow, err)
	}

	return biz, nil
}

// Exists проверяет наличие хотя бы одного бизнеса
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("businesses").
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update обновляет настраиваемые поля бизнеса
func (r *Repository) Update(ctx context.Context, biz *domain.Business) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("businesses").
		Set("name", biz.Name).
		Set("sector", biz.Sector).
		Set("description", biz.Description).
		Set("address", biz.Address).
		Set("phone", biz.Phone).
		Set("working_days", biz.WorkingDays.String()).
		Set("open_time", biz.OpenTime).
		Set("close_time", biz.CloseTime).
		Set("slot_duration_minutes", biz.SlotDurationMinutes).
		Set("is_setup_complete", biz.IsSetupComplete).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": biz.ID}).
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
		return ErrBusinessNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	biz, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan business: %v", ErrScanRow, method, err)
	}

	return biz, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (*domain.Business, error) {
	var biz domain.Business
	var workingDaysCSV string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&biz.ID,
		&biz.Name,
		&biz.Slug,
		&biz.Sector,
		&biz.Description,
		&biz.Address,
		&biz.Phone,
		&biz.AdminPassword,
		&workingDaysCSV,
		&biz.OpenTime,
		&biz.CloseTime,
		&biz.SlotDurationMinutes,
		&biz.IsSetupComplete,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	biz.WorkingDays, err = domain.ParseWorkingDays(workingDaysCSV)
	if err != nil {
		return nil, fmt.Errorf("parse working_days %q: %v", workingDaysCSV, err)
	}

	biz.CreatedAt = createdAt.Time
	biz.UpdatedAt = updatedAt.Time

	return &biz, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// DeleteAll удаляет все строки таблицы (используется при сбросе настройки)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("businesses").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
