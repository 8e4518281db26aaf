package availability_request

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const table = "availability_requests"

var columns = []string{
	"id",
	"name",
	"email",
	"phone",
	"company",
	"message",
	"status",
	"created_at",
	"resolved_at",
}

// Repository репозиторий запросов "есть ли кто-то свободный прямо сейчас"
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запрос, ID генерируется на стороне приложения
func (r *Repository) Create(ctx context.Context, req *domain.AvailabilityRequest) (*domain.AvailabilityRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "email", "phone", "company", "message", "status").
		Values(req.ID, req.Name, req.Email, req.Phone, req.Company, req.Message, req.Status).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanAvailabilityRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan availability request: %v", ErrScanRow, err)
	}

	return req, nil
}

// Resolve переводит ожидающий запрос в итоговый статус
// Если запрос уже разрешен, возвращает ErrNotPending
func (r *Repository) Resolve(
	ctx context.Context,
	id uuid.UUID,
	status domain.AvailabilityRequestStatus,
	resolvedAt time.Time,
) (*domain.AvailabilityRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{"id": id, "status": domain.AvailabilityPending}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - build update query: %v", ErrBuildQuery, err)
	}

	req, err := scanAvailabilityRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - execute update: %v", ErrExecQuery, err)
	}

	return req, nil
}

// DeletePendingOlderThan удаляет неразрешенные запросы, созданные раньше cutoff
func (r *Repository) DeletePendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"status": domain.AvailabilityPending}).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeletePendingOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeletePendingOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeletePendingOlderThan - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailabilityRequest(row scanner) (*domain.AvailabilityRequest, error) {
	var req domain.AvailabilityRequest
	var company, message sql.NullString
	var resolvedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&req.Phone,
		&company,
		&message,
		&req.Status,
		&req.CreatedAt,
		&resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if company.Valid {
		req.Company = &company.String
	}
	if message.Valid {
		req.Message = &message.String
	}
	if resolvedAt.Valid {
		req.ResolvedAt = &resolvedAt.Time
	}

	return &req, nil
}
