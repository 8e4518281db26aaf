package meeting_request

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const table = "meeting_requests"

var columns = []string{
	"id",
	"name",
	"email",
	"company",
	"phone",
	"message",
	"selected_time_slots",
	"status",
	"confirmed_slot",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на встречу
// Выбранные слоты хранятся как BIGINT[] unix-секунд начала слота
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, req *domain.MeetingRequest) (*domain.MeetingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"email",
			"company",
			"phone",
			"message",
			"selected_time_slots",
			"status",
		).
		Values(
			req.Name,
			req.Email,
			req.Company,
			req.Phone,
			req.Message,
			slotsToArray(req.SelectedTimeSlots),
			req.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MeetingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanMeetingRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMeetingRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan meeting request: %v", ErrScanRow, err)
	}

	return req, nil
}

// List возвращает заявки по фильтру, новые первыми
// SlotFrom/SlotTo отбирают заявки, у которых хотя бы один выбранный слот начинается в [SlotFrom, SlotTo)
func (r *Repository) List(ctx context.Context, filter domain.MeetingRequestFilter) ([]*domain.MeetingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.SlotFrom != nil || filter.SlotTo != nil {
		from := int64(0)
		to := int64(1<<63 - 1)
		if filter.SlotFrom != nil {
			from = filter.SlotFrom.Unix()
		}
		if filter.SlotTo != nil {
			to = filter.SlotTo.Unix()
		}
		selectBuilder = selectBuilder.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM unnest(selected_time_slots) AS s WHERE s >= ? AND s < ?)", from, to,
		))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.MeetingRequest, 0)
	for rows.Next() {
		req, err := scanMeetingRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan meeting request: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// UpdateStatus условно переводит заявку из статуса from в to
// Если статус уже не from, возвращает ErrStatusChanged
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to domain.MeetingRequestStatus,
	confirmedSlot *time.Time,
) (*domain.MeetingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", to).
		Set("confirmed_slot", confirmedSlot).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	req, err := scanMeetingRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStatusChanged
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return req, nil
}

func slotsToArray(slots []domain.TimeSlot) pq.Int64Array {
	out := make(pq.Int64Array, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Unix()
	}
	return out
}

func arrayToSlots(arr pq.Int64Array) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(arr))
	for i, sec := range arr {
		out[i] = domain.NewTimeSlot(time.Unix(sec, 0).UTC())
	}
	return out
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMeetingRequest(row scanner) (*domain.MeetingRequest, error) {
	var req domain.MeetingRequest
	var company, message sql.NullString
	var slots pq.Int64Array
	var confirmedSlot, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&company,
		&req.Phone,
		&message,
		&slots,
		&req.Status,
		&confirmedSlot,
		&createdAt,
		&updatedAt,
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
	req.SelectedTimeSlots = arrayToSlots(slots)
	if confirmedSlot.Valid {
		slot := domain.NewTimeSlot(confirmedSlot.Time)
		req.ConfirmedSlot = &slot
	}
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
