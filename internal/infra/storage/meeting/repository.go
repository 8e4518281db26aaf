package meeting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const table = "meetings"

var columns = []string{
	"id",
	"host_user_id",
	"participant_user_ids",
	"participant_company_ids",
	"access_type",
	"scheduled_at",
	"duration_minutes",
	"status",
	"join_reference",
	"meeting_request_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий встреч
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет встречу
// Пересечение с другой активной встречей отсекается exclusion constraint'ом и
// возвращается как ErrSlotOccupied
func (r *Repository) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"host_user_id",
			"participant_user_ids",
			"participant_company_ids",
			"access_type",
			"scheduled_at",
			"duration_minutes",
			"ends_at",
			"status",
			"join_reference",
			"meeting_request_id",
		).
		Values(
			meeting.HostUserID,
			pq.Int64Array(meeting.ParticipantUserIDs),
			pq.Int64Array(meeting.ParticipantCompanyIDs),
			meeting.AccessType,
			meeting.ScheduledAt,
			meeting.DurationMinutes,
			meeting.EndsAt(),
			meeting.Status,
			meeting.JoinReference,
			meeting.MeetingRequestID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&meeting.ID, &createdAt, &updatedAt)
	if err != nil {
		if mapped, ok := mapInsertError(err); ok {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	meeting.CreatedAt = createdAt.Time
	meeting.UpdatedAt = updatedAt.Time

	return meeting, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	meeting, err := scanMeeting(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan meeting: %v", ErrScanRow, err)
	}

	return meeting, nil
}

// ListActiveOverlapping возвращает активные встречи, пересекающиеся с [from, to)
func (r *Repository) ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"scheduled_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("scheduled_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveOverlapping - scan meeting: %v", ErrScanRow, err)
		}
		meetings = append(meetings, meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - rows error: %v", ErrScanRow, err)
	}

	return meetings, nil
}

// HasActiveOverlap проверяет, занят ли [from, to) активной встречей
// Внутри транзакции строки блокируются FOR UPDATE
func (r *Repository) HasActiveOverlap(ctx context.Context, from, to time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"scheduled_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveOverlap - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveMeetingStatuses))
	for i, s := range domain.ActiveMeetingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMeeting(row scanner) (*domain.Meeting, error) {
	var meeting domain.Meeting
	var userIDs, companyIDs pq.Int64Array
	var requestID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&meeting.ID,
		&meeting.HostUserID,
		&userIDs,
		&companyIDs,
		&meeting.AccessType,
		&meeting.ScheduledAt,
		&meeting.DurationMinutes,
		&meeting.Status,
		&meeting.JoinReference,
		&requestID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	meeting.ParticipantUserIDs = []int64(userIDs)
	meeting.ParticipantCompanyIDs = []int64(companyIDs)
	if requestID.Valid {
		id := requestID.Int64
		meeting.MeetingRequestID = &id
	}
	meeting.CreatedAt = createdAt.Time
	meeting.UpdatedAt = updatedAt.Time

	return &meeting, nil
}
