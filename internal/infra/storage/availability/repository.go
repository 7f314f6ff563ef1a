package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CounselingService/pkg/psqlbuilder"
)

// Row строка таблицы counselor_availability
// time_scheduled хранится в человекочитаемом виде "H:MM AM - H:MM PM";
// разбор строки выполняется выше по стеку с пропуском повреждённых записей
type Row struct {
	ID            int64
	CounselorID   int64
	Weekday       domain.Weekday
	TimeScheduled string
}

// Repository репозиторий для работы с доступностью консультантов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCounselor получает все сохраненные диапазоны консультанта за все дни недели
func (r *Repository) GetByCounselor(ctx context.Context, counselorID int64) ([]Row, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "counselor_id", "weekday", "time_scheduled").
		From("counselor_availability").
		Where(squirrel.Eq{"counselor_id": counselorID}).
		OrderBy("weekday ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCounselor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCounselor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetByCounselorAndWeekday получает диапазоны консультанта на один день недели
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы конкурентные
// добавление и удаление диапазона одного консультанта не переплелись
// в повреждённый merged-набор
func (r *Repository) GetByCounselorAndWeekday(ctx context.Context, counselorID int64, weekday domain.Weekday) ([]Row, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "counselor_id", "weekday", "time_scheduled").
		From("counselor_availability").
		Where(squirrel.Eq{"counselor_id": counselorID, "weekday": weekday}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCounselorAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCounselorAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ListByWeekday получает диапазоны всех консультантов на день недели
// Используется в режиме "без предпочтений", когда слоты объединяются
// по всем консультантам
func (r *Repository) ListByWeekday(ctx context.Context, weekday domain.Weekday) ([]Row, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "counselor_id", "weekday", "time_scheduled").
		From("counselor_availability").
		Where(squirrel.Eq{"weekday": weekday}).
		OrderBy("counselor_id ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ReplaceDay заменяет все диапазоны консультанта на день недели новым набором
// Вызывается из конвейера add-range -> normalize -> merge -> persist, поэтому
// labels уже отсортированы и дизъюнктны. Выполнять внутри транзакции
func (r *Repository) ReplaceDay(ctx context.Context, counselorID int64, weekday domain.Weekday, labels []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("counselor_availability").
		Where(squirrel.Eq{"counselor_id": counselorID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDay - execute delete: %v", ErrExecQuery, err)
	}

	if len(labels) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("counselor_availability").
		Columns("counselor_id", "weekday", "time_scheduled")
	for _, label := range labels {
		insertBuilder = insertBuilder.Values(counselorID, weekday, label)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteRange удаляет один конкретный диапазон дня
func (r *Repository) DeleteRange(ctx context.Context, counselorID int64, weekday domain.Weekday, label string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("counselor_availability").
		Where(squirrel.Eq{
			"counselor_id":   counselorID,
			"weekday":        weekday,
			"time_scheduled": label,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRange - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteRange - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRangeNotFound
	}

	return nil
}

// scanRows сканирует результаты запроса в слайс строк доступности
func (r *Repository) scanRows(rows *sql.Rows) ([]Row, error) {
	out := make([]Row, 0)

	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.CounselorID, &row.Weekday, &row.TimeScheduled); err != nil {
			return nil, fmt.Errorf("%w: scanRows - scan row: %v", ErrScanRow, err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRows - rows error: %v", ErrScanRow, err)
	}

	return out, nil
}
