package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/pkg/dbmetrics"
	"github.com/civicreg/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий строк доступности (Slot Ledger)
// Счётчик available_kiosks меняется только через Reserve и Release
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert вставляет строку доступности, если её ещё нет
// Существующая строка не перезаписывается: у неё уже могут быть бронирования,
// и сброс available_kiosks нарушил бы инвариант счётчика
func (r *Repository) Upsert(ctx context.Context, slot *domain.AvailabilitySlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns(
			"center_id",
			"slot_date",
			"from_time",
			"to_time",
			"total_kiosks",
			"available_kiosks",
		).
		Values(
			slot.CenterID,
			slot.Date,
			slot.FromTime,
			slot.ToTime,
			slot.TotalKiosks,
			slot.AvailableKiosks,
		).
		Suffix("ON CONFLICT (center_id, slot_date, from_time, to_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// FindDates возвращает отсортированный список дат, на которые у центра есть слоты
// в диапазоне [from, to]
func (r *Repository) FindDates(ctx context.Context, centerID string, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT slot_date").
		From("availability_slots").
		Where(squirrel.Eq{"center_id": centerID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: FindDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// FindByCenterAndDate возвращает слоты центра на дату, отсортированные по времени начала
func (r *Repository) FindByCenterAndDate(ctx context.Context, centerID string, date time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSlotColumns().
		Where(squirrel.Eq{"center_id": centerID}).
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("from_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByCenterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByCenterAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// FindByWindow возвращает строку доступности по точным координатам слота
func (r *Repository) FindByWindow(ctx context.Context, desc domain.SlotDescriptor) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSlotColumns().
		Where(squirrel.Eq{
			"center_id": desc.CenterID,
			"slot_date": desc.Date,
			"from_time": desc.FromTime,
			"to_time":   desc.ToTime,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByWindow - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.AvailabilitySlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.CenterID,
		&slot.Date,
		&slot.FromTime,
		&slot.ToTime,
		&slot.TotalKiosks,
		&slot.AvailableKiosks,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByWindow - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// Reserve атомарно уменьшает available_kiosks на 1
// Условный UPDATE с available_kiosks > 0 гарантирует, что слот не уйдёт в минус,
// даже если вызов гонится с другим процессом
func (r *Repository) Reserve(ctx context.Context, desc domain.SlotDescriptor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("available_kiosks", squirrel.Expr("available_kiosks - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"center_id": desc.CenterID,
			"slot_date": desc.Date,
			"from_time": desc.FromTime,
			"to_time":   desc.ToTime,
		}).
		Where(squirrel.Gt{"available_kiosks": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем отсутствие строки и исчерпание вместимости
		if _, findErr := r.FindByWindow(ctx, desc); findErr != nil {
			return findErr
		}
		return ErrCapacityExhausted
	}

	return nil
}

// Release атомарно увеличивает available_kiosks на 1
// Условие available_kiosks < total_kiosks не даёт счётчику превысить вместимость
func (r *Repository) Release(ctx context.Context, desc domain.SlotDescriptor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("available_kiosks", squirrel.Expr("available_kiosks + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"center_id": desc.CenterID,
			"slot_date": desc.Date,
			"from_time": desc.FromTime,
			"to_time":   desc.ToTime,
		}).
		Where(squirrel.Expr("available_kiosks < total_kiosks")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, findErr := r.FindByWindow(ctx, desc); findErr != nil {
			return findErr
		}
		return ErrAlreadyAtCapacity
	}

	return nil
}

func selectSlotColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"center_id",
		"slot_date",
		"from_time",
		"to_time",
		"total_kiosks",
		"available_kiosks",
		"created_at",
		"updated_at",
	).From("availability_slots")
}

func scanSlots(rows *sql.Rows) ([]*domain.AvailabilitySlot, error) {
	slots := make([]*domain.AvailabilitySlot, 0)

	for rows.Next() {
		var slot domain.AvailabilitySlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.CenterID,
			&slot.Date,
			&slot.FromTime,
			&slot.ToTime,
			&slot.TotalKiosks,
			&slot.AvailableKiosks,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
