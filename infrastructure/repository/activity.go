// Package repository contiene las implementaciones de acceso a datos
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/database/postgres"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/Masterminds/squirrel"
)

const (
	activityTable   = "activity a"
	activityColumns = "a.id, a.date, a.contractor, a.type, a.subtype, a.location_name, a.location_type, a.beneficiaries, a.educational_included, a.educational_type, a.created_at, a.updated_at"
)

type ActivityRepository interface {
	ListActivities() ([]*domain.Activity, error)
	GetByDateRange(start, end time.Time) ([]*domain.Activity, error)
	CountByContractorSince(contractor string, since time.Time) (int, error)
	SaveOrUpdateActivities(activities []*domain.Activity) error
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) ListActivities() ([]*domain.Activity, error) {
	query, args, err := squirrel.
		Select(activityColumns).
		From(activityTable).
		OrderBy("a.date ASC NULLS LAST, a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	return r.queryActivities(query, args...)
}

func (r *activityRepository) GetByDateRange(start, end time.Time) ([]*domain.Activity, error) {
	query, args, err := squirrel.
		Select(activityColumns).
		From(activityTable).
		Where(squirrel.GtOrEq{"a.date": start}).
		Where(squirrel.LtOrEq{"a.date": end}).
		OrderBy("a.date ASC, a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	return r.queryActivities(query, args...)
}

func (r *activityRepository) CountByContractorSince(contractor string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(activityTable).
		Where(squirrel.Eq{"a.contractor": contractor}).
		Where(squirrel.GtOrEq{"a.date": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar actividades: %w", err)
	}

	return count, nil
}

// SaveOrUpdateActivities inserta en lote las actividades sincronizadas desde
// la app de campo, actualizando los registros ya existentes (upsert por id)
func (r *activityRepository) SaveOrUpdateActivities(activities []*domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("activity").
		Columns(
			"id",
			"date",
			"contractor",
			"type",
			"subtype",
			"location_name",
			"location_type",
			"beneficiaries",
			"educational_included",
			"educational_type",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, activity := range activities {
		var date interface{}
		if activity.Date != nil && !activity.Date.IsZero() {
			date = *activity.Date
		}

		educationalIncluded := false
		educationalType := ""
		if activity.Educational != nil {
			educationalIncluded = activity.Educational.Included
			educationalType = activity.Educational.Type
		}

		locationName := ""
		locationType := ""
		if activity.Location != nil {
			locationName = activity.Location.Name
			locationType = activity.Location.Type
		}

		query = query.Values(
			activity.ID,
			date,
			activity.Contractor,
			activity.Type,
			activity.Subtype,
			locationName,
			locationType,
			activity.Beneficiaries,
			educationalIncluded,
			educationalType,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			contractor = EXCLUDED.contractor,
			type = EXCLUDED.type,
			subtype = EXCLUDED.subtype,
			location_name = EXCLUDED.location_name,
			location_type = EXCLUDED.location_type,
			beneficiaries = EXCLUDED.beneficiaries,
			educational_included = EXCLUDED.educational_included,
			educational_type = EXCLUDED.educational_type,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir query de inserción: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error al ejecutar query de inserción: %w", err)
	}

	return nil
}

func (r *activityRepository) queryActivities(query string, args ...interface{}) ([]*domain.Activity, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Activity{}, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)

	for rows.Next() {
		activity, err := r.scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear actividad: %w", err)
		}
		activities = append(activities, activity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) scanActivity(rows *sql.Rows) (*domain.Activity, error) {
	activity := &domain.Activity{
		Location:    &domain.Location{},
		Educational: &domain.EducationalActivity{},
	}

	var date sql.NullTime

	err := rows.Scan(
		&activity.ID,
		&date,
		&activity.Contractor,
		&activity.Type,
		&activity.Subtype,
		&activity.Location.Name,
		&activity.Location.Type,
		&activity.Beneficiaries,
		&activity.Educational.Included,
		&activity.Educational.Type,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		activity.Date = &date.Time
	}

	return activity, nil
}
