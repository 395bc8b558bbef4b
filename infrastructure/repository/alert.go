package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/database/postgres"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/Masterminds/squirrel"
)

const alertTable = "alert al"

type AlertRepository interface {
	ListActiveAlerts() (*domain.AlertsResponse, error)
	ReplaceAlerts(contractor string, alerts []*domain.Alert) error
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) ListActiveAlerts() (*domain.AlertsResponse, error) {
	query, args, err := squirrel.
		Select("al.id", "al.contractor", "al.type", "al.level", "al.category", "al.message", "al.active", "al.created_at", "al.updated_at").
		From(alertTable).
		Where(squirrel.Eq{"al.active": true}).
		OrderBy("al.level ASC, al.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.AlertsResponse{Alerts: []domain.Alert{}, LastUpdate: time.Now()}, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0)
	var lastUpdate time.Time

	for rows.Next() {
		var alert domain.Alert

		err := rows.Scan(
			&alert.ID,
			&alert.Contractor,
			&alert.Type,
			&alert.Level,
			&alert.Category,
			&alert.Message,
			&alert.Active,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear alerta: %w", err)
		}

		alerts = append(alerts, alert)

		if alert.UpdatedAt.After(lastUpdate) {
			lastUpdate = alert.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.AlertsResponse{Alerts: alerts, LastUpdate: lastUpdate}, nil
}

// ReplaceAlerts desactiva las alertas vigentes del contratista y guarda el
// conjunto recién evaluado, en una sola transacción para que la reevaluación
// periódica sea idempotente de cara a los lectores
func (r *alertRepository) ReplaceAlerts(contractor string, alerts []*domain.Alert) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE alert SET active = false, updated_at = CURRENT_TIMESTAMP WHERE contractor = $1 AND active = true`, contractor); err != nil {
			return fmt.Errorf("error al desactivar alertas previas: %w", err)
		}

		if len(alerts) == 0 {
			return nil
		}

		query := squirrel.StatementBuilder.
			Insert("alert").
			Columns("id", "contractor", "type", "level", "category", "message", "active").
			PlaceholderFormat(squirrel.Dollar)

		for _, alert := range alerts {
			query = query.Values(
				alert.ID,
				alert.Contractor,
				alert.Type,
				alert.Level,
				alert.Category,
				alert.Message,
				true,
			)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("error al construir query de inserción: %w", err)
		}

		if _, err := tx.Exec(sqlQuery, args...); err != nil {
			return fmt.Errorf("error al guardar alertas: %w", err)
		}

		return nil
	})
}
