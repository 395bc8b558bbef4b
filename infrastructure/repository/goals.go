package repository

import (
	"database/sql"
	"fmt"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/database/postgres"
	"github.com/Masterminds/squirrel"
)

const goalTable = "goal g"

type GoalsRepository interface {
	GetGoals(contractor string) (map[string]map[string]float64, error)
	SaveGoal(contractor, category, strategy string, target float64) error
}

type goalsRepository struct {
	conn *postgres.Connection
}

func NewGoalsRepository(conn *postgres.Connection) GoalsRepository {
	return &goalsRepository{
		conn: conn,
	}
}

// GetGoals devuelve las metas configuradas de un contratista como mapa
// categoría → estrategia → meta numérica
func (r *goalsRepository) GetGoals(contractor string) (map[string]map[string]float64, error) {
	query, args, err := squirrel.
		Select("g.category", "g.strategy", "g.target").
		From(goalTable).
		Where(squirrel.Eq{"g.contractor": contractor}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]map[string]float64{}, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	goals := make(map[string]map[string]float64)

	for rows.Next() {
		var category, strategy string
		var target float64

		if err := rows.Scan(&category, &strategy, &target); err != nil {
			return nil, fmt.Errorf("error al escanear meta: %w", err)
		}

		if goals[category] == nil {
			goals[category] = make(map[string]float64)
		}
		goals[category][strategy] = target
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return goals, nil
}

func (r *goalsRepository) SaveGoal(contractor, category, strategy string, target float64) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("goal").
		Columns("contractor", "category", "strategy", "target").
		Values(contractor, category, strategy, target).
		Suffix(`
			ON CONFLICT (contractor, category, strategy) DO UPDATE SET
				target = EXCLUDED.target,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir query de inserción: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al guardar meta: %w", err)
	}

	return nil
}
