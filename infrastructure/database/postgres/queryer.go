package postgres

import (
	"database/sql"
)

// Queryer abstrae la ejecución de consultas para los repositorios
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
