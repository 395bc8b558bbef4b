package repository

import (
	"database/sql"
	"fmt"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/database/postgres"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/Masterminds/squirrel"
)

const (
	userTable   = "app_user u"
	userColumns = "u.id, u.name, u.lastname, u.email, u.password_hash, u.active, u.role_id, u.contractor, u.created_at, u.updated_at"
)

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	CreateUser(user *domain.User) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUserWhere(squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	return r.getUserWhere(squirrel.Eq{"u.id": id})
}

func (r *userRepository) getUserWhere(condition squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(userTable).
		Where(condition).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	user := &domain.User{}

	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Contractor,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear usuario: %w", err)
	}

	return user, nil
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("app_user").
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "contractor").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID, user.Contractor).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir query de inserción: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error al crear usuario: %w", err)
	}

	return user, nil
}
