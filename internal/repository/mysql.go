package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/GulizarHanum/Birthday/internal/config"
	"github.com/GulizarHanum/Birthday/internal/model"
)

// OpenMySQL opens a connection pool to the MySQL database described by the configuration and
// checks that the database answers.
func OpenMySQL(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := mysql.NewConfig()
	dsn.Net = "tcp"
	dsn.Addr = cfg.Host
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.DBName = cfg.Name
	dsn.ParseTime = true

	sqlDB, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqlDB, nil
}

// MySQLStore keeps birthdays in the birthdays table of a MySQL database.
type MySQLStore struct {
	db *sqlx.DB

	// insert is a prepared statement for creating a birthday.
	insert *sqlx.NamedStmt

	// update is a prepared statement for overwriting all fields of a birthday.
	update *sqlx.NamedStmt

	// selectWhereId is a prepared statement for selecting the birthday with a given id.
	selectWhereId *sqlx.Stmt

	// deleteWhereId is a prepared statement for deleting the birthday with a given id.
	deleteWhereId *sqlx.Stmt
}

// NewMySQLStore wraps the sql database with sqlx and prepares all statements. The database
// argument can be a real database for production use or a mock database within unit tests.
func NewMySQLStore(ctx context.Context, sqlDB *sql.DB) (*MySQLStore, error) {
	var err error
	s := &MySQLStore{db: sqlx.NewDb(sqlDB, "mysql")}

	// Prepared statements offer a significant speed increase if executed many times.
	s.insert, err = s.db.PrepareNamedContext(ctx, `
		INSERT INTO birthdays (name, date, role, photo)
		VALUES (:name, :date, :role, :photo)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	s.update, err = s.db.PrepareNamedContext(ctx, `
		UPDATE birthdays SET name=:name, date=:date, role=:role, photo=:photo WHERE id=:id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare update: %w", err)
	}
	s.selectWhereId, err = s.db.PreparexContext(ctx, `
		SELECT id, name, date, role, photo FROM birthdays WHERE id=?
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select: %w", err)
	}
	s.deleteWhereId, err = s.db.PreparexContext(ctx, `
		DELETE FROM birthdays WHERE id=?
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare delete: %w", err)
	}
	return s, nil
}

// FindByID implements Store.
func (s *MySQLStore) FindByID(ctx context.Context, id int64) (model.Birthday, error) {
	var birthdays []model.Birthday
	if err := s.selectWhereId.SelectContext(ctx, &birthdays, id); err != nil {
		return model.Birthday{}, fmt.Errorf("failed to select birthday %d: %w", id, err)
	}
	if len(birthdays) == 0 {
		return model.Birthday{}, ErrNotFound
	}
	return birthdays[0], nil
}

// FindAll implements Store.
func (s *MySQLStore) FindAll(ctx context.Context) ([]model.Birthday, error) {
	birthdays := []model.Birthday{}
	err := s.db.SelectContext(ctx, &birthdays, `
		SELECT id, name, date, role, photo FROM birthdays ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select birthdays: %w", err)
	}
	return birthdays, nil
}

// Save implements Store. MySQL reports zero affected rows for an update that does not change
// any value, so the update path cannot detect a missing row; callers check existence first.
func (s *MySQLStore) Save(ctx context.Context, birthday *model.Birthday) error {
	if birthday.Id != 0 {
		if _, err := s.update.ExecContext(ctx, birthday); err != nil {
			return fmt.Errorf("failed to update birthday %d: %w", birthday.Id, err)
		}
		return nil
	}
	result, err := s.insert.ExecContext(ctx, birthday)
	if err != nil {
		return fmt.Errorf("failed to insert birthday: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read id of new birthday: %w", err)
	}
	birthday.Id = id
	return nil
}

// DeleteByID implements Store.
func (s *MySQLStore) DeleteByID(ctx context.Context, id int64) error {
	result, err := s.deleteWhereId.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete birthday %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the prepared statements and the database handle.
func (s *MySQLStore) Close() error {
	s.insert.Close()
	s.update.Close()
	s.selectWhereId.Close()
	s.deleteWhereId.Close()
	return s.db.Close()
}
