// Package storage реализует хранилище перевалов на основе PostgreSQL.
// Все изменяющие операции выполняются в одной транзакции: либо запись видна
// целиком (перевал, пользователь, изображения), либо не видна совсем.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// Storage инкапсулирует пул соединений с PostgreSQL.
type Storage struct {
	DB           *sql.DB
	queryTimeout time.Duration
}

// Option настраивает Storage.
type Option func(*Storage)

// WithQueryTimeout задаёт дедлайн на каждую операцию хранилища.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Storage) {
		s.queryTimeout = d
	}
}

// WithPool задаёт параметры пула соединений.
func WithPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(s *Storage) {
		s.DB.SetMaxOpenConns(maxOpen)
		s.DB.SetMaxIdleConns(maxIdle)
		s.DB.SetConnMaxLifetime(maxLifetime)
	}
}

// New создаёт подключение к PostgreSQL и проверяет его.
func New(storageConnectionString string, opts ...Option) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s := &Storage{DB: db}
	for _, opt := range opts {
		opt(s)
	}

	ctx, cancel := s.withTimeout(context.Background())
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.DB.PingContext(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// withTx выполняет fn в транзакции. Любая ошибка fn откатывает транзакцию
// до того, как соединение вернётся в пул.
func (s *Storage) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// classify добавляет к ошибке op и класс: доменные ошибки проходят как есть,
// ошибки данных PostgreSQL (SQLSTATE 22xxx) считаются ошибкой ввода,
// всё остальное — ошибкой хранилища.
func classify(op string, err error) error {
	if errors.Is(err, models.ErrInvalid) || errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrConflict) {
		return fmt.Errorf("%s: %w", op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsDataException(pgErr.Code) {
		return fmt.Errorf("%s: %w: %w", op, models.ErrInvalid, err)
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}

// CheckDatabaseReady проверяет, что миграции применены.
func CheckDatabaseReady(ctx context.Context, storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'pereval_added'
    )`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("storage.CheckDatabaseReady: %w", err)
	}
	if !exists {
		return fmt.Errorf("storage.CheckDatabaseReady: required table pereval_added is missing")
	}
	return nil
}
