package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func ConnectDB(dsn string) (*pgxpool.Pool, error) {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o pool de conexões: %w", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("não foi possível pingar o banco: %w", err)
	}

	return dbpool, nil
}

// RunMigrations aplica as migrações goose pendentes usando o mesmo pool.
func RunMigrations(pool *pgxpool.Pool, dir string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar o dialeto das migrações: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("erro ao aplicar as migrações: %w", err)
	}
	return nil
}
