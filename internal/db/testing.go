package db

import (
	"context"
	"fmt"
	"orderping/internal/db/migrations"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
)

// TestDatabaseURL returns the test database connection string, or an
// empty string when no test database is configured.
func TestDatabaseURL() string {
	return os.Getenv("TEST_POSTGRESQL_URL")
}

func CreateTestPool() *pgxpool.Pool {
	connString := TestDatabaseURL()
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	if err := migrations.Apply(connString); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations: %v.", err))
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateDocuments(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE documents")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
