//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose применяет миграции из <repo_root>/migrations по файлам на диске
// (<repo_root> вычисляем как два уровня вверх от этого файла). Рабочий путь сервиса —
// postgres.Migrate со встроенными миграциями; здесь проверяем, что каталог на диске с ним совпадает.
func ApplyMigrationsGoose(dsn string) error {
	// Этот файл: <repo>/internal/testutil/migrations_goose_integration.go
	// repoRoot = .. (internal) -> .. (repo root)
	_, thisFile, _, _ := runtime.Caller(0)
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	dir := filepath.Join(repoRoot, "migrations")

	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return fmt.Errorf("migrations dir not found: %q (рассчитан от %s)", dir, thisFile)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir),
		goose.WithLogger(log.New(os.Stdout, "", 0)), goose.WithVerbose(true))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
