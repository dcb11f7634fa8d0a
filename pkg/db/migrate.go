package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS public.schema_migrations (
	version TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL
)`

// Migrate applies every *.sql file of dir in lexical order, each one inside
// its own transaction. Files already recorded in schema_migrations are skipped.
func Migrate(ctx context.Context, factory *UOWFactory, migrations fs.FS, dir string) (applied []string, err error) {
	if _, err = factory.Pool.Exec(ctx, migrationsTable); err != nil {
		return nil, fmt.Errorf("err creating migrations table, %v", err)
	}

	names, err := fs.Glob(migrations, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	for _, name := range names {
		version := path.Base(name)
		done, err := applyMigration(ctx, factory, migrations, name, version)
		if err != nil {
			return applied, err
		}
		if done {
			applied = append(applied, version)
		}
	}

	return applied, nil
}

func applyMigration(ctx context.Context, factory *UOWFactory, migrations fs.FS, name, version string) (done bool, err error) {
	uow := factory.GetUoW()
	tx, err := uow.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Finalize(&err)

	var exists bool
	err = tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM public.schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("err checking migration %s, %v", version, err)
	}
	if exists {
		return false, nil
	}

	script, err := fs.ReadFile(migrations, name)
	if err != nil {
		return false, fmt.Errorf("err reading migration %s, %v", version, err)
	}
	if _, err = tx.Exec(ctx, string(script)); err != nil {
		return false, fmt.Errorf("err applying migration %s, %v", version, err)
	}
	if _, err = tx.Exec(ctx, "INSERT INTO public.schema_migrations(version, applied_at) VALUES ($1, $2)", version, time.Now()); err != nil {
		return false, fmt.Errorf("err recording migration %s, %v", version, err)
	}

	logrus.WithField("version", version).Info("applied migration")
	return true, nil
}
