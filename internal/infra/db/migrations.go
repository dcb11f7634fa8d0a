package db

import (
	"context"
	"embed"

	dbs "github.com/dhank77/undangan.love/pkg/db"
)

//go:embed migrations/*.sql
var migrations embed.FS

func Migrate(ctx context.Context, factory *dbs.UOWFactory) ([]string, error) {
	return dbs.Migrate(ctx, factory, migrations, "migrations")
}
