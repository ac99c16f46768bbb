package db

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	"smart-parking/internal/pkg/errs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every embedded migration in file-name order. The scripts are
// idempotent, so running them on an initialized database is a no-op.
func Migrate(ctx context.Context, db DBTX) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrations.ReadFile(name)
		if err != nil {
			return errs.Wrapf(err, "failed to read %s", name)
		}
		if _, err := db.Exec(ctx, string(script)); err != nil {
			return errs.Wrapf(err, "failed to apply %s", name)
		}
	}
	return nil
}
