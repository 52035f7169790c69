package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies every pending up migration found under dir in fsys.
// Connecting is retried like New; ConnAttempts and ConnTimeout apply, other options are ignored.
func Migrate(url string, fsys fs.FS, dir string, opts ...Option) error {
	pg := &Postgres{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(pg)
	}

	var (
		m   *migrate.Migrate
		err error
	)

	for pg.connAttempts > 0 {
		src, srcErr := iofs.New(fsys, dir)
		if srcErr != nil {
			return fmt.Errorf("postgres - Migrate - iofs.New: %w", srcErr)
		}

		m, err = migrate.NewWithSourceInstance("iofs", src, migrateURL(url))
		if err == nil {
			break
		}

		log.Printf("Migrate: postgres is trying to connect, attempts left: %d", pg.connAttempts)

		time.Sleep(pg.connTimeout)

		pg.connAttempts--
	}

	if err != nil {
		return fmt.Errorf("postgres - Migrate - connAttempts == 0: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres - Migrate - m.Up: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("Migrate: no change")
		return nil
	}

	log.Printf("Migrate: up success")

	return nil
}

// migrateURL switches a postgres:// url to the scheme registered by the pgx/v5 driver.
func migrateURL(url string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(url, prefix) {
			return "pgx5://" + strings.TrimPrefix(url, prefix)
		}
	}

	return url
}
