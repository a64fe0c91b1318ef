package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

// Dialect holds the few places where Postgres and MySQL disagree. Queries are
// written with `?` placeholders and rebound for Postgres.
type Dialect struct {
	Driver string
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverPostgres, DriverMySQL:
		return Dialect{Driver: driver}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d Dialect) postgres() bool { return d.Driver == DriverPostgres }

// Rebind turns `?` placeholders into `$1..$n` for Postgres. Question marks
// inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.postgres() {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UserTable quotes the reserved table name.
func (d Dialect) UserTable() string {
	if d.postgres() {
		return `"user"`
	}
	return "`user`"
}

// Like is the case-insensitive LIKE operator. MySQL relies on the default
// case-insensitive collation.
func (d Dialect) Like() string {
	if d.postgres() {
		return "ILIKE"
	}
	return "LIKE"
}

// JSONParam is the placeholder used for the jsonb photos column.
func (d Dialect) JSONParam() string {
	if d.postgres() {
		return "?::jsonb"
	}
	return "?"
}

// InsertSkipDuplicate returns an INSERT that skips rows violating a unique key.
// Foreign key and not-null failures still surface.
func (d Dialect) InsertSkipDuplicate(table, columns, values string) string {
	if d.postgres() {
		return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING", table, columns, values)
	}
	first := strings.TrimSpace(strings.SplitN(columns, ",", 2)[0])
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s = %s", table, columns, values, first, first)
}

// NormalizeDSN makes sure MySQL timestamps scan into time.Time.
func NormalizeDSN(driver, dsn string) (string, error) {
	if driver != DriverMySQL {
		return dsn, nil
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// insertReturningID runs an INSERT and returns the generated id using
// RETURNING on Postgres and LastInsertId on MySQL.
func insertReturningID(ctx context.Context, db *sql.DB, d Dialect, query string, args ...any) (int, error) {
	if d.postgres() {
		var id int
		if err := db.QueryRowContext(ctx, d.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
