package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var _ Pool = (*pgxpool.Pool)(nil)

func TestNewWithPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	pg := NewWithPool(mock)
	require.Equal(t, mock, pg.Pool)

	sql, _, err := pg.Builder.Select("name").From("image_metadata").Where("name = ?", "cat.png").ToSql()
	require.NoError(t, err)
	require.Equal(t, "SELECT name FROM image_metadata WHERE name = $1", sql)

	pg.Close()
}
