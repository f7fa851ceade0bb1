package generator

import (
	"errors"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource_JDBCMySQL(t *testing.T) {
	src, err := ParseSource(
		"jdbc:mysql://db.local:3307/shop?useSSL=false&characterEncoding=UTF-8&serverTimezone=UTC&useUnicode=true",
		"root", "s3cr/et@",
	)
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, src.Driver)

	cfg, err := mysqldriver.ParseDSN(src.DSN)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.User)
	assert.Equal(t, "s3cr/et@", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "db.local:3307", cfg.Addr)
	assert.Equal(t, "shop", cfg.DBName)
	assert.Equal(t, "false", cfg.TLSConfig)
	assert.Equal(t, time.UTC, cfg.Loc)
	assert.True(t, cfg.ParseTime)
	assert.NotContains(t, cfg.Params, "useUnicode")
	assert.Contains(t, src.DSN, "charset=utf8mb4")
}

func TestParseSource_MySQLURLDefaultsPort(t *testing.T) {
	src, err := ParseSource("mysql://localhost/app", "u", "p")
	require.NoError(t, err)

	cfg, err := mysqldriver.ParseDSN(src.DSN)
	require.NoError(t, err)
	assert.Equal(t, "localhost:3306", cfg.Addr)
	assert.Equal(t, "app", cfg.DBName)
}

func TestParseSource_MySQLURLWithoutDatabase(t *testing.T) {
	_, err := ParseSource("mysql://localhost:3306/", "u", "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestParseSource_NativeDSNCredentialsOverride(t *testing.T) {
	src, err := ParseSource("old:pw@tcp(10.0.0.2:3306)/crm", "new", "fresh")
	require.NoError(t, err)

	cfg, err := mysqldriver.ParseDSN(src.DSN)
	require.NoError(t, err)
	assert.Equal(t, "new", cfg.User)
	assert.Equal(t, "fresh", cfg.Passwd)
	assert.Equal(t, "10.0.0.2:3306", cfg.Addr)
	assert.Equal(t, "crm", cfg.DBName)
	assert.True(t, cfg.ParseTime)
}

func TestParseSource_SQLite(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "sqlite:data/app.db", want: "data/app.db"},
		{raw: "jdbc:sqlite:app.db", want: "app.db"},
		{raw: "sqlite:///var/lib/app.db", want: "/var/lib/app.db"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			src, err := ParseSource(tt.raw, "", "")
			require.NoError(t, err)
			assert.Equal(t, DriverSQLite, src.Driver)
			assert.Equal(t, tt.want, src.DSN)
		})
	}
}

func TestParseSource_SQLiteWithoutPath(t *testing.T) {
	_, err := ParseSource("sqlite:", "", "")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestParseSource_UnknownDriver(t *testing.T) {
	_, err := ParseSource("jdbc:postgresql://localhost:5432/app", "u", "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDriverNotFound))
	assert.Contains(t, err.Error(), `"postgresql"`)
}
