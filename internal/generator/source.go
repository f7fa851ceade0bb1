package generator

import (
	"net/url"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Driver string

const (
	DriverMySQL  Driver = "mysql"
	DriverSQLite Driver = "sqlite"
)

// Source is a resolved database connection.
type Source struct {
	Driver Driver
	DSN    string
}

// jdbcParams maps JDBC MySQL URL parameters onto go-sql-driver parameters.
// An empty target drops the parameter.
var jdbcParams = map[string]string{
	"useSSL":                   "tls",
	"characterEncoding":        "charset",
	"serverTimezone":           "loc",
	"allowMultiQueries":        "multiStatements",
	"connectTimeout":           "timeout",
	"useUnicode":               "",
	"allowPublicKeyRetrieval":  "",
	"zeroDateTimeBehavior":     "",
	"autoReconnect":            "",
	"nullCatalogMeansCurrent":  "",
	"useInformationSchema":     "",
	"rewriteBatchedStatements": "",
}

// ParseSource resolves a connection URL plus the form's credentials into a
// driver and DSN. Accepted forms are jdbc:mysql://, mysql://, a native
// go-sql-driver DSN, and sqlite:<path>.
func ParseSource(rawURL, username, password string) (Source, error) {
	raw := strings.TrimSpace(rawURL)
	raw = strings.TrimPrefix(raw, "jdbc:")

	switch {
	case strings.HasPrefix(raw, "sqlite:"):
		return sqliteSource(strings.TrimPrefix(raw, "sqlite:"))
	case strings.HasPrefix(raw, "mysql://"):
		return mysqlURLSource(raw, username, password)
	case strings.Contains(raw, "@") && strings.Contains(raw, "("):
		return mysqlDSNSource(raw, username, password)
	}

	scheme := raw
	if i := strings.Index(raw, ":"); i > 0 {
		scheme = raw[:i]
	}
	return Source{}, newError(ErrDriverNotFound, "no driver for %q", scheme)
}

// Dialector opens the source through gorm.
func (s Source) Dialector() gorm.Dialector {
	if s.Driver == DriverSQLite {
		return sqlite.Open(s.DSN)
	}
	return mysql.Open(s.DSN)
}

func sqliteSource(rest string) (Source, error) {
	path := strings.TrimPrefix(rest, "//")
	if strings.TrimSpace(path) == "" {
		return Source{}, newError(ErrInvalidConfig, "sqlite url has no database path")
	}
	return Source{Driver: DriverSQLite, DSN: path}, nil
}

func mysqlURLSource(raw, username, password string) (Source, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Source{}, wrap(ErrInvalidConfig, err)
	}
	if u.Host == "" {
		return Source{}, newError(ErrInvalidConfig, "mysql url %q has no host", raw)
	}

	params := url.Values{}
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		target, known := jdbcParams[key]
		if known && target == "" {
			continue
		}
		value := values[0]
		if known {
			value = translateJDBCValue(key, value)
			key = target
		}
		params.Set(key, value)
	}

	cfg, err := mysqldriver.ParseDSN("/?" + params.Encode())
	if err != nil {
		return Source{}, wrap(ErrInvalidConfig, err)
	}

	addr := u.Host
	if u.Port() == "" {
		addr += ":3306"
	}
	cfg.Net = "tcp"
	cfg.Addr = addr
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.User = username
	cfg.Passwd = password
	if cfg.User == "" && u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.ParseTime = true

	if cfg.DBName == "" {
		return Source{}, newError(ErrInvalidConfig, "mysql url %q has no database name", raw)
	}
	return Source{Driver: DriverMySQL, DSN: cfg.FormatDSN()}, nil
}

func mysqlDSNSource(raw, username, password string) (Source, error) {
	cfg, err := mysqldriver.ParseDSN(raw)
	if err != nil {
		return Source{}, wrap(ErrInvalidConfig, err)
	}
	if username != "" {
		cfg.User = username
	}
	if password != "" {
		cfg.Passwd = password
	}
	cfg.ParseTime = true
	return Source{Driver: DriverMySQL, DSN: cfg.FormatDSN()}, nil
}

func translateJDBCValue(key, value string) string {
	switch key {
	case "useSSL":
		if strings.EqualFold(value, "true") {
			return "preferred"
		}
		return "false"
	case "characterEncoding":
		v := strings.ToLower(strings.ReplaceAll(value, "-", ""))
		if v == "utf8" {
			return "utf8mb4"
		}
		return v
	case "connectTimeout":
		// JDBC uses milliseconds.
		return value + "ms"
	}
	return value
}
