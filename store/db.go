package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kcmvp/commerce/app"
	"github.com/spf13/viper"
)

// DB is the minimal database contract used by the SQL-backed stores.
// It mirrors the methods we use from *sql.DB and can be backed by *sql.DB or
// a thin wrapper, which lets us add cross-cutting features (SQL logging,
// tracing) without touching the store implementations.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	PingContext(ctx context.Context) error
	Close() error
}

// stdDB adapts *sql.DB to the DB interface.
type stdDB struct{ *sql.DB }

func (d stdDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.DB.ExecContext(ctx, query, args...)
}

func (d stdDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, query, args...)
}

func (d stdDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return d.DB.BeginTx(ctx, opts)
}

func (d stdDB) PingContext(ctx context.Context) error { return d.DB.PingContext(ctx) }

// loggingDB wraps DB and logs every statement with its duration.
// Use it in dev/test or when SQL observability is needed.
type loggingDB struct {
	inner  DB
	logger *log.Logger
}

func (d loggingDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.inner.ExecContext(ctx, query, args...)
	d.logger.Printf("store exec dur=%s err=%v sql=%q args=%v", time.Since(start), err, query, args)
	return res, err
}

func (d loggingDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	d.logger.Printf("store query dur=%s err=%v sql=%q args=%v", time.Since(start), err, query, args)
	return rows, err
}

func (d loggingDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return d.inner.BeginTx(ctx, opts)
}

func (d loggingDB) PingContext(ctx context.Context) error { return d.inner.PingContext(ctx) }

func (d loggingDB) Close() error { return d.inner.Close() }

// WithSQLLogger wraps db with a SQL logger if logger is not nil.
func WithSQLLogger(db DB, logger *log.Logger) DB {
	if logger == nil {
		return db
	}
	return loggingDB{inner: db, logger: logger}
}

const (
	// Placeholders substituted into datasource URLs.
	UserKey     = "${user}"
	PasswordKey = "${password}"
	HostKey     = "${host}"

	defaultDSName = "default"
)

// dataSource is one `datasource.<name>` block from application.yml.
type dataSource struct {
	Driver   string   `mapstructure:"driver" yaml:"driver"`
	User     string   `mapstructure:"user" yaml:"user"`
	Password string   `mapstructure:"password" yaml:"password"`
	Host     string   `mapstructure:"host" yaml:"host"`
	URL      string   `mapstructure:"url" yaml:"url"`
	Scripts  []string `mapstructure:"scripts" yaml:"scripts"`
}

// DSNChecked returns the final connection string for sql.Open and validates
// placeholder usage: any placeholder present in the URL must have its
// corresponding field set. This fail-fast prevents silently connecting with
// blank credentials due to misconfiguration.
func (ds dataSource) DSNChecked() (string, error) {
	if strings.TrimSpace(ds.URL) == "" {
		return "", fmt.Errorf("dsn requires url")
	}
	if strings.Contains(ds.URL, UserKey) && ds.User == "" {
		return "", fmt.Errorf("dsn requires user")
	}
	if strings.Contains(ds.URL, PasswordKey) && ds.Password == "" {
		return "", fmt.Errorf("dsn requires password")
	}
	if strings.Contains(ds.URL, HostKey) && ds.Host == "" {
		return "", fmt.Errorf("dsn requires host")
	}
	return ds.DSN(), nil
}

// DSN substitutes the ${user}/${password}/${host} placeholders into the URL.
// A URL without placeholders is returned as-is.
func (ds dataSource) DSN() string {
	dsn := strings.ReplaceAll(ds.URL, UserKey, ds.User)
	dsn = strings.ReplaceAll(dsn, PasswordKey, ds.Password)
	return strings.ReplaceAll(dsn, HostKey, ds.Host)
}

type namedDB struct {
	DB
	driver string
}

var (
	dsRegistry = map[string]namedDB{}
	dsMu       sync.RWMutex

	initOnce sync.Once
	initErr  error

	// sqlLogger, when set, wraps every datasource registered afterwards.
	sqlLogger *log.Logger
)

// SetSQLLogger enables SQL logging for all datasources registered after this
// call. Call it early, before any GetDS/DefaultDS calls.
func SetSQLLogger(l *log.Logger) {
	sqlLogger = l
}

// registerDataSource opens a connection from cfg, pings it, runs its schema
// scripts and registers it under name (empty means "default").
func registerDataSource(name string, cfg dataSource) error {
	if name == "" {
		name = defaultDSName
	}
	if cfg.Driver == "" {
		return fmt.Errorf("driver is required to register datasource %q", name)
	}

	dsn, err := cfg.DSNChecked()
	if err != nil {
		return fmt.Errorf("invalid dsn for datasource %q: %w", name, err)
	}
	raw, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return fmt.Errorf("open datasource %q: %w", name, err)
	}
	if err := raw.PingContext(context.Background()); err != nil {
		_ = raw.Close()
		return fmt.Errorf("ping datasource %q: %w", name, err)
	}

	var db DB = stdDB{DB: raw}
	if sqlLogger != nil {
		db = WithSQLLogger(db, sqlLogger)
	}

	if err := runScripts(db, cfg.Scripts); err != nil {
		_ = db.Close()
		return fmt.Errorf("datasource %q scripts: %w", name, err)
	}

	dsMu.Lock()
	defer dsMu.Unlock()
	dsRegistry[name] = namedDB{DB: db, driver: cfg.Driver}
	return nil
}

// runScripts executes each SQL script file against db, statement by
// statement. Statements are separated by semicolons; no dialect parsing is
// attempted.
func runScripts(db DB, scripts []string) error {
	for _, path := range scripts {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script %s: %w", path, err)
		}
		for _, stmt := range strings.Split(string(content), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := db.ExecContext(context.Background(), stmt); err != nil {
				return fmt.Errorf("exec script %s: %w", path, err)
			}
		}
	}
	return nil
}

func initDataSources() error {
	initOnce.Do(func() {
		res := app.Config()
		if res.IsError() {
			initErr = res.Error()
			return
		}
		cfg := res.MustGet()

		raw := cfg.GetStringMap("datasource")
		for name, val := range raw {
			child := viper.New()
			m, ok := val.(map[string]any)
			if !ok {
				initErr = fmt.Errorf("datasource %s: expected a mapping", name)
				return
			}
			if err := child.MergeConfigMap(m); err != nil {
				initErr = fmt.Errorf("merge datasource %s: %w", name, err)
				return
			}
			var ds dataSource
			if err := child.Unmarshal(&ds); err != nil {
				initErr = fmt.Errorf("unmarshal datasource %s: %w", name, err)
				return
			}
			if err := registerDataSource(name, ds); err != nil {
				initErr = err
				return
			}
		}
	})
	return initErr
}

// GetDS returns a registered datasource by name.
func GetDS(name string) (DB, bool) {
	_ = initDataSources()
	if name == "" {
		name = defaultDSName
	}
	dsMu.RLock()
	defer dsMu.RUnlock()
	db, ok := dsRegistry[name]
	return db.DB, ok
}

// DefaultDS returns the default datasource if registered.
func DefaultDS() (DB, bool) {
	return GetDS(defaultDSName)
}

// DriverOf returns the driver name a datasource was registered with.
func DriverOf(name string) (string, bool) {
	if name == "" {
		name = defaultDSName
	}
	dsMu.RLock()
	defer dsMu.RUnlock()
	db, ok := dsRegistry[name]
	return db.driver, ok
}

// CloseDataSource closes and removes the named datasource from the registry.
func CloseDataSource(name string) error {
	if name == "" {
		name = defaultDSName
	}
	dsMu.Lock()
	defer dsMu.Unlock()
	if db, ok := dsRegistry[name]; ok {
		delete(dsRegistry, name)
		return db.Close()
	}
	return nil
}

// CloseAllDataSources closes and removes every registered datasource. It
// returns the first close error encountered, if any.
func CloseAllDataSources() error {
	dsMu.Lock()
	defer dsMu.Unlock()
	var firstErr error
	for name, db := range dsRegistry {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(dsRegistry, name)
	}
	return firstErr
}
