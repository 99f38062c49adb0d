//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"gift-ledger/cmd/bootstrap"
	"gift-ledger/cmd/bootstrap/components"
	"gift-ledger/internal/infra/db"
	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "ledger"
	pgPassword = "ledgerpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce    sync.Once
	pgAddr    endpoint
	pgOnceErr error
)

type endpoint struct {
	Host string
	Port string
}

func (e endpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port, database)
}

// SharedSuite gives every e2e suite its own database on a process-wide
// postgres container and an fx-wired router on top of it.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	addr := postgresEndpoint(t)
	dbConfig := createDatabase(t, addr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, _, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(pool.Close)
	require.NoError(t, applySchema(ctx, pool), "failed to apply schema")

	s.DB = pool
	s.Config = config.NewTestConfig()
	s.Config.DB = dbConfig
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

func postgresEndpoint(t *testing.T) endpoint {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return endpoint{Host: host, Port: port.Port()}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "gift-ledger-e2e"},
			},
			Started: true,
		})
		if err != nil {
			pgOnceErr = errs.Wrap(err, "start postgres container")
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			pgOnceErr = errs.Wrap(err, "resolve container host")
			return
		}
		port, err := container.MappedPort(ctx, pgPort)
		if err != nil {
			pgOnceErr = errs.Wrap(err, "resolve container port")
			return
		}
		pgAddr = endpoint{Host: host, Port: port.Port()}
		slog.Info("postgres container ready", "host", host, "port", pgAddr.Port)
	})
	require.NoError(t, pgOnceErr)
	return pgAddr
}

func createDatabase(t *testing.T, addr endpoint) config.DBConfig {
	name := "ledger_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
	require.NoError(t, err, "failed to open admin connection")
	defer admin.Close()

	// the container can accept connections a moment before CREATE DATABASE succeeds
	require.Eventually(t, func() bool {
		_, err := admin.Exec(ctx, "CREATE DATABASE "+name)
		return err == nil
	}, 5*time.Second, 250*time.Millisecond, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     addr.Host,
		Port:     addr.Port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return errs.New("cannot locate e2e package")
	}
	path := filepath.Join(filepath.Dir(file), "..", "..", "migrations", "001_initial_schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrapf(err, "read %s", path)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		return errs.Wrapf(err, "apply %s", path)
	}
	return nil
}

// startApp wires the production modules against the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop app", "error", err.Error())
		}
	})
	return router
}
