package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/furnspace/furnspace/internal/repository"
)

type testEnv struct {
	cache          *redis.Client
	pool           *pgxpool.Pool
	pgContainer    *postgres.PostgresContainer
	redisContainer *testRedis.RedisContainer
	queries        *repository.Queries
	service        *OrderService
}

func migrationPath(name string) string {
	return filepath.Join("..", "..", "..", "migrations", name)
}

func setup(t *testing.T, c context.Context) testEnv {
	t.Helper()

	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			migrationPath("000001_create_users.up.sql"),
			migrationPath("000002_create_catalog.up.sql"),
			migrationPath("000003_create_carts.up.sql"),
			migrationPath("000004_create_wishlists.up.sql"),
			migrationPath("000005_create_addresses.up.sql"),
			migrationPath("000006_create_orders.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgx config with error: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating pgx pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}

	queries := repository.New(pool)
	return testEnv{
		cache:          redisClient,
		pool:           pool,
		pgContainer:    pgContainer,
		redisContainer: redisContainer,
		queries:        queries,
		service:        NewOrderService(pool, queries, redisClient),
	}
}

func (e testEnv) teardown(t *testing.T) {
	t.Helper()

	e.cache.Close()
	e.pool.Close()
	if err := testcontainers.TerminateContainer(e.pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
	if err := testcontainers.TerminateContainer(e.redisContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}
