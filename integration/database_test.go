//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRevcastWithMySQL tests the revcast CLI with a MySQL snapshot backend.
func TestRevcastWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "revcast",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/revcast", host, port.Port())
	runSnapshotScenario(t, "mysql", connStr)
}

// TestRevcastWithPostgres tests the revcast CLI with a PostgreSQL snapshot backend.
func TestRevcastWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runSnapshotScenario(t, "postgresql", connStr)
}

// runSnapshotScenario exercises the snapshot lifecycle against a backend.
func runSnapshotScenario(t *testing.T, backend, connStr string) {
	historyPath, activationsPath := writeFixtures(t, t.TempDir())

	// Set environment variables
	_ = os.Setenv("REVCAST_SNAPSHOT_BACKEND", backend)
	_ = os.Setenv("REVCAST_SNAPSHOT_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("REVCAST_SNAPSHOT_BACKEND") }()
	defer func() { _ = os.Unsetenv("REVCAST_SNAPSHOT_DB_CONNECT") }()

	// Run revcast snapshot migrate
	err := runRevcastCommand(t, "snapshot", "migrate")
	require.NoError(t, err)

	// Run revcast snapshot clear
	err = runRevcastCommand(t, "snapshot", "clear")
	require.NoError(t, err)

	// Run revcast forecast twice; the second run hits the stored snapshot
	err = runRevcastCommand(t, "forecast", "--history-file", historyPath, "--activations-file", activationsPath)
	require.NoError(t, err)
	err = runRevcastCommand(t, "forecast", "--history-file", historyPath, "--activations-file", activationsPath)
	require.NoError(t, err)

	// Run revcast snapshot status
	err = runRevcastCommand(t, "snapshot", "status")
	require.NoError(t, err)
}

func runRevcastCommand(t *testing.T, args ...string) error {
	revcastPath := getRevcastBinary()
	cmd := exec.Command(revcastPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
