//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedRevcastPath holds the path to a shared revcast binary built once for all tests.
	sharedRevcastPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getRevcastBinary returns the path to the revcast binary, building it once if needed.
func getRevcastBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "revcast-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		revcastPath := filepath.Join(tempDir, "revcast")
		buildCmd := exec.Command("go", "build", "-o", revcastPath, "./cmd/revcast")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build revcast: %v", err))
		}

		sharedRevcastPath = revcastPath
	})

	return sharedRevcastPath
}

// writeFixtures writes small CSV datasets into dir and returns their paths.
func writeFixtures(t *testing.T, dir string) (historyPath, activationsPath string) {
	t.Helper()

	historyPath = filepath.Join(dir, "billing.csv")
	history := "GRUPO CLIENTE;TPSERV;VLR VALIDO;MÊS;ANO;DESCRIÇÃO\n" +
		"ACME TELECOM;TOIP;1500,00;6;2026;Voz corporativa\n" +
		"ACME TELECOM;IP;800,00;6;2026;Link dedicado\n" +
		"BRAVO SA;VIDEO;1200,00;6;2026;Monitoramento\n"
	if err := os.WriteFile(historyPath, []byte(history), 0o644); err != nil {
		t.Fatalf("failed to write history fixture: %v", err)
	}

	activationsPath = filepath.Join(dir, "pipeline.csv")
	activations := "CLIENTE;DATA PREVISTA;VALOR TOTAL;PRODUTO;STATUS\n" +
		"CHARLIE LTDA;2026-07-15;2000,00;TOIP;EM ATIVAÇÃO\n"
	if err := os.WriteFile(activationsPath, []byte(activations), 0o644); err != nil {
		t.Fatalf("failed to write activations fixture: %v", err)
	}

	return historyPath, activationsPath
}
