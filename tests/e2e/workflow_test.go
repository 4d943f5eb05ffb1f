package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestEndToEndWorkflow(t *testing.T) {
	// 1. Setup Environment
	// Allow overriding bin dir via env var, default to ../../bin (relative to tests/e2e)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	binDir := os.Getenv("WELLNEST_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)
	cliPath := filepath.Join(binDir, "wellnest")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it with 'go build -o bin/wellnest ./cmd/wellnest'.", cliPath)
	}

	// Create temp home for isolation
	tempDir := t.TempDir()
	dataPath := filepath.Join(tempDir, "wellnest", "wellnest.json")

	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "WELLNEST_") || strings.HasPrefix(e, "OPENAI_API_KEY=") {
			continue
		}
		env = append(env, e)
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("WELLNEST_CONFIG=%s", dataPath),
		"WELLNEST_DOTENV=false",
		"WELLNEST_TIMEZONE=UTC",
	)

	// 2. Initialize
	runCmd(t, cliPath, env, "", "init")
	if _, err := os.Stat(dataPath); err != nil {
		t.Fatalf("init did not create %s: %v", dataPath, err)
	}

	// 3. Record a day
	runCmd(t, cliPath, env, "", "habit", "add", "Meditate", "--category", "mindfulness")
	runCmd(t, cliPath, env, "", "habit", "add", "Walk")
	runCmd(t, cliPath, env, "", "habit", "toggle", "meditate")
	runCmd(t, cliPath, env, "", "habit", "toggle", "walk", "--date", "yesterday")
	runCmd(t, cliPath, env, "", "goal", "add", "Read two books", "-d", "+14")
	out := runCmd(t, cliPath, env, "", "journal", "write", "-m", "good", "-p", "gratitude", "Grateful for a calm, happy morning")
	if !strings.Contains(out, "Positive") {
		t.Errorf("journal write output = %q, want Positive sentiment", out)
	}
	runCmd(t, cliPath, env, "feeling nervous about tomorrow\n", "journal", "write")

	// 4. Check the dashboard
	var stats struct {
		TotalHabits    int `json:"totalHabits"`
		CompletionRate int `json:"completionRate"`
		TotalEntries   int `json:"totalEntries"`
		JournalStreak  int `json:"journalStreak"`
		Goals          struct {
			Total int `json:"total"`
		} `json:"goals"`
	}
	decode(t, runCmd(t, cliPath, env, "", "stats", "--json"), &stats)
	if stats.TotalHabits != 2 || stats.CompletionRate != 50 || stats.TotalEntries != 2 || stats.JournalStreak != 1 || stats.Goals.Total != 1 {
		t.Errorf("stats = %+v", stats)
	}

	var chart struct {
		Labels []string   `json:"labels"`
		Data   []*float64 `json:"data"`
	}
	decode(t, runCmd(t, cliPath, env, "", "chart", "weekly"), &chart)
	if len(chart.Labels) != 7 || len(chart.Data) != 7 || chart.Data[6] == nil || *chart.Data[6] != 50 {
		t.Errorf("weekly chart = %+v", chart)
	}

	var insights struct {
		Distribution map[string]int `json:"distribution"`
	}
	decode(t, runCmd(t, cliPath, env, "", "insights", "--json"), &insights)
	if insights.Distribution["positive"] != 1 || insights.Distribution["anxious"] != 1 {
		t.Errorf("distribution = %v", insights.Distribution)
	}

	// 5. Maintenance
	runCmd(t, cliPath, env, "", "backup", "create")
	if out := runCmd(t, cliPath, env, "", "backup", "list"); !strings.Contains(out, "1 total") {
		t.Errorf("backup list = %q", out)
	}
	if out := runCmd(t, cliPath, env, "", "validate"); !strings.Contains(out, "No conflicts detected.") {
		t.Errorf("validate = %q", out)
	}
	if out := runCmd(t, cliPath, env, "", "doctor"); !strings.Contains(out, "All diagnostics passed!") {
		t.Errorf("doctor = %q", out)
	}

	// 6. The lockfile is released after every command
	if _, err := os.Stat(filepath.Join(filepath.Dir(dataPath), "wellnest.lock")); !os.IsNotExist(err) {
		t.Errorf("lockfile left behind: %v", err)
	}
}

func runCmd(t *testing.T, path string, env []string, stdin string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

func decode(t *testing.T, out string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
}
