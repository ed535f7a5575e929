package cli

import (
	"bytes"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateLength(t *testing.T) {
	cases := []struct {
		input string
		fail  bool
	}{
		{"8", false},
		{" 12 ", false},
		{"128", false},
		{"7", true},
		{"4", true},
		{"-8", true},
		{"", true},
		{"eight", true},
		{"8.5", true},
	}

	for _, tc := range cases {
		err := validateLength(tc.input)
		if tc.fail && err == nil {
			t.Errorf("validateLength(%q) should fail", tc.input)
		}
		if !tc.fail && err != nil {
			t.Errorf("validateLength(%q) should not fail: %s", tc.input, err)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "Abc12345")
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	for _, want := range []string{
		"Analyzing password: Abc12345",
		"Your password is moderate. Scored 5 points.",
		" - password must include a symbol",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output should contain %q:\n%s", want, out)
		}
	}
}

func TestCheckCommand_MissingPassword(t *testing.T) {
	if _, err := execute(t, "check"); err == nil {
		t.Errorf("Should fail without a password")
	}
}

func TestCheckCommand_InteractiveRejectsArgs(t *testing.T) {
	t.Cleanup(func() { interactive = false })

	if _, err := execute(t, "check", "-n", "Abc12345"); err == nil {
		t.Errorf("Should fail with a password in interactive mode")
	}
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "-l", "12", "-c", "3")
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	if n := strings.Count(out, "Generated password evaluation:"); n != 3 {
		t.Errorf("Should generate 3 passwords, generated %d:\n%s", n, out)
	}

	for _, hint := range []string{"8+ characters", "uppercase", "lowercase", "digit", "symbol"} {
		if strings.Contains(out, hint) {
			t.Errorf("Generated passwords should not get the %q hint:\n%s", hint, out)
		}
	}
}

func TestGenerateCommand_InvalidFlags(t *testing.T) {
	if _, err := execute(t, "generate", "-l", "7", "-c", "1"); err == nil {
		t.Errorf("Should fail with a length below 8")
	}

	if _, err := execute(t, "generate", "-l", "8", "-c", "0"); err == nil {
		t.Errorf("Should fail with a count below 1")
	}
}

func TestAuditCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("abc123\nPassword1!\n"), 0o600); err != nil {
		t.Fatalf("Should not fail writing the list: %s", err)
	}

	if _, err := execute(t, "audit", "-i", path, "-t", "1"); err != nil {
		t.Errorf("Should not fail: %s", err)
	}

	if _, err := execute(t, "audit", "-i", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("Should fail with a missing file")
	}
}

func TestInterrupted(t *testing.T) {
	if !interrupted(promptui.ErrInterrupt) || !interrupted(promptui.ErrEOF) {
		t.Errorf("^C and ^D should end the session")
	}
	if interrupted(promptui.ErrAbort) {
		t.Errorf("Abort should not end the session")
	}
}
