// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"github.com/alvinbaena/pwd-analyst/pkg/strength"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAuditor(t *testing.T) {
	list := strings.Join([]string{
		"abc123",
		"Abc12345",
		"",
		"   ",
		"Password1!\r",
		"password",
	}, "\n")

	summary, err := NewAuditor(2).Run(strings.NewReader(list))
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	if summary.Total != 4 {
		t.Errorf("Should evaluate 4 passwords, evaluated %d", summary.Total)
	}

	want := [strength.MaxScore + 1]uint64{2: 2, 5: 1, 6: 1}
	if summary.Scores != want {
		t.Errorf("Scores: %v, want: %v", summary.Scores, want)
	}

	if mean := summary.Mean(); mean != 15.0/4 {
		t.Errorf("Mean: %f, want: %f", mean, 15.0/4)
	}

	ranked := summary.RankedChecks()
	if len(ranked) != 5 {
		t.Fatalf("Should rank 5 failed checks, got %v", ranked)
	}
	if ranked[0].Check != strength.CheckSymbol || ranked[0].Count != 3 {
		t.Errorf("Most failed check should be symbol with 3, got %v", ranked[0])
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Count < ranked[i].Count {
			t.Errorf("Checks should be ranked by count: %v", ranked)
		}
	}
}

func TestAuditor_LargeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")

	var b strings.Builder
	for i := 0; i < 3*chunkLen+17; i++ {
		b.WriteString("Abc12345\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("Should not fail writing the list: %s", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Should not fail opening the list: %s", err)
	}
	t.Cleanup(func() {
		if err := file.Close(); err != nil {
			t.Fatalf("Should not fail closing file: %s", err)
		}
	})

	auditor := NewAuditor(0)
	summary, err := auditor.Run(file)
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	if summary.Total != uint64(3*chunkLen+17) {
		t.Errorf("Should evaluate every line, evaluated %d", summary.Total)
	}
	if summary.Scores[5] != summary.Total {
		t.Errorf("Every password should score 5: %v", summary.Scores)
	}

	// counters start over on every run
	again, err := auditor.Run(strings.NewReader("abc123\n"))
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}
	if again.Total != 1 {
		t.Errorf("Second run should only count its own list, counted %d", again.Total)
	}
}

func TestSummary_Empty(t *testing.T) {
	summary, err := NewAuditor(1).Run(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	if summary.Total != 0 || summary.Mean() != 0 || len(summary.RankedChecks()) != 0 {
		t.Errorf("Empty list should give an empty summary: %+v", summary)
	}

	summary.Log()
}
