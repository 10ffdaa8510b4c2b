package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse_JSONRecord(t *testing.T) {
	line := `{"level":"warn","ts":"2026-01-02T03:04:05.000Z","logger":"uniterm.fetch","caller":"fetch/service.go:80","msg":"api error with slug variant","slug":"/about","status":404}`
	e := Parse(line)

	if e.Level != "warn" || e.Logger != "uniterm.fetch" || e.Message != "api error with slug variant" {
		t.Fatalf("Parse = %#v", e)
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	wantFields := []Field{{Key: "slug", Value: "/about"}, {Key: "status", Value: "404"}}
	if !reflect.DeepEqual(e.Fields, wantFields) {
		t.Fatalf("Fields = %#v, want %#v", e.Fields, wantFields)
	}
	if s := e.String(); !strings.Contains(s, "WARN uniterm.fetch: api error with slug variant slug=/about status=404") {
		t.Fatalf("String = %q", s)
	}
}

func TestParse_EpochTimestampAndRaw(t *testing.T) {
	e := Parse(`{"level":"info","ts":1700000000.5,"msg":"hi"}`)
	if e.Time.Unix() != 1700000000 {
		t.Fatalf("Time = %v, want unix 1700000000", e.Time)
	}

	raw := Parse("panic: something broke")
	if raw.Raw != "panic: something broke" || raw.String() != "panic: something broke" {
		t.Fatalf("raw Parse = %#v", raw)
	}
}

func TestTail_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniterm.log")
	data := `{"level":"info","msg":"one"}` + "\n\n" + `{"level":"error","msg":"two"}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	entries, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(entries) != 2 || entries[1].Message != "two" || entries[1].Level != "error" {
		t.Fatalf("Tail = %#v", entries)
	}
}

func TestParse_ISO8601Timestamp(t *testing.T) {
	e := Parse(`{"level":"info","ts":"2026-01-02T03:04:05.250+0000","msg":"hi"}`)
	want := time.Date(2026, 1, 2, 3, 4, 5, 250_000_000, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
}
