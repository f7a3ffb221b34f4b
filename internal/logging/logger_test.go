package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	td := []struct {
		in  string
		lvl slog.Level
		err bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"Warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, d := range td {
		lvl, err := ParseLevel(d.in)
		if (err != nil) != d.err || lvl != d.lvl {
			t.Errorf("ParseLevel(%q) = %v, %v", d.in, lvl, err)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("warn", "json", &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown", "rows", 200)
	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a single JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "shown" || rec["rows"] != float64(200) {
		t.Errorf("unexpected record %v", rec)
	}

	buf.Reset()
	l, err = NewLogger("debug", "text", &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("propagate", "entities", 3)
	if !strings.Contains(buf.String(), "entities=3") {
		t.Errorf("unexpected output %q", buf.String())
	}

	if _, err = NewLogger("info", "xml", &buf); err == nil {
		t.Error("expected an error for format xml")
	}
	if _, err = NewLogger("loud", "text", &buf); err == nil {
		t.Error("expected an error for level loud")
	}
}
