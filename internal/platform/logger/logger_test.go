package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLogger_TextSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, App: "kennel", Out: &buf}).(*stdLogger)
	l.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }

	l.Debug("hidden", nil)
	l.With(map[string]any{"slot": "default"}).Info("day advanced", map[string]any{"day": 2})

	out := strings.TrimSpace(buf.String())
	want := "app=kennel day=2 level=info msg=day advanced slot=default ts=2025-12-22T10:00:00Z"
	if out != want {
		t.Fatalf("unexpected line:\n got: %s\nwant: %s", out, want)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Out: &buf})
	l.Warn("dog died", map[string]any{"dog_id": "d1", "": "ignored"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, buf.String())
	}
	if entry["level"] != "warn" || entry["dog_id"] != "d1" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be dropped")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
