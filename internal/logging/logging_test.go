package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestInitWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	defer Close()

	Error().Str("op", "SetWindowPos").Msg("remediation failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "remediation failed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "remediation failed")
	}
	if entry["op"] != "SetWindowPos" {
		t.Errorf("op = %v, want %q", entry["op"], "SetWindowPos")
	}
	if _, ok := entry["ts"]; !ok {
		t.Error("missing ts field")
	}
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	defer Close()
	defer SetDebug(false)

	Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug event written at info level: %q", buf.String())
	}

	SetDebug(true)
	Debug().Msg("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("debug event missing after SetDebug(true): %q", buf.String())
	}
}

func TestWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	defer Close()

	restore := With("run", "abc")
	Info().Msg("scan started")

	if !bytes.Contains(buf.Bytes(), []byte(`"run":"abc"`)) {
		t.Errorf("run field missing: %q", buf.String())
	}

	restore()
	buf.Reset()
	Info().Msg("next run")
	if bytes.Contains(buf.Bytes(), []byte(`"run"`)) {
		t.Errorf("run field kept after restore: %q", buf.String())
	}
}
