package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleReport() *Report {
	return &Report{
		Columns: []string{"rank", "name", "score"},
		Rows: []map[string]interface{}{
			{"rank": int64(1), "name": "alpha", "score": 9.5},
			{"rank": int64(2), "name": "beta", "score": 7.0},
		},
	}
}

func TestCSVFormatterColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "rank,name,score" {
		t.Errorf("got header %q, want rank,name,score", lines[0])
	}
	if lines[1] != "1,alpha,9.5" {
		t.Errorf("got row %q, want 1,alpha,9.5", lines[1])
	}
}

func TestCSVFormatterSanitizesFormulas(t *testing.T) {
	report := &Report{
		Columns: []string{"name"},
		Rows:    []map[string]interface{}{{"name": "=SUM(A1:A9)"}},
	}

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(report); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), "'=SUM") {
		t.Errorf("formula not sanitized: %q", buf.String())
	}
}

func TestJSONFormatterStableShape(t *testing.T) {
	report := &Report{
		Columns: []string{"name", "score"},
		Rows: []map[string]interface{}{
			{"name": "alpha", "score": 1.0, "internal": "dropped"},
			{"name": "beta"},
		},
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(report); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if _, ok := first["internal"]; ok {
		t.Error("column outside the report shape leaked into output")
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 2 is not valid JSON: %v", err)
	}
	if v, ok := second["score"]; !ok || v != nil {
		t.Errorf("missing column should encode as null, got %v, %v", v, ok)
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"rank", "alpha", "beta", "9.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{int64(42), "42"},
		{3.25, "3.25"},
		{true, "true"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
