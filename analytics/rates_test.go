package analytics

import (
	"errors"
	"testing"
)

func TestRates(t *testing.T) {
	rows := []map[string]interface{}{
		{"group": "web", "hits": int64(3), "total": int64(4)},
		{"group": "mobile", "hits": int64(1), "total": int64(2)},
	}

	result, excluded, err := Rates(rows, "hits", "total", "rate", "group")
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if len(excluded) != 0 {
		t.Errorf("unexpected exclusions: %v", excluded)
	}
	if result[0]["rate"] != 0.75 {
		t.Errorf("web: got rate %v, want 0.75", result[0]["rate"])
	}
	if result[1]["rate"] != 0.5 {
		t.Errorf("mobile: got rate %v, want 0.5", result[1]["rate"])
	}
}

func TestRatesExcludesZeroDenominators(t *testing.T) {
	rows := []map[string]interface{}{
		{"group": "active", "hits": int64(2), "total": int64(4)},
		{"group": "empty", "hits": int64(0), "total": int64(0)},
	}

	result, excluded, err := Rates(rows, "hits", "total", "rate", "group")
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}

	// A zero denominator drops the row entirely rather than reporting 0.0.
	if len(result) != 1 || result[0]["group"] != "active" {
		t.Fatalf("got %d rows, want only the active group", len(result))
	}
	if len(excluded) != 1 || excluded[0] != "empty" {
		t.Errorf("got excluded %v, want [empty]", excluded)
	}
}

func TestRatesInvalidMetric(t *testing.T) {
	rows := []map[string]interface{}{
		{"group": "bad", "hits": "three", "total": int64(4)},
	}
	_, _, err := Rates(rows, "hits", "total", "rate", "group")
	if !errors.Is(err, ErrInvalidMetric) {
		t.Errorf("got %v, want ErrInvalidMetric", err)
	}
}
