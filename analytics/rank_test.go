package analytics

import (
	"errors"
	"testing"
)

func TestDenseRankNoGaps(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "a", "score": 10.0},
		{"name": "b", "score": 7.0},
		{"name": "c", "score": 10.0},
		{"name": "d", "score": 5.0},
	}

	ranked, err := DenseRank(rows, "score", true, "name", "rank")
	if err != nil {
		t.Fatalf("DenseRank failed: %v", err)
	}

	wantNames := []string{"a", "c", "b", "d"}
	wantRanks := []int64{1, 1, 2, 3}
	for i, row := range ranked {
		if row["name"] != wantNames[i] {
			t.Errorf("row %d: got name %v, want %v", i, row["name"], wantNames[i])
		}
		if row["rank"] != wantRanks[i] {
			t.Errorf("row %d: got rank %v, want %v", i, row["rank"], wantRanks[i])
		}
	}
}

func TestDenseRankAscending(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "a", "score": int64(30)},
		{"name": "b", "score": int64(10)},
		{"name": "c", "score": int64(20)},
	}

	ranked, err := DenseRank(rows, "score", false, "name", "rank")
	if err != nil {
		t.Fatalf("DenseRank failed: %v", err)
	}

	wantNames := []string{"b", "c", "a"}
	for i, row := range ranked {
		if row["name"] != wantNames[i] {
			t.Errorf("row %d: got name %v, want %v", i, row["name"], wantNames[i])
		}
		if row["rank"] != int64(i+1) {
			t.Errorf("row %d: got rank %v, want %d", i, row["rank"], i+1)
		}
	}
}

func TestDenseRankTieBreakOrdersOutputOnly(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "z", "score": 10.0},
		{"name": "a", "score": 10.0},
	}

	ranked, err := DenseRank(rows, "score", true, "name", "rank")
	if err != nil {
		t.Fatalf("DenseRank failed: %v", err)
	}

	if ranked[0]["name"] != "a" || ranked[1]["name"] != "z" {
		t.Errorf("tie break should order by name: got %v, %v", ranked[0]["name"], ranked[1]["name"])
	}
	// Both rows share the tied metric, so both share rank 1.
	if ranked[0]["rank"] != int64(1) || ranked[1]["rank"] != int64(1) {
		t.Errorf("tied rows must share a rank: got %v, %v", ranked[0]["rank"], ranked[1]["rank"])
	}
}

func TestDenseRankDoesNotMutateInput(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "a", "score": 1.0},
	}

	if _, err := DenseRank(rows, "score", true, "", "rank"); err != nil {
		t.Fatalf("DenseRank failed: %v", err)
	}
	if _, ok := rows[0]["rank"]; ok {
		t.Error("input row was mutated with the rank column")
	}
}

func TestDenseRankEmptyInput(t *testing.T) {
	_, err := DenseRank(nil, "score", true, "", "rank")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestDenseRankInvalidMetric(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]interface{}
	}{
		{"missing column", []map[string]interface{}{{"name": "a"}}},
		{"non-numeric", []map[string]interface{}{{"name": "a", "score": "high"}}},
		{"nil value", []map[string]interface{}{{"name": "a", "score": nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DenseRank(tt.rows, "score", true, "", "rank")
			if !errors.Is(err, ErrInvalidMetric) {
				t.Errorf("got %v, want ErrInvalidMetric", err)
			}
		})
	}
}
