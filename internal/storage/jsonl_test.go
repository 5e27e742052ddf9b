package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"poolcalc/internal/model"
)

func TestJsonlStorageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "quotes.jsonl")
	sink := NewJsonlStorage(path)

	first := model.QuoteRecord{Liquidity: 1000, InitialPrice: 1.0, FinalPrice: 1.21, FeePercent: 0.3}
	second := model.QuoteRecord{Liquidity: 500, InitialPrice: 2.0, FinalPrice: 1.5}

	if err := sink.PutQuote(first); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := sink.PutQuote(second); err != nil {
		t.Fatalf("put second: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	var records []model.QuoteRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record model.QuoteRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("unmarshal line: %v", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].FinalPrice != 1.21 || records[1].Liquidity != 500 {
		t.Fatalf("record content mismatch: %+v", records)
	}
}
