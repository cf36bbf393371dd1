package catalog

import "testing"

func TestStocksUniqueKeys(t *testing.T) {
	symbols := map[string]bool{}
	mints := map[string]bool{}
	for _, e := range Stocks {
		if symbols[e.Symbol] {
			t.Fatalf("duplicate symbol %s", e.Symbol)
		}
		if mints[e.Mint] {
			t.Fatalf("duplicate mint %s", e.Mint)
		}
		symbols[e.Symbol] = true
		mints[e.Mint] = true
		if e.Name == "" {
			t.Fatalf("entry %s has no display name", e.Symbol)
		}
	}
}

func TestBySymbol(t *testing.T) {
	entry, ok := BySymbol("NVDAx")
	if !ok {
		t.Fatalf("expected NVDAx in catalog")
	}
	if entry.Name != "NVIDIA" {
		t.Fatalf("unexpected name for NVDAx: %s", entry.Name)
	}
	if _, ok := BySymbol("DOGEx"); ok {
		t.Fatalf("DOGEx should not be in catalog")
	}
}

func TestByMint(t *testing.T) {
	entry, ok := ByMint("XsDoVfqeBukxuZHWhdvWHBhgEHjGNst4MLodqsJHzoB")
	if !ok || entry.Symbol != "TSLAx" {
		t.Fatalf("expected TSLAx for its mint, got %+v ok=%v", entry, ok)
	}
}

func TestSymbolsOrder(t *testing.T) {
	symbols := Symbols()
	if len(symbols) != len(Stocks) {
		t.Fatalf("expected %d symbols, got %d", len(Stocks), len(symbols))
	}
	if symbols[0] != "AAPLx" || symbols[1] != "TSLAx" {
		t.Fatalf("declared order not preserved: %v", symbols[:2])
	}
}
