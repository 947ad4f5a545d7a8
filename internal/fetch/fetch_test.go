package fetch

import (
	"context"
	"testing"
)

func TestGetterFetcherRejectsEmptySource(t *testing.T) {
	var f Fetcher = GetterFetcher{}
	if err := f.Fetch(context.Background(), "   ", t.TempDir()); err == nil {
		t.Fatal("expected error for empty source")
	}
}
