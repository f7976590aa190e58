package mocks

import (
	"context"
	"testing"
)

func TestLookupNEOFromMock(t *testing.T) {
	svc := NewMockService(".")

	neo, err := svc.LookupNEO(context.Background(), "99942")
	if err != nil {
		t.Fatalf("LookupNEO() returned error: %v", err)
	}

	if neo.ID != "99942" {
		t.Errorf("ID = %q, expected requested id to be substituted", neo.ID)
	}
	d, ok := neo.MaxDiameterMeters()
	if !ok {
		t.Fatal("mock payload missing diameter estimate")
	}
	if d <= 0 {
		t.Errorf("diameter = %v, expected positive", d)
	}
}

func TestLookupNEOMissingMockFile(t *testing.T) {
	svc := NewMockService(t.TempDir())

	if _, err := svc.LookupNEO(context.Background(), "99942"); err == nil {
		t.Error("expected error when mock data is absent")
	}
}
