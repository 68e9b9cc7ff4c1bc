package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Version7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got error: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	if g.Generate() == g.Generate() {
		t.Fatal("expected distinct identifiers")
	}
}
