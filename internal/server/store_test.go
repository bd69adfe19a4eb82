package server

import (
	"testing"

	"github.com/clinscribe/clinscribe/internal/pipeline"
)

func TestStoreEvictsOldest(t *testing.T) {
	s := NewStore(2)

	s.Put(&pipeline.Result{ID: "first"})
	s.Put(&pipeline.Result{ID: "second"})
	s.Put(&pipeline.Result{ID: "third"})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if _, ok := s.Get("first"); ok {
		t.Error("oldest result not evicted")
	}
	for _, id := range []string{"second", "third"} {
		if _, ok := s.Get(id); !ok {
			t.Errorf("result %q missing", id)
		}
	}
}

func TestStoreReplaceKeepsOneEntry(t *testing.T) {
	s := NewStore(5)

	s.Put(&pipeline.Result{ID: "same", Transcript: "old"})
	s.Put(&pipeline.Result{ID: "same", Transcript: "new"})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	result, ok := s.Get("same")
	if !ok || result.Transcript != "new" {
		t.Errorf("Get() = %+v, want the replacement", result)
	}
}

func TestStoreZeroCapacityGetsDefault(t *testing.T) {
	s := NewStore(0)

	for _, id := range []string{"a", "b", "c"} {
		s.Put(&pipeline.Result{ID: id})
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}
