package store

import (
	"testing"

	"github.com/vkovalenko/go-doc-indexer/model"
)

func testCollection() *model.DocumentCollection {
	return &model.DocumentCollection{
		Documents: []model.DocumentRecord{
			{FileName: "a.txt", FilePath: "/data/a.txt"},
			{FileName: "b.txt", FilePath: "/data/b.txt"},
		},
	}
}

func TestCollectionStoreGet(t *testing.T) {
	s := NewCollectionStore(testCollection())

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	doc, ok := s.Get(1)
	if !ok {
		t.Fatal("Get(1) reported missing document")
	}
	if doc.FileName != "b.txt" {
		t.Errorf("Get(1).FileName = %q, want b.txt", doc.FileName)
	}

	if _, ok := s.Get(2); ok {
		t.Error("Get(2) should be out of range")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("Get(-1) should be out of range")
	}
}

func TestCollectionStoreReplace(t *testing.T) {
	s := NewCollectionStore(testCollection())

	s.Replace(&model.DocumentCollection{
		Documents: []model.DocumentRecord{
			{FileName: "a.txt"},
			{FileName: "b.txt"},
			{FileName: "c.txt"},
		},
	})

	if s.Len() != 3 {
		t.Fatalf("Len() after Replace = %d, want 3", s.Len())
	}
	if doc, _ := s.Get(2); doc.FileName != "c.txt" {
		t.Errorf("Get(2).FileName = %q, want c.txt", doc.FileName)
	}
}
