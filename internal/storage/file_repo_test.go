package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestFileRepo_RoundTrip(t *testing.T) {
	repo := NewFileRepo(openTestDB(t))
	ctx := context.Background()

	rec := &FileRecord{
		ID:        "file-1700000000000-abc",
		Name:      "photo.png",
		Type:      "image/png",
		Data:      "data:image/png;base64,iVBORw==",
		CreatedAt: 1700000000000,
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("Get() = %+v, want %+v", got, rec)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() missing error = %v, want ErrNotFound", err)
	}
}

func TestFileRepo_ListAndDelete(t *testing.T) {
	repo := NewFileRepo(openTestDB(t))
	ctx := context.Background()

	for i, id := range []string{"b", "a", "c"} {
		rec := &FileRecord{ID: id, Name: id, Type: "text/plain", Data: "data:text/plain;base64,eA==", CreatedAt: int64(i)}
		if err := repo.Put(ctx, rec); err != nil {
			t.Fatalf("Put(%s) error = %v", id, err)
		}
	}

	ids, err := repo.ListIDs(ctx)
	if err != nil {
		t.Fatalf("ListIDs() error = %v", err)
	}
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ListIDs() = %v, want %v", ids, want)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete() absent error = %v", err)
	}

	ids, _ = repo.ListIDs(ctx)
	if want := []string{"b", "c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ListIDs() after Delete() = %v, want %v", ids, want)
	}
}
