package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tailored-agentic-units/filestore/store"
)

func TestSaveFiles_AllSucceed(t *testing.T) {
	s := store.New(t.TempDir())

	files := map[string][]byte{
		"a.txt":       []byte("alpha"),
		"b.txt":       []byte("beta"),
		"sub/c.txt":   []byte("gamma"),
		"sub/d/e.txt": []byte("delta"),
	}

	if err := s.SaveFiles(context.Background(), files); err != nil {
		t.Fatalf("SaveFiles() error = %v", err)
	}

	for name, want := range files {
		got, err := s.ReadFile(context.Background(), name)
		if err != nil {
			t.Fatalf("ReadFile(%q) error = %v", name, err)
		}
		if string(got) != string(want) {
			t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSaveFiles_FirstErrorSurfaces(t *testing.T) {
	s := store.New(t.TempDir())

	files := map[string][]byte{
		"x.txt":    []byte("valid"),
		"../y.txt": []byte("invalid"),
	}

	err := s.SaveFiles(context.Background(), files)
	if !errors.Is(err, store.ErrInvalidName) {
		t.Errorf("SaveFiles() error = %v, want %v", err, store.ErrInvalidName)
	}
	// Whether x.txt was persisted is best-effort and deliberately unasserted.
}

func TestSaveFiles_Empty(t *testing.T) {
	s := store.New(t.TempDir())

	if err := s.SaveFiles(context.Background(), nil); err != nil {
		t.Errorf("SaveFiles(nil) error = %v, want nil", err)
	}
}

func TestSaveFiles_NotEnabled(t *testing.T) {
	s := store.New("")

	err := s.SaveFiles(context.Background(), map[string][]byte{"a.txt": []byte("data")})
	if !errors.Is(err, store.ErrNotEnabled) {
		t.Errorf("SaveFiles() error = %v, want %v", err, store.ErrNotEnabled)
	}
}

func TestReadFiles_PreservesInputOrder(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "alpha")
	writeTestFile(t, root, "c.txt", "gamma")

	s := store.New(root)

	results := s.ReadFiles(context.Background(), []string{"a.txt", "b.txt", "c.txt"})
	if len(results) != 3 {
		t.Fatalf("ReadFiles() returned %d results, want 3", len(results))
	}

	if results[0].Name != "a.txt" || results[0].Err != nil || string(results[0].Data) != "alpha" {
		t.Errorf("results[0] = %+v, want a.txt with contents %q", results[0], "alpha")
	}
	if results[1].Name != "b.txt" || !errors.Is(results[1].Err, store.ErrNotFound) {
		t.Errorf("results[1] = %+v, want b.txt carrying %v", results[1], store.ErrNotFound)
	}
	if results[2].Name != "c.txt" || results[2].Err != nil || string(results[2].Data) != "gamma" {
		t.Errorf("results[2] = %+v, want c.txt with contents %q", results[2], "gamma")
	}
}

func TestReadFiles_Empty(t *testing.T) {
	s := store.New(t.TempDir())

	results := s.ReadFiles(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("ReadFiles(nil) returned %d results, want 0", len(results))
	}
}

func TestReadFiles_NotEnabled(t *testing.T) {
	s := store.New("")

	results := s.ReadFiles(context.Background(), []string{"a.txt", "b.txt"})
	if len(results) != 2 {
		t.Fatalf("ReadFiles() returned %d results, want 2", len(results))
	}
	for i, res := range results {
		if !errors.Is(res.Err, store.ErrNotEnabled) {
			t.Errorf("results[%d].Err = %v, want %v", i, res.Err, store.ErrNotEnabled)
		}
	}
}

func TestReadFiles_ManyConcurrent(t *testing.T) {
	root := t.TempDir()
	s := store.New(root)

	files := map[string][]byte{}
	names := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		name := string(rune('a'+i%26)) + "/" + string(rune('0'+i%10)) + ".txt"
		files[name] = []byte{byte(i)}
		names = append(names, name)
	}
	if err := s.SaveFiles(context.Background(), files); err != nil {
		t.Fatalf("SaveFiles() error = %v", err)
	}

	results := s.ReadFiles(context.Background(), names)
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("results[%d] (%s) error = %v", i, res.Name, res.Err)
		}
		if res.Name != names[i] {
			t.Errorf("results[%d].Name = %q, want %q (input order)", i, res.Name, names[i])
		}
		if string(res.Data) != string(files[names[i]]) {
			t.Errorf("results[%d].Data = %v, want %v", i, res.Data, files[names[i]])
		}
	}
}
