package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

const testPath = "/home/user/.conf.json"

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/user", 0755); err != nil {
		t.Fatal(err)
	}
	return New(fs, testPath), fs
}

func writeFile(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, testPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, fs afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(fs, testPath)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestExists(t *testing.T) {
	s, fs := newTestStore(t)
	ok, err := s.Exists()
	if err != nil || ok {
		t.Fatalf("Exists() = %v, %v; want false, nil", ok, err)
	}
	writeFile(t, fs, "{}")
	ok, err = s.Exists()
	if err != nil || !ok {
		t.Fatalf("Exists() = %v, %v; want true, nil", ok, err)
	}
}

func TestCreateEmptyOverwrites(t *testing.T) {
	s, fs := newTestStore(t)
	writeFile(t, fs, `{"a":"1"}`)

	if err := s.CreateEmpty(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, fs); got != "{}" {
		t.Errorf("file = %q, want {}", got)
	}
}

func TestLoadOrFail_NotFound(t *testing.T) {
	s, fs := newTestStore(t)
	_, err := s.LoadOrFail()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if want := "config file does not exist at '" + testPath + "'"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if ok, _ := afero.Exists(fs, testPath); ok {
		t.Error("LoadOrFail created the file")
	}
}

func TestLoadOrFail_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"malformed", `not json{`, ErrMalformed},
		{"array", `[1, 2]`, ErrNotAnObject},
		{"scalar", `true`, ErrNotAnObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs := newTestStore(t)
			writeFile(t, fs, tt.content)
			_, err := s.LoadOrFail()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadOrCreate(t *testing.T) {
	t.Run("missing without force", func(t *testing.T) {
		s, fs := newTestStore(t)
		if _, err := s.LoadOrCreate(false); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if ok, _ := afero.Exists(fs, testPath); ok {
			t.Error("file created without force")
		}
	})

	t.Run("missing with force", func(t *testing.T) {
		s, fs := newTestStore(t)
		doc, err := s.LoadOrCreate(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Len() != 0 {
			t.Errorf("Len() = %d, want 0", doc.Len())
		}
		if got := readFile(t, fs); got != "{}" {
			t.Errorf("file = %q, want {}", got)
		}
	})

	t.Run("existing with force is untouched", func(t *testing.T) {
		s, fs := newTestStore(t)
		writeFile(t, fs, `{"a":"1"}`)
		doc, err := s.LoadOrCreate(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, _ := doc.Get("a"); v != "1" {
			t.Errorf("Get(a) = %q, want 1", v)
		}
		if got := readFile(t, fs); got != `{"a":"1"}` {
			t.Errorf("file rewritten: %q", got)
		}
	})

	t.Run("malformed with force is not replaced", func(t *testing.T) {
		s, fs := newTestStore(t)
		writeFile(t, fs, `nope`)
		if _, err := s.LoadOrCreate(true); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
		if got := readFile(t, fs); got != "nope" {
			t.Errorf("file = %q, want nope", got)
		}
	})
}

func TestPersistFormat(t *testing.T) {
	s, fs := newTestStore(t)
	doc := NewDocument()
	doc.Set("foo", "bar")
	doc.Set("url", "http://x?a=1&b=<2>")

	if err := s.Persist(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"foo\": \"bar\",\n  \"url\": \"http://x?a=1&b=<2>\"\n}\n"
	if got := readFile(t, fs); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestPersistEmpty(t *testing.T) {
	s, fs := newTestStore(t)
	if err := s.Persist(NewDocument()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, fs); got != "{}\n" {
		t.Errorf("file = %q, want {}\\n", got)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	doc := NewDocument()
	doc.Set("b", "2")
	doc.Set("a", "line1\nline2\t\"quoted\"")
	doc.Set("empty", "")

	if err := s.Persist(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := s.LoadOrFail()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries(), doc.Entries()) {
		t.Errorf("round trip = %v, want %v", loaded.Entries(), doc.Entries())
	}
}

func TestPersistCoercesNonStringValues(t *testing.T) {
	s, fs := newTestStore(t)
	writeFile(t, fs, `{"n": 1, "s": "x"}`)
	doc, err := s.LoadOrFail()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Persist(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"n\": \"1\",\n  \"s\": \"x\"\n}\n"
	if got := readFile(t, fs); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestPersistReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll("/home/user", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(base, testPath, []byte(`{"a":"1"}`), 0644); err != nil {
		t.Fatal(err)
	}
	s := New(afero.NewReadOnlyFs(base), testPath)

	doc, err := s.LoadOrFail()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.Set("b", "2")
	if err := s.Persist(doc); !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if err := s.CreateEmpty(); !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO from CreateEmpty, got %v", err)
	}
	data, _ := afero.ReadFile(base, testPath)
	if string(data) != `{"a":"1"}` {
		t.Errorf("file changed after failed write: %q", data)
	}
}
