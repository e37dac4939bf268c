package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FilePerm is the permission used when the document is created.
const FilePerm os.FileMode = 0644

const emptyDocument = "{}"

// Store reads and writes the config document at a fixed path.
type Store struct {
	fs   afero.Fs
	path string
}

// New returns a Store for the document at path on fs.
func New(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewOS returns a Store backed by the real filesystem.
func NewOS(path string) *Store {
	return New(afero.NewOsFs(), path)
}

// Path returns the document path the store was built with.
func (s *Store) Path() string { return s.path }

// Exists reports whether the document file is present.
func (s *Store) Exists() (bool, error) {
	ok, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return false, fmt.Errorf("checking config file '%s': %w: %w", s.path, ErrIO, err)
	}
	return ok, nil
}

// CreateEmpty writes an empty object to the path, overwriting any content.
func (s *Store) CreateEmpty() error {
	if err := afero.WriteFile(s.fs, s.path, []byte(emptyDocument), FilePerm); err != nil {
		return fmt.Errorf("creating config file '%s': %w: %w", s.path, ErrIO, err)
	}
	s.log().Debug("wrote empty config file")
	return nil
}

// LoadOrFail reads and parses the document. It returns ErrNotFound when the
// file is absent, ErrMalformed when it is not JSON, and ErrNotAnObject when
// the JSON root is not an object.
func (s *Store) LoadOrFail() (*Document, error) {
	exists, err := s.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w at '%s'", ErrNotFound, s.path)
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("reading config file '%s': %w: %w", s.path, ErrIO, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w ('%s')", err, s.path)
	}
	s.log().WithField("entries", doc.Len()).Debug("loaded config file")
	return doc, nil
}

// LoadOrCreate is LoadOrFail, except that with forceCreate set a missing
// document is first created empty.
func (s *Store) LoadOrCreate(forceCreate bool) (*Document, error) {
	if forceCreate {
		exists, err := s.Exists()
		if err != nil {
			return nil, err
		}
		if !exists {
			if err := s.CreateEmpty(); err != nil {
				return nil, err
			}
		}
	}
	return s.LoadOrFail()
}

// Persist overwrites the file with doc as 2-space indented JSON.
func (s *Store) Persist(doc *Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("encoding config file: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, FilePerm); err != nil {
		return fmt.Errorf("writing config file '%s': %w: %w", s.path, ErrIO, err)
	}
	s.log().WithField("entries", doc.Len()).Debug("persisted config file")
	return nil
}

func (s *Store) log() *logrus.Entry {
	return logrus.WithField("path", s.path)
}

func encodeDocument(doc *Document) ([]byte, error) {
	compact, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
