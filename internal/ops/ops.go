package ops

import (
	"errors"
	"fmt"
	"io"

	"github.com/conf-cli/conf/internal/store"
)

// ErrKeyNotFound is returned by Get when the key is absent and IgnoreNull is off.
var ErrKeyNotFound = errors.New("could not find key")

// Store is the subset of *store.Store the operations need.
type Store interface {
	Path() string
	Exists() (bool, error)
	CreateEmpty() error
	LoadOrCreate(forceCreate bool) (*store.Document, error)
	Persist(doc *store.Document) error
}

// Options carries the boolean flags an operation may honour.
type Options struct {
	// ForceCreate creates an empty document when none exists yet.
	ForceCreate bool
	// IgnoreNull turns a missing key in Get into an empty line.
	IgnoreNull bool
}

// Init creates an empty document unless one already exists.
func Init(s Store, out io.Writer) error {
	exists, err := s.Exists()
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintln(out, "config file already exists")
		return nil
	}
	return Clear(s, out)
}

// Clear replaces the document with an empty object.
func Clear(s Store, out io.Writer) error {
	if err := s.CreateEmpty(); err != nil {
		return err
	}
	fmt.Fprintf(out, "cleared config file at '%s'\n", s.Path())
	return nil
}

// List prints every entry as "key<TAB>value" in document order.
func List(s Store, out io.Writer, opts Options) error {
	doc, err := s.LoadOrCreate(opts.ForceCreate)
	if err != nil {
		return err
	}
	for _, e := range doc.Entries() {
		fmt.Fprintf(out, "%s\t%s\n", e.Key, e.Value)
	}
	return nil
}

// Get prints the value stored under key.
func Get(s Store, out io.Writer, key string, opts Options) error {
	doc, err := s.LoadOrCreate(opts.ForceCreate)
	if err != nil {
		return err
	}
	value, ok := doc.Get(key)
	if !ok {
		if opts.IgnoreNull {
			fmt.Fprintln(out)
			return nil
		}
		return fmt.Errorf("%w '%s'", ErrKeyNotFound, key)
	}
	fmt.Fprintln(out, value)
	return nil
}

// Set stores value under key, moving the key to the end of the document.
func Set(s Store, out io.Writer, key, value string, opts Options) error {
	doc, err := s.LoadOrCreate(opts.ForceCreate)
	if err != nil {
		return err
	}
	doc.Set(key, value)
	if err := s.Persist(doc); err != nil {
		return err
	}
	fmt.Fprintln(out, "updated config file")
	return nil
}

// Remove deletes key. A missing key is reported but is not an error, and the
// file is left untouched.
func Remove(s Store, out io.Writer, key string, opts Options) error {
	doc, err := s.LoadOrCreate(opts.ForceCreate)
	if err != nil {
		return err
	}
	if !doc.Remove(key) {
		fmt.Fprintf(out, "key '%s' was not found\n", key)
		return nil
	}
	if err := s.Persist(doc); err != nil {
		return err
	}
	fmt.Fprintln(out, "updated config file")
	return nil
}
