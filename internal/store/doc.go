// Package store owns the config document: a single JSON object on disk that
// maps string keys to string values. A Store is built with an explicit path
// and afero filesystem, reads the whole document on every load and rewrites
// the whole document on every persist. There is no locking; concurrent
// writers race and the last one wins.
package store
