package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/frizinak/goconj/conj"
	"github.com/frizinak/goconj/data"
	"github.com/frizinak/goconj/jehle"
)

var ix *conj.Index

// GetIndex returns the index over the bundled dataset.
func GetIndex() (*conj.Index, error) {
	if ix != nil {
		return ix, nil
	}
	verbs, err := data.Verbs()
	if err != nil {
		return nil, err
	}

	ix = conj.New(verbs)
	return ix, nil
}

// LoadVerbs reads a dataset from disk, either a csv export or a gob
// snapshot created by cmd/gob.
func LoadVerbs(file string) (jehle.Verbs, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv":
		return jehle.LoadCSV(file)
	case ".gob":
		return jehle.LoadGOB(file)
	default:
		return nil, fmt.Errorf("unknown dataset format %q for %s", ext, file)
	}
}
