package data

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/frizinak/goconj/jehle"
)

//go:embed jehle_verb_database.csv
var VerbDatabase []byte

var (
	once  sync.Once
	verbs jehle.Verbs
	err   error
)

// Verbs decodes the bundled dataset. The result is decoded once and shared,
// callers must not modify it.
func Verbs() (jehle.Verbs, error) {
	once.Do(func() {
		verbs, err = jehle.DecodeVerbs(bytes.NewReader(VerbDatabase))
	})
	return verbs, err
}
