package jehle

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"
)

// snapshot is what cmd/gob stores. Columns records the schema the verbs were
// decoded with so a snapshot from an incompatible loader is rejected.
type snapshot struct {
	Columns []string
	Verbs   Verbs
}

func columns() []string {
	c := make([]string, len(Schema))
	for i, col := range Schema {
		c[i] = fmt.Sprintf("%d:%s", col.index, col.name)
	}
	return c
}

// check rejects records no loader could have produced.
func (v Verb) check() error {
	fields := []struct {
		name     string
		value    string
		required bool
	}{
		{"infinitive", v.Infinitive, true},
		{"infinitive_english", v.InfinitiveEnglish, false},
		{"mood", v.Mood, true},
		{"tense", v.Tense, true},
		{"verb_english", v.VerbEnglish, false},
		{"form_1s", v.Form1s, false},
		{"form_2s", v.Form2s, false},
		{"form_3s", v.Form3s, false},
		{"form_1p", v.Form1p, false},
		{"form_2p", v.Form2p, false},
		{"form_3p", v.Form3p, false},
	}
	for _, f := range fields {
		if f.required && f.value == "" {
			return fmt.Errorf("empty %s", f.name)
		}
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("column %s is not valid utf-8", f.name)
		}
	}

	return nil
}

// EncodeGOB writes a snapshot of verbs, refusing records DecodeGOB would
// reject.
func EncodeGOB(w io.Writer, verbs Verbs) error {
	for i, v := range verbs {
		if err := v.check(); err != nil {
			return &DataFormatError{Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}
	return gob.NewEncoder(w).Encode(snapshot{Columns: columns(), Verbs: verbs})
}

// DecodeGOB reads a snapshot written by EncodeGOB. Any failure, including a
// schema mismatch or an invalid record, is a *DataFormatError.
func DecodeGOB(r io.Reader) (Verbs, error) {
	s := snapshot{}
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &DataFormatError{Err: fmt.Errorf("gob snapshot: %w", err)}
	}

	exp := columns()
	if len(s.Columns) != len(exp) {
		return nil, &DataFormatError{
			Err: fmt.Errorf("gob snapshot has %d columns, need %d", len(s.Columns), len(exp)),
		}
	}
	for i := range exp {
		if s.Columns[i] != exp[i] {
			return nil, &DataFormatError{
				Err: fmt.Errorf("gob snapshot column %q, expected %q", s.Columns[i], exp[i]),
			}
		}
	}

	for i, v := range s.Verbs {
		if err := v.check(); err != nil {
			return nil, &DataFormatError{Err: fmt.Errorf("gob snapshot record %d: %w", i, err)}
		}
	}

	if s.Verbs == nil {
		s.Verbs = Verbs{}
	}
	return s.Verbs, nil
}

// StoreGOB writes verbs to a temporary file next to file and renames it into
// place.
func StoreGOB(file string, verbs Verbs) error {
	tmp := fmt.Sprintf("%s.%d.tmp", file, time.Now().UnixNano())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := EncodeGOB(f, verbs); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, file)
}

// LoadGOB opens and decodes a snapshot. Errors opening the file are returned
// as is, decoding errors as *DataFormatError.
func LoadGOB(file string) (Verbs, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeGOB(f)
}

func LoadCSV(file string) (Verbs, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeVerbs(f)
}
