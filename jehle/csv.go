package jehle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

type field uint8

const (
	fieldInfinitive field = iota
	fieldInfinitiveEnglish
	fieldMood
	fieldTense
	fieldVerbEnglish
	fieldForm1s
	fieldForm2s
	fieldForm3s
	fieldForm1p
	fieldForm2p
	fieldForm3p
)

type column struct {
	index int
	field field
	name  string
}

// Schema maps dataset columns to Verb fields. Columns 3 and 5 hold the
// english mood and tense labels, 13 and up the gerund and participles.
var Schema = []column{
	{0, fieldInfinitive, "infinitive"},
	{1, fieldInfinitiveEnglish, "infinitive_english"},
	{2, fieldMood, "mood"},
	{4, fieldTense, "tense"},
	{6, fieldVerbEnglish, "verb_english"},
	{7, fieldForm1s, "form_1s"},
	{8, fieldForm2s, "form_2s"},
	{9, fieldForm3s, "form_3s"},
	{10, fieldForm1p, "form_1p"},
	{11, fieldForm2p, "form_2p"},
	{12, fieldForm3p, "form_3p"},
}

// SchemaColumns is the minimum number of columns a header row must have.
var SchemaColumns = func() int {
	n := 0
	for _, c := range Schema {
		if c.index+1 > n {
			n = c.index + 1
		}
	}
	return n
}()

// DataFormatError is returned when the dataset can not be decoded.
type DataFormatError struct {
	Line int
	Err  error
}

func (e *DataFormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid verb dataset: %s", e.Err)
	}
	return fmt.Sprintf("invalid verb dataset on line %d: %s", e.Line, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

var ErrNoHeader = errors.New("missing header row")

func (v *Verb) set(f field, value string) {
	switch f {
	case fieldInfinitive:
		v.Infinitive = value
	case fieldInfinitiveEnglish:
		v.InfinitiveEnglish = value
	case fieldMood:
		v.Mood = value
	case fieldTense:
		v.Tense = value
	case fieldVerbEnglish:
		v.VerbEnglish = value
	case fieldForm1s:
		v.Form1s = value
	case fieldForm2s:
		v.Form2s = value
	case fieldForm3s:
		v.Form3s = value
	case fieldForm1p:
		v.Form1p = value
	case fieldForm2p:
		v.Form2p = value
	case fieldForm3p:
		v.Form3p = value
	}
}

func dec(r io.Reader, row func(int, []string) error) error {
	c := csv.NewReader(r)
	c.FieldsPerRecord = -1
	c.ReuseRecord = true

	header, err := c.Read()
	if err == io.EOF {
		return &DataFormatError{Err: ErrNoHeader}
	}
	if err != nil {
		return &DataFormatError{Line: 1, Err: err}
	}
	if len(header) < SchemaColumns {
		return &DataFormatError{
			Line: 1,
			Err: fmt.Errorf(
				"header has %d columns, need at least %d",
				len(header),
				SchemaColumns,
			),
		}
	}

	for {
		rec, err := c.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return &DataFormatError{Line: perr.StartLine, Err: err}
			}
			return &DataFormatError{Err: err}
		}

		n, _ := c.FieldPos(0)
		if err := row(n, rec); err != nil {
			return err
		}
	}
}

// DecodeVerbs reads a Jehle style verb dataset. Rows shorter than the schema
// yield empty fields, the header row must however cover every column.
// Cells are kept byte for byte, normalization is left to whoever compares
// them.
func DecodeVerbs(r io.Reader) (Verbs, error) {
	verbs := make(Verbs, 0, 1024)
	err := dec(r, func(n int, row []string) error {
		v := Verb{}
		for _, c := range Schema {
			if c.index >= len(row) {
				continue
			}
			value := row[c.index]
			if !utf8.ValidString(value) {
				return &DataFormatError{
					Line: n,
					Err:  fmt.Errorf("column %s is not valid utf-8", c.name),
				}
			}
			v.set(c.field, value)
		}

		verbs = append(verbs, v)
		return nil
	})

	return verbs, err
}
