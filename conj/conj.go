package conj

import (
	"fmt"
	"strings"

	"github.com/frizinak/goconj/jehle"
	"golang.org/x/text/unicode/norm"
)

type VerbNotFoundError struct {
	Infinitive string
}

func (e *VerbNotFoundError) Error() string {
	return fmt.Sprintf("¿Cómo? %s", e.Infinitive)
}

type MoodNotFoundError struct {
	Infinitive string
	Mood       string
	Available  []string
}

func (e *MoodNotFoundError) Error() string {
	return fmt.Sprintf(
		"%s has no %s forms, try one of: %s",
		e.Infinitive,
		e.Mood,
		strings.Join(e.Available, ", "),
	)
}

// Row is a single tense of a conjugation table.
type Row struct {
	Tense string
	jehle.VerbForms
}

type Index struct {
	n  int
	by map[string][]jehle.Verb
}

// Bucket keys are NFC so decomposed and precomposed accents group together,
// the records themselves are left untouched.
func infinitive(v jehle.Verb) string { return key(v.Infinitive) }
func mood(v jehle.Verb) string       { return key(v.Mood) }
func tense(v jehle.Verb) string      { return key(v.Tense) }

func key(s string) string { return norm.NFC.String(strings.TrimSpace(s)) }

func New(verbs jehle.Verbs) *Index {
	return &Index{n: len(verbs), by: GroupBy(verbs, infinitive)}
}

// Len returns the amount of distinct infinitives.
func (i *Index) Len() int { return len(i.by) }

// Records returns the amount of dataset rows the index was built from.
func (i *Index) Records() int { return i.n }

// Lookup returns every mood and tense of the given infinitive in dataset
// order.
func (i *Index) Lookup(infinitive string) (jehle.Verbs, error) {
	v, ok := i.by[key(infinitive)]
	if !ok {
		return nil, &VerbNotFoundError{Infinitive: infinitive}
	}

	return v, nil
}

// Moods returns the moods the given infinitive has forms for.
func (i *Index) Moods(infinitive string) ([]string, error) {
	v, err := i.Lookup(infinitive)
	if err != nil {
		return nil, err
	}

	return Keys(v, mood), nil
}

// Conjugate returns one row per record of infinitive in the given mood.
// Tenses are ordered as they first appear in the dataset, duplicate
// records of a tense each produce their own row.
func (i *Index) Conjugate(infinitive, m string) ([]Row, error) {
	all, err := i.Lookup(infinitive)
	if err != nil {
		return nil, err
	}

	m = key(m)
	filtered := make(jehle.Verbs, 0, len(all))
	for _, v := range all {
		if mood(v) == m {
			filtered = append(filtered, v)
		}
	}

	if len(filtered) == 0 {
		return nil, &MoodNotFoundError{
			Infinitive: infinitive,
			Mood:       m,
			Available:  Keys(all, mood),
		}
	}

	byTense := GroupBy(filtered, tense)
	rows := make([]Row, 0, len(filtered))
	for _, t := range Keys(filtered, tense) {
		for _, v := range byTense[t] {
			rows = append(rows, Row{Tense: v.Tense, VerbForms: v.VerbForms})
		}
	}

	return rows, nil
}
