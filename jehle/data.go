package jehle

import (
	"fmt"
	"strings"
)

// Moods as spelled in the dataset.
const (
	Indicative            = "Indicativo"
	Subjunctive           = "Subjuntivo"
	ImperativeAffirmative = "Imperativo Afirmativo"
	ImperativeNegative    = "Imperativo Negativo"
)

type Person uint8

const (
	First Person = iota
	Second
	Third
)

type Number uint8

const (
	Singular Number = iota
	Plural
)

// Pronoun returns the column label used for a person/number slot.
func Pronoun(p Person, n Number) string { return pronouns[n][p] }

var pronouns = [2][3]string{
	{"yo", "tú", "él/ella/Ud."},
	{"nosotros", "vosotros", "ellos/ellas/Uds."},
}

type VerbForms struct {
	Form1s, Form2s, Form3s string
	Form1p, Form2p, Form3p string
}

// Form returns the conjugated form for the given slot.
func (f VerbForms) Form(p Person, n Number) string {
	return f.Slice()[int(n)*3+int(p)]
}

// Slice returns the six forms in yo, tú, él, nosotros, vosotros, ellos order.
func (f VerbForms) Slice() []string {
	return []string{f.Form1s, f.Form2s, f.Form3s, f.Form1p, f.Form2p, f.Form3p}
}

func (f VerbForms) String() string {
	return strings.Join(f.Slice(), ", ")
}

// Verb is a single dataset row: one mood and tense of one infinitive.
type Verb struct {
	Infinitive        string
	InfinitiveEnglish string
	VerbEnglish       string
	Mood              string
	Tense             string

	VerbForms
}

func (v Verb) String() string {
	return fmt.Sprintf("%s (%s) %s %s", v.Infinitive, v.InfinitiveEnglish, v.Mood, v.Tense)
}

type Verbs []Verb

func (v Verbs) Infinitives() []string {
	seen := make(map[string]struct{}, len(v)/16)
	l := make([]string, 0, len(v)/16)
	for _, verb := range v {
		if _, ok := seen[verb.Infinitive]; ok {
			continue
		}
		seen[verb.Infinitive] = struct{}{}
		l = append(l, verb.Infinitive)
	}

	return l
}
