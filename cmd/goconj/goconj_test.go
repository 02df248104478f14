package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizinak/goconj/common"
	"github.com/frizinak/goconj/conj"
	"github.com/frizinak/goconj/data"
	"github.com/frizinak/goconj/jehle"
)

const header = `"infinitive","infinitive_english","mood","mood_english","tense","tense_english","verb_english","form_1s","form_2s","form_3s","form_1p","form_2p","form_3p","gerund","gerund_english","pastparticiple","pastparticiple_english"`

const single = header + `
"hablar","to speak, talk","Indicativo","Indicative","Presente","Present","I speak, am speaking","hablo","hablas","habla","hablamos","habláis","hablan","hablando","speaking","hablado","spoken"
`

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, index func() (*conj.Index, error), args ...string) result {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	a := &app{stdout: stdout, stderr: stderr, index: index}
	code := a.run(args)
	return result{code, stdout.String(), stderr.String()}
}

func fromCSV(t *testing.T, csv string) func() (*conj.Index, error) {
	t.Helper()
	verbs, err := jehle.DecodeVerbs(strings.NewReader(csv))
	require.NoError(t, err)
	return func() (*conj.Index, error) { return conj.New(verbs), nil }
}

func bodyRows(out string) [][]string {
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	rows := make([][]string, 0)
	for _, l := range lines {
		if !strings.HasPrefix(l, "|") {
			continue
		}
		l = strings.Trim(l, "|")
		c := strings.Split(l, "|")
		for i := range c {
			c[i] = strings.TrimSpace(c[i])
		}
		rows = append(rows, c)
	}
	return rows
}

func TestSingleRecord(t *testing.T) {
	r := run(t, fromCSV(t, single), "hablar")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stderr)

	rows := bodyRows(r.stdout)
	require.Len(t, rows, 2)
	assert.Equal(t, common.Headers, rows[0])
	assert.Equal(t, []string{"Presente", "hablo", "hablas", "habla", "hablamos", "habláis", "hablan"}, rows[1])
}

func TestDecomposedFormsVerbatim(t *testing.T) {
	nfd := "habla\u0301is"
	csv := header + "\n" + `"hablar","to speak","Indicativo","Indicative","Presente","Present","I speak","hablo","hablas","habla","hablamos","` + nfd + `","hablan"` + "\n"
	r := run(t, fromCSV(t, csv), "hablar")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, nfd)
	assert.NotContains(t, r.stdout, "habláis")
	assert.Equal(t, []string{"Presente", "hablo", "hablas", "habla", "hablamos", nfd, "hablan"}, bodyRows(r.stdout)[1])
}

func TestMissingVerb(t *testing.T) {
	called := false
	r := run(t, func() (*conj.Index, error) {
		called = true
		return nil, nil
	})
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Equal(t, "¿Qué verbo?\n", r.stderr)
	assert.False(t, called)
}

func TestUnknownVerb(t *testing.T) {
	r := run(t, fromCSV(t, single), "nadar")
	assert.NotEqual(t, 0, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "¿Cómo?")
}

func TestTooManyVerbs(t *testing.T) {
	r := run(t, fromCSV(t, single), "hablar", "comer", "-c")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Equal(t, "un verbo, por favor: comer -c\n", r.stderr)
}

func TestFlagsAfterVerb(t *testing.T) {
	r := run(t, fromCSV(t, single), "hablar", "-c")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "\033[33mPresente")

	r = run(t, common.GetIndex, "ser", "-m", "Subjuntivo")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "seamos")

	r = run(t, fromCSV(t, single), "hablar", "-nope")
	assert.Equal(t, 2, r.code)
	assert.Empty(t, r.stdout)
}

func TestEmptyMoodFlag(t *testing.T) {
	r := run(t, fromCSV(t, single), "-m", "", "hablar")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Len(t, bodyRows(r.stdout), 2)

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "goconj.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("mood: Subjuntivo\n"), 0o600))
	r = run(t, common.GetIndex, "-config", cfgFile, "-m", "", "ser")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "seamos")
}

func TestBadFlag(t *testing.T) {
	r := run(t, fromCSV(t, single), "-nope", "hablar")
	assert.Equal(t, 2, r.code)
	assert.Empty(t, r.stdout)
}

func tenses(out string) []string {
	rows := bodyRows(out)
	l := make([]string, 0, len(rows))
	for _, r := range rows[1:] {
		l = append(l, r[0])
	}
	sort.Strings(l)
	return l
}

func TestIndicativeOnly(t *testing.T) {
	r := run(t, common.GetIndex, "hablar")
	require.Equal(t, 0, r.code, r.stderr)

	exp := []string{
		"Condicional", "Condicional perfecto", "Futuro", "Futuro perfecto", "Imperfecto",
		"Pluscuamperfecto", "Presente", "Presente perfecto", "Pretérito", "Pretérito anterior",
	}
	assert.Equal(t, exp, tenses(r.stdout))
	assert.NotContains(t, r.stdout, "hable ")
	assert.NotContains(t, r.stdout, "hablara")
}

func TestMoodFlag(t *testing.T) {
	r := run(t, common.GetIndex, "-m", "Subjuntivo", "ser")
	require.Equal(t, 0, r.code, r.stderr)
	exp := []string{"Futuro", "Futuro perfecto", "Imperfecto", "Pluscuamperfecto", "Presente", "Presente perfecto"}
	assert.Equal(t, exp, tenses(r.stdout))
	assert.Contains(t, r.stdout, "seamos")
	assert.Contains(t, r.stdout, "fuéremos")

	r = run(t, common.GetIndex, "-m", "Optativo", "ser")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "Subjuntivo")
}

func TestFormsVerbatim(t *testing.T) {
	verbs, err := data.Verbs()
	require.NoError(t, err)

	for _, inf := range []string{"ser", "ir", "tener"} {
		r := run(t, common.GetIndex, inf)
		require.Equal(t, 0, r.code, r.stderr)

		rows := bodyRows(r.stdout)[1:]
		for _, v := range verbs {
			if v.Infinitive != inf || v.Mood != jehle.Indicative {
				continue
			}
			found := false
			for _, row := range rows {
				if row[0] == v.Tense {
					assert.Equal(t, v.Slice(), row[1:])
					found = true
				}
			}
			assert.True(t, found, "%s", v)
		}
	}
}

func TestConfigAndDB(t *testing.T) {
	dir := t.TempDir()

	csvFile := filepath.Join(dir, "verbs.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte(single), 0o600))

	cfgFile := filepath.Join(dir, "goconj.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("mood: Subjuntivo\ndb: "+csvFile+"\n"), 0o600))

	unused := func() (*conj.Index, error) {
		t.Fatal("bundled dataset loaded")
		return nil, nil
	}

	// config mood has no records in verbs.csv
	r := run(t, unused, "-config", cfgFile, "hablar")
	assert.Equal(t, 1, r.code)

	r = run(t, unused, "-config", cfgFile, "-m", "Indicativo", "hablar")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Len(t, bodyRows(r.stdout), 2)

	gobFile := filepath.Join(dir, "verbs.gob")
	verbs, err := jehle.DecodeVerbs(strings.NewReader(single))
	require.NoError(t, err)
	require.NoError(t, jehle.StoreGOB(gobFile, verbs))

	r = run(t, unused, "-db", gobFile, "-c", "hablar")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "\033[33mPresente")

	r = run(t, unused, "-db", filepath.Join(dir, "verbs.txt"), "hablar")
	assert.Equal(t, 1, r.code)
}

func TestVerboseLogsToStderr(t *testing.T) {
	r := run(t, fromCSV(t, single), "-v", "hablar")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stderr, "dataset loaded")
	assert.NotContains(t, r.stdout, "dataset loaded")
}
