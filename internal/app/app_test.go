package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const antibioticsCSV = `name,dose,mic,zone,batch,ph
amox,1,0.5,22,7,6.8
cipro,2,1.1,18,7,7.1
genta,3,1.4,15,7,NA
vanco,4,2.2,11,7,6.9
tetra,5,2.4,9,7,7.4
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{Datasets: []Dataset{{Name: "a", Threshold: 0.5}}})
	require.Error(t, err)

	_, err = NewConfig(Config{Datasets: []Dataset{{Name: "a", Path: "a.csv", Threshold: 2}}})
	require.Error(t, err)

	cfg, err := NewConfig(Config{Datasets: []Dataset{{Name: "a", Path: "a.csv", Threshold: 0.5}}})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
}

func TestApp_RunText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "antibiotics.csv", antibioticsCSV)
	heat := filepath.Join(dir, "plots", "antibiotics.png")

	cfg, err := NewConfig(Config{
		Datasets:  []Dataset{{Name: "antibiotics.csv", Path: path, Threshold: 0.6, Heatmap: heat}},
		LogLevel:  "debug",
		LogFormat: "json",
	})
	require.NoError(t, err)

	var out, logs bytes.Buffer
	require.NoError(t, NewApp(&out, &logs, cfg).Run(context.Background()))

	assert.Contains(t, out.String(), "analyzed dataset: antibiotics.csv\n")
	assert.Contains(t, out.String(), "(from initially 4)")
	assert.Contains(t, out.String(), "dropped as undefined: [batch]")
	assert.Contains(t, logs.String(), `"msg":"Reduction complete."`)
	assert.Contains(t, logs.String(), `"dataset":"antibiotics.csv"`)

	info, err := os.Stat(heat)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestApp_RunJSONAndBatchFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", antibioticsCSV)

	cfg, err := NewConfig(Config{
		Datasets: []Dataset{
			{Name: "missing", Path: filepath.Join(dir, "missing.csv"), Threshold: 0.6},
			{Name: "good", Path: good, Threshold: 0.6},
		},
		Output: "json",
	})
	require.NoError(t, err)

	var out, logs bytes.Buffer
	err = NewApp(&out, &logs, cfg).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset missing")

	var doc struct {
		Dataset  string   `json:"dataset"`
		Features []string `json:"features"`
	}
	require.NoError(t, json.NewDecoder(strings.NewReader(out.String())).Decode(&doc))
	assert.Equal(t, "good", doc.Dataset)
	assert.NotEmpty(t, doc.Features)
}

func TestApp_RunCanceled(t *testing.T) {
	cfg, err := NewConfig(Config{Datasets: []Dataset{{Name: "a", Path: "a.csv", Threshold: 0.5}}})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg).Run(ctx), context.Canceled)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", "text", &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newLogger("bogus", "json", &buf).Info("default level")
	assert.Contains(t, buf.String(), `"msg":"default level"`)
}
