package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "sample.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"name":"iris","value":0.01}`), 0644))

	var s sample
	_, err := Load(file, &s)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "iris", Value: 0.01}, s)

	_, err = Load(filepath.Join(dir, "missing.json"), &s)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name":`), 0644))
	_, err = Load(bad, &s)
	assert.Error(t, err)
}

func TestMustLoad_Panics(t *testing.T) {
	var s sample
	assert.Panics(t, func() {
		MustLoad("does-not-exist", &s)
	})
}
