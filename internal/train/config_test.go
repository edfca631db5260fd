package train

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/free-rbf/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {

	tests := map[string]struct {
		modify func(cfg *Config)
		valid  bool
	}{
		"default": {
			modify: func(cfg *Config) {},
			valid:  true,
		},
		"no-inputs": {
			modify: func(cfg *Config) { cfg.Inputs = 0 },
		},
		"class-in-inputs": {
			modify: func(cfg *Config) { cfg.Class = 2 },
		},
		"no-rbfs": {
			modify: func(cfg *Config) { cfg.RBFs = 0 },
		},
		"no-iterations": {
			modify: func(cfg *Config) { cfg.Iterations = 0 },
		},
		"negative-trees": {
			modify: func(cfg *Config) { cfg.Trees = -1 },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfig_Open(t *testing.T) {
	cfg := DefaultConfig()
	data, err := cfg.Open()
	require.NoError(t, err)
	defer data.Close()
	ds, err := dataset.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 150, ds.Size())

	file := filepath.Join(t.TempDir(), "set.csv")
	require.NoError(t, os.WriteFile(file, []byte(blobs()), 0644))
	cfg.File = file
	data, err = cfg.Open()
	require.NoError(t, err)
	defer data.Close()
	ds, err = dataset.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 30, ds.Size())

	cfg.File = filepath.Join(t.TempDir(), "missing.csv")
	_, err = cfg.Open()
	assert.Error(t, err)
}
