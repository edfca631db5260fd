package train

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlot(t *testing.T) {
	dir := t.TempDir()

	type test struct {
		improvements []Improvement
		file         string
		err          bool
	}

	tests := map[string]test{
		"png": {
			improvements: []Improvement{{1, 0.8}, {10, 0.5}, {120, 0.2}},
			file:         filepath.Join(dir, "error.png"),
		},
		"svg": {
			improvements: []Improvement{{3, 0.4}},
			file:         filepath.Join(dir, "error.svg"),
		},
		"empty": {
			file: filepath.Join(dir, "empty.png"),
			err:  true,
		},
		"unknown-format": {
			improvements: []Improvement{{1, 0.8}},
			file:         filepath.Join(dir, "error.xyz"),
			err:          true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := Plot(name, tt.improvements, tt.file)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			info, err := os.Stat(tt.file)
			require.NoError(t, err)
			assert.True(t, info.Size() > 0)
		})
	}
}
