package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileReportsFailuresInResult(t *testing.T) {
	v := NewValidator(100 * 1024 * 1024)

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "empty path",
			path: func(t *testing.T) string { return "" },
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "gone.pdf")
			},
		},
		{
			name: "directory",
			path: func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "wrong extension",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "doc.docx")
				require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
				return p
			},
		},
		{
			name: "empty file",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "empty.pdf")
				require.NoError(t, os.WriteFile(p, nil, 0o644))
				return p
			},
		},
		{
			name: "corrupt content",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "bad.pdf")
				require.NoError(t, os.WriteFile(p, []byte("garbage"), 0o644))
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.ValidateFile(tt.path(t))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestValidateFileSizeLimit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "big.pdf")
	require.NoError(t, os.WriteFile(p, make([]byte, 128), 0o644))

	v := NewValidator(32)
	result, err := v.ValidateFile(p)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "too large")
}

func TestIsValidPDFFalseForJunk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(p, []byte("junk"), 0o644))

	v := NewValidator(100 * 1024 * 1024)
	assert.False(t, v.IsValidPDF(p))
}
