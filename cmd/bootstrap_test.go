package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult_Stdout(t *testing.T) {
	outputPath = ""
	var buf bytes.Buffer

	require.NoError(t, writeResult(&buf, map[string]int{"count": 2}))
	assert.Equal(t, "{\n  \"count\": 2\n}\n", buf.String())
}

func TestWriteResult_File(t *testing.T) {
	outputPath = filepath.Join(t.TempDir(), "result.json")
	t.Cleanup(func() { outputPath = "" })
	var buf bytes.Buffer

	require.NoError(t, writeResult(&buf, []string{"a"}))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\"\n]", string(data))
}

func TestWriteResult_Unmarshalable(t *testing.T) {
	outputPath = ""
	err := writeResult(&bytes.Buffer{}, func() {})
	assert.ErrorContains(t, err, "failed to marshal result")
}
