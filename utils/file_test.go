package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docassist/docassist-be/utils"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "report-2024_final.pdf", utils.SanitizeFileName("report-2024_final.pdf"))
	assert.Equal(t, "my_report_v2_.pdf", utils.SanitizeFileName("my report/v2!.pdf"))
	assert.Equal(t, "____.txt", utils.SanitizeFileName("日本語.txt"))
}

func TestTimestampedFileName(t *testing.T) {
	name := utils.TimestampedFileName("quarterly report.pdf")

	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.True(t, strings.HasPrefix(name, "quarterly_report_"))
	assert.NotContains(t, name, " ")
}

func TestSaveTextResult(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := utils.SaveTextResult("summary text", dir, "summary.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "summary text", string(data))
}

func TestSaveTextResult_DefaultsAndExtension(t *testing.T) {
	dir := t.TempDir()

	path, err := utils.SaveTextResult("a", dir, "")
	require.NoError(t, err)
	assert.Equal(t, "result.txt", filepath.Base(path))

	path, err = utils.SaveTextResult("b", dir, "notes")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", filepath.Base(path))
}
