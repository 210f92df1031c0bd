package jsonfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcedex/internal/domain"
)

const sampleJSON = `[
  {
    "Category": "AI",
    "Subcategory": "LLM",
    "Resource Name": "Prompt Engineering Guide",
    "Type": "Guide",
    "Cost": "Free",
    "Description": "Writing better prompts",
    "URL/Source": "https://www.promptingguide.ai",
    "Skill Level": "Beginner",
    "Priority": "High"
  },
  {
    "Category": "AI",
    "Resource Name": "Deep Learning Course",
    "Cost": "Paid",
    "Priority": 3,
    "Extra": "ignored",
    "Skill Level": null
  }
]`

func TestDecode(t *testing.T) {
	records, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Prompt Engineering Guide", records[0].Name)
	assert.Equal(t, "https://www.promptingguide.ai", records[0].URL)
	assert.Equal(t, "Beginner", records[0].SkillLevel)

	// Missing keys and null become empty, numbers keep their text
	assert.Equal(t, "", records[1].Subcategory)
	assert.Equal(t, "", records[1].SkillLevel)
	assert.Equal(t, "3", records[1].Priority)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `[{"Category": "AI"`},
		{"not an array", `{"Category": "AI"}`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	records, err := Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resources.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	src := NewSource(path)
	assert.Equal(t, path, src.Describe())

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestNewSource_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "resources.json"), NewSource("~/resources.json").Describe())
	assert.Equal(t, "~shared/resources.json", NewSource("~shared/resources.json").Describe())
}

func TestSource_LoadMissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "missing.json"))

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_LoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource("unused.json").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriter_RoundTrip(t *testing.T) {
	records := []domain.Record{
		{Category: "Música", Name: "Théorie <basics>", URL: "https://example.com/?a=1&b=2"},
	}

	path := filepath.Join(t.TempDir(), "out", "resources.json")
	require.NoError(t, NewWriter(path).Write(context.Background(), records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Música")
	assert.Contains(t, string(data), "<basics>")
	assert.Contains(t, string(data), `"Resource Name": "Théorie <basics>"`)

	got, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestEncode_NilWritesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
