package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCorpus_OneDocPerLineSkippingBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	body := "red wine tasting\n\n  \nmarathon training\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	docs, err := readCorpus(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"red wine tasting", "marathon training"}, docs)
}

func TestReadCorpus_MissingFile(t *testing.T) {
	_, err := readCorpus(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestChunkDocs_SplitsIntoConsecutiveBatches(t *testing.T) {
	docs := []string{"a", "b", "c", "d", "e"}

	chunks := chunkDocs(docs, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"c", "d"}, chunks[1])
	assert.Equal(t, []string{"e"}, chunks[2])
}

func TestChunkDocs_NonPositiveSizeMeansOneBatch(t *testing.T) {
	docs := []string{"a", "b"}
	chunks := chunkDocs(docs, 0)
	require.Len(t, chunks, 1)
	assert.Equal(t, docs, chunks[0])
}
