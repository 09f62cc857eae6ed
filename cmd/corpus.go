package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Rqcker/BERTopic/topic"
	"github.com/Rqcker/BERTopic/topic/cluster"
	"github.com/Rqcker/BERTopic/topic/embed"
	"github.com/Rqcker/BERTopic/topic/reduce"
)

// maxLineBytes caps a single corpus line; one document per line.
const maxLineBytes = 1 << 20

// readCorpus loads a corpus file with one document per line, skipping
// blank lines.
func readCorpus(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	var docs []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			docs = append(docs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return docs, nil
}

// chunkDocs splits docs into consecutive batches of at most size documents.
func chunkDocs(docs []string, size int) [][]string {
	if size <= 0 {
		return [][]string{docs}
	}
	var chunks [][]string
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		chunks = append(chunks, docs[start:end])
	}
	return chunks
}

// buildModel constructs a model from the YAML config with the standard
// sub-model lineup: word2vec embedder, truncated SVD reducer, k-means
// clusterer.
func buildModel(cfg *ModelConfig) (*topic.Model, error) {
	opts := cfg.toOptions()
	subs := topic.SubModels{
		Embedder: embed.NewWord2Vec(embed.Word2VecConfig{Dim: cfg.EmbedDim}),
		Reducer:  reduce.NewSVD(orDefault(cfg.ReduceDims, 5)),
	}
	if cfg.NumTopics > 0 {
		subs.Clusterer = cluster.NewKMeans(cfg.NumTopics)
	}
	return topic.New(opts, subs)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// writeTopicsToStdout marshals the topic table to YAML and writes to stdout.
func writeTopicsToStdout(stats []topic.TopicStat) {
	data, err := yaml.Marshal(stats)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Print(string(data))
}
