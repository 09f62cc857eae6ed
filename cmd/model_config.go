package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Rqcker/BERTopic/topic"
)

// ModelConfig is the YAML-facing model configuration consumed by the fit
// and stream commands.
type ModelConfig struct {
	NumTopics   int      `yaml:"num_topics"`
	TopWords    int      `yaml:"top_words"`
	Decay       float64  `yaml:"decay"`
	DeleteMinDF float64  `yaml:"delete_min_df"`
	ReduceDims  int      `yaml:"reduce_dims"`
	EmbedDim    int      `yaml:"embed_dim"`
	NGramMax    int      `yaml:"ngram_max"`
	Seed        int64    `yaml:"seed"`
	StopWords   []string `yaml:"stop_words"`
}

// LoadModelConfig reads a YAML model config with strict field checking, so
// typos cause errors instead of silent defaults. An empty path yields the
// zero config (library defaults apply).
func LoadModelConfig(path string) (*ModelConfig, error) {
	cfg := &ModelConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing model config %s: %w", path, err)
	}
	return cfg, nil
}

// toOptions maps the YAML surface onto library Options.
func (c *ModelConfig) toOptions() topic.Options {
	return topic.Options{
		NumTopics:   c.NumTopics,
		TopWords:    c.TopWords,
		Decay:       c.Decay,
		DeleteMinDF: c.DeleteMinDF,
		ReduceDims:  c.ReduceDims,
		Seed:        c.Seed,
		StopWords:   c.StopWords,
		NGramMax:    c.NGramMax,
	}
}
