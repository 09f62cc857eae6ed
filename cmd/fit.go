package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fitCorpusPath string
	fitConfigPath string
	fitModelOut   string
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Train a topic model over a corpus file in one shot",
	Long:  "Read a corpus file (one document per line), train embedder, reducer and clusterer on the full set, and write the topic table to stdout as YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadModelConfig(fitConfigPath)
		if err != nil {
			logrus.Fatalf("Failed to load model config: %v", err)
		}
		docs, err := readCorpus(fitCorpusPath)
		if err != nil {
			logrus.Fatalf("Failed to read corpus: %v", err)
		}

		m, err := buildModel(cfg)
		if err != nil {
			logrus.Fatalf("Failed to build model: %v", err)
		}

		start := time.Now()
		if err := m.Fit(docs); err != nil {
			logrus.Fatalf("Fit failed: %v", err)
		}
		logrus.Infof("fitted %d documents in %s (vocabulary=%d)",
			len(docs), time.Since(start).Round(time.Millisecond), m.VocabSize())

		if fitModelOut != "" {
			if err := m.Save(fitModelOut); err != nil {
				logrus.Fatalf("Failed to save model: %v", err)
			}
			logrus.Infof("model snapshot written to %s", fitModelOut)
		}
		writeTopicsToStdout(m.TopicInfo())
	},
}

func init() {
	fitCmd.Flags().StringVar(&fitCorpusPath, "corpus", "", "Path to corpus file, one document per line")
	fitCmd.Flags().StringVar(&fitConfigPath, "config", "", "Path to model config YAML (optional)")
	fitCmd.Flags().StringVar(&fitModelOut, "out", "", "Path to write the model snapshot (optional)")
	_ = fitCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(fitCmd)
}
