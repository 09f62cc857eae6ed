package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	streamCorpusPath string
	streamConfigPath string
	streamModelOut   string
	streamChunkSize  int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Train a topic model incrementally over corpus chunks",
	Long:  "Read a corpus file (one document per line) in chunks and feed each chunk to PartialFit, so accumulated term frequencies decay and the vocabulary is pruned as configured. Writes the final topic table to stdout as YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadModelConfig(streamConfigPath)
		if err != nil {
			logrus.Fatalf("Failed to load model config: %v", err)
		}
		docs, err := readCorpus(streamCorpusPath)
		if err != nil {
			logrus.Fatalf("Failed to read corpus: %v", err)
		}

		m, err := buildModel(cfg)
		if err != nil {
			logrus.Fatalf("Failed to build model: %v", err)
		}

		for i, batch := range chunkDocs(docs, streamChunkSize) {
			if err := m.PartialFit(batch); err != nil {
				logrus.Fatalf("Partial fit failed on batch %d: %v", i+1, err)
			}
			assigned := make(map[int]int)
			for _, t := range m.Topics() {
				assigned[t]++
			}
			logrus.Infof("batch %d: %d documents across %d topics, vocabulary=%d",
				i+1, len(batch), len(assigned), m.VocabSize())
		}

		if streamModelOut != "" {
			if err := m.Save(streamModelOut); err != nil {
				logrus.Fatalf("Failed to save model: %v", err)
			}
			logrus.Infof("model snapshot written to %s", streamModelOut)
		}
		writeTopicsToStdout(m.TopicInfo())
	},
}

func init() {
	streamCmd.Flags().StringVar(&streamCorpusPath, "corpus", "", "Path to corpus file, one document per line")
	streamCmd.Flags().StringVar(&streamConfigPath, "config", "", "Path to model config YAML (optional)")
	streamCmd.Flags().StringVar(&streamModelOut, "out", "", "Path to write the model snapshot (optional)")
	streamCmd.Flags().IntVar(&streamChunkSize, "chunk-size", 1000, "Documents per incremental batch")
	_ = streamCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(streamCmd)
}
