package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rqcker/BERTopic/topic"
)

var topicsModelPath string

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Print the topic table of a saved model",
	Long:  "Load a model snapshot written by fit/stream --out and write its topic table to stdout as YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := topic.Load(topicsModelPath, topic.SubModels{})
		if err != nil {
			logrus.Fatalf("Failed to load model %s: %v", topicsModelPath, err)
		}
		writeTopicsToStdout(m.TopicInfo())
	},
}

func init() {
	topicsCmd.Flags().StringVar(&topicsModelPath, "model", "", "Path to a model snapshot")
	_ = topicsCmd.MarkFlagRequired("model")

	rootCmd.AddCommand(topicsCmd)
}
