// register.go wires topic/embed constructors into the topic package's
// registration variable (NewEmbedderFunc). This init() runs when any
// package imports topic/embed, breaking the import cycle between topic
// (interface owner) and topic/embed (implementation).
package embed

import "github.com/Rqcker/BERTopic/topic"

func init() {
	topic.NewEmbedderFunc = func(seed int64) topic.Embedder {
		return NewWord2Vec(Word2VecConfig{})
	}
}
