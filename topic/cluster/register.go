// register.go wires topic/cluster constructors into the topic package's
// registration variable (NewClustererFunc), mirroring topic/embed.
package cluster

import "github.com/Rqcker/BERTopic/topic"

func init() {
	topic.NewClustererFunc = func(k int, seed int64) topic.Clusterer {
		return NewKMeans(k)
	}
}
