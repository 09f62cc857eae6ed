// register.go wires topic/reduce constructors into the topic package's
// registration variable (NewReducerFunc), mirroring topic/embed.
package reduce

import "github.com/Rqcker/BERTopic/topic"

func init() {
	topic.NewReducerFunc = func(dims int) topic.Reducer {
		return NewSVD(dims)
	}
}
