//go:build unit

package broker

func NewPublisherWithWriter(w messageWriter, topic string) *Publisher {
	return newPublisher(w, topic)
}
