package form

// Sink receives a record once it passes the submit gate.
type Sink interface {
	Emit(record Record)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(record Record)

// Emit calls f(record).
func (f SinkFunc) Emit(record Record) { f(record) }

type discardSink struct{}

func (discardSink) Emit(Record) {}
