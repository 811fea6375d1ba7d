package service

// ProgressReporter receives fractional progress updates and status text while
// a document is being processed. Implementations are purely observational and
// never affect control flow; the aggregators call them before each chunk's
// inference call and on every skipped chunk.
type ProgressReporter interface {
	Progress(fraction float64)
	Status(message string)
	Warning(message string)
}

// NopProgress discards all updates. Used when no client is listening.
type NopProgress struct{}

func (NopProgress) Progress(fraction float64) {}
func (NopProgress) Status(message string)     {}
func (NopProgress) Warning(message string)    {}
