package sampler

import "github.com/aretw0/montepi/pkg/domain"

// Sink consumes classified samples.
type Sink interface {
	// Record is called once per sample, in generation order.
	Record(s domain.Sample, inside bool) error
	// Close flushes any buffered output.
	Close() error
}

// Progress receives loop progress notifications.
type Progress interface {
	Start(total int)
	Add(n int)
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(int) {}
func (nopProgress) Add(int)   {}
func (nopProgress) Finish()   {}
