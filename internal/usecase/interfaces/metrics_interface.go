package interfaces

//go:generate mockgen -source=metrics_interface.go -destination=mocks/mock_metrics.go -package=mock_interfaces

import "time"

// IMetrics receives facade instrumentation. Implementations must be safe for
// concurrent use.
type IMetrics interface {
	ObserveMutation(op string, took time.Duration, err error)
	SetCollectionSize(collection string, n int)
}
