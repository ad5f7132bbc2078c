package storage

//go:generate go run github.com/vektra/mockery/v2 --name=ReservationLedger --output=mocks
//go:generate go run github.com/vektra/mockery/v2 --name=TaskLedger --output=mocks
//go:generate go run github.com/vektra/mockery/v2 --name=LedgerReader --output=mocks

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (ApiStore, ReservationLedger, TaskLedger) instead of this one.
type Storage interface {
	ApiStore
	ReservationWriter
	ProgressStore
}

// ReservationLedger is everything the reservation engine needs from the store.
type ReservationLedger interface {
	ReservationReader
	ReservationWriter
	AccountReader
	OfferReader
}

// TaskLedger is everything the progress tracker and claim authority need from the store.
type TaskLedger interface {
	TaskReader
	ProgressStore
	ReservationCounter
}
