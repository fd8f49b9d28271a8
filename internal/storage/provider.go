package storage

import (
	"timeaftertime/internal/model"
)

// DataProvider is the abstracted timesheet store, which can be implemented
// over various storage systems.
//
// The data provider's responsibilities are as follows:
//   - track which timesheets exist and which one was last worked on
//   - load a timesheet into memory and persist it back as a whole
//   - handle whatever backend backs the storage
//
// Loads and stores are blocking whole-sheet operations; a failed load must
// not leave a half-constructed sheet behind.
type DataProvider interface {
	List() ([]string, error)
	Exists(name string) bool

	Create(ts *model.Timesheet) error
	Load(name string) (*model.Timesheet, error)
	Store(ts *model.Timesheet) error
	Delete(name string) error

	LastOpened() string
	SetLastOpened(name string) error
}
