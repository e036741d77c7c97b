package dataset

import "fmt"

// DataLoadError is returned when a dataset source is missing, malformed, or
// lacks a required column. It is fatal at startup.
type DataLoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dataset %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %s", e.Source, e.Reason)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

func loadError(source, reason string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Reason: reason, Err: err}
}
