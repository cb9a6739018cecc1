package record

import "errors"

// ErrUnknownPhase is returned when a phase label is not present in the record.
var ErrUnknownPhase = errors.New("record: unknown phase")
