// internal/sentinel/sentinel.go

// Package sentinel holds the errors shared by every pruebas command.
//
// Fatal conditions (an unreadable source, an undecodable JSON document, a
// failed artifact write, a source without a single usable value) are returned
// wrapped around one of these values so the command layer can tell them apart
// with errors.Is. Per-line problems never produce an error; they are logged
// and skipped by the component that found them.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrOpenSource is returned when an input file cannot be opened or read.
	ErrOpenSource = ewrap.New("cannot read input source")

	// ErrNoValidData is returned when ingestion finished without a single valid observation.
	ErrNoValidData = ewrap.New("no valid data to compute statistics")

	// ErrEmptyInput is returned when a computation is asked to run on an empty sequence.
	ErrEmptyInput = ewrap.New("empty input")

	// ErrDecodeJSON is returned when a JSON input cannot be decoded.
	ErrDecodeJSON = ewrap.New("cannot decode JSON input")

	// ErrWriteArtifact is returned when the result file cannot be created, written or closed.
	ErrWriteArtifact = ewrap.New("cannot write result file")

	// ErrInvalidConfig is returned when the configuration cannot be loaded.
	ErrInvalidConfig = ewrap.New("invalid configuration")
)
