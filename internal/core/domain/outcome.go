// Package domain contains the value objects of the packaging core.
package domain

// OutcomeStatus classifies the result of a packaging operation.
type OutcomeStatus uint8

const (
	// StatusSuccess indicates the archive was created.
	StatusSuccess OutcomeStatus = iota
	// StatusWarning indicates a recoverable, expected condition: nothing was packaged.
	StatusWarning
	// StatusError indicates an unexpected filesystem or archive failure.
	StatusError
)

// User-facing outcome messages. The wording is part of the tool's contract.
const (
	MsgPackageCreated  = "Package created"
	MsgOutputDirAbsent = "Debug directory does not exist!"
	MsgNoFilesToPack   = "There is no files to pack!"
)

// Outcome is the tagged result of a single packaging invocation.
// It is produced once, presented once by the reporter, then discarded.
type Outcome struct {
	Status  OutcomeStatus
	Message string

	// ArchivePath and FileCount are populated on success only.
	ArchivePath string
	FileCount   int
}

// SuccessOutcome builds a success outcome for the given archive.
func SuccessOutcome(archivePath string, fileCount int) Outcome {
	return Outcome{
		Status:      StatusSuccess,
		Message:     MsgPackageCreated,
		ArchivePath: archivePath,
		FileCount:   fileCount,
	}
}

// WarningOutcome builds a warning outcome with the given message.
func WarningOutcome(msg string) Outcome {
	return Outcome{Status: StatusWarning, Message: msg}
}

// ErrorOutcome builds an error outcome carrying the failure's message.
func ErrorOutcome(err error) Outcome {
	return Outcome{Status: StatusError, Message: err.Error()}
}
