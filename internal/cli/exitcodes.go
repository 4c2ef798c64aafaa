package cli

import "errors"

// Exit codes for gotex.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates a malformed or unbuildable manifest.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Error classification sentinels. Commands wrap their errors with one of
// these so main can choose an exit code without string matching.
var (
	// ErrManifest marks manifest parse and build failures.
	ErrManifest = errors.New("invalid manifest")

	// ErrIO marks file read and write failures.
	ErrIO = errors.New("i/o failure")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrManifest):
		return ExitDataError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitFailure
	}
}
