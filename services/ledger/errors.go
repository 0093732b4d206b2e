package ledger

import "errors"

var (
	// ErrInvalidCategory means the supplied category does not resolve in the
	// taxonomy.
	ErrInvalidCategory = errors.New("unknown waste category")

	// ErrMissingLocation means a report carried neither an address nor a
	// coordinate pair.
	ErrMissingLocation = errors.New("a report requires an address or coordinates")

	// ErrInvalidKind means the record kind was neither scan nor report.
	ErrInvalidKind = errors.New("kind must be scan or report")
)
