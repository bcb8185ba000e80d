package release

import "fmt"

type ReleaseError struct {
	Message string
}

func (errorValue ReleaseError) Error() string {
	return errorValue.Message
}

// SoldOutError reports a purchase against a release with no remaining
// supply.
type SoldOutError struct {
	ReleaseError
	Release string
}

func NewSoldOutError(release string) error {
	return SoldOutError{
		ReleaseError: ReleaseError{Message: fmt.Sprintf("release %s is sold out", release)},
		Release:      release,
	}
}

// EditionClosedError reports a purchase against a closed edition.
type EditionClosedError struct {
	ReleaseError
	Release string
}

func NewEditionClosedError(release string) error {
	return EditionClosedError{
		ReleaseError: ReleaseError{Message: fmt.Sprintf("edition of release %s is closed", release)},
		Release:      release,
	}
}

// NotFoundError reports a release the indexer does not know.
type NotFoundError struct {
	ReleaseError
	Release string
}

func NewNotFoundError(release string) error {
	return NotFoundError{
		ReleaseError: ReleaseError{Message: fmt.Sprintf("release %s not found", release)},
		Release:      release,
	}
}
