package scoring

import "errors"

var (
	// ErrAlreadyPublished is terminal: the match has already been scored and
	// locked. Surface as a conflict, do not retry.
	ErrAlreadyPublished = errors.New("match is already published")

	// ErrNotPublished is returned when recalculation is requested for a match
	// that has never been published.
	ErrNotPublished = errors.New("match is not published")

	// ErrNoActiveFormula is terminal: the season has no active scoring
	// formula. Publication cannot proceed until one is configured.
	ErrNoActiveFormula = errors.New("season has no active scoring formula")

	// ErrInvalidNameFormat is per-card: a raw player name with fewer than two
	// tokens cannot be split into first/last name. The card is skipped, not
	// the whole operation.
	ErrInvalidNameFormat = errors.New("player name must contain at least two words")

	// ErrMatchNotFound mirrors a 404 at the engine boundary.
	ErrMatchNotFound = errors.New("match not found")

	// ErrPlayerNotFound mirrors a 404 at the engine boundary.
	ErrPlayerNotFound = errors.New("player not found")
)
