package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/team"
)

// Resolver maps raw scorecard names to player identities within one club.
// It is built per publication run: the club roster is loaded once, keyed by
// normalized name, and every resolution in the run hits that cache before
// touching storage. Names that create a new player also join the match
// team's squad so the zero-row completer sees them.
type Resolver struct {
	repo     Repository
	clubID   uint
	teamID   uint
	seasonID uint
	cache    map[string]uint
	created  int
}

func NewResolver(repo Repository, clubID, teamID, seasonID uint) (*Resolver, error) {
	players, err := repo.ListClubPlayers(clubID)
	if err != nil {
		return nil, fmt.Errorf("loading club roster: %w", err)
	}
	cache := make(map[string]uint, len(players))
	for _, p := range players {
		cache[p.NormalizedName] = p.ID
	}
	return &Resolver{
		repo:     repo,
		clubID:   clubID,
		teamID:   teamID,
		seasonID: seasonID,
		cache:    cache,
	}, nil
}

// Resolve returns the player ID for a raw scorecard name, creating the
// player and their squad membership when no roster entry matches. Names with
// fewer than two tokens cannot be split into first and last name and are
// rejected with ErrInvalidNameFormat; callers skip the card and continue.
func (r *Resolver) Resolve(rawName string) (uint, error) {
	normalized := player.NormalizeName(rawName)
	if id, ok := r.cache[normalized]; ok {
		return id, nil
	}

	tokens := strings.Fields(rawName)
	if len(tokens) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNameFormat, rawName)
	}

	p := &player.Player{
		ClubID:         r.clubID,
		FirstName:      tokens[0],
		LastName:       strings.Join(tokens[1:], " "),
		NormalizedName: normalized,
	}
	saved, err := r.repo.CreatePlayerIfAbsent(p)
	if err != nil {
		return 0, fmt.Errorf("creating player %q: %w", rawName, err)
	}
	if err := r.repo.AddSquadMember(&team.SquadMember{
		TeamID:   r.teamID,
		PlayerID: saved.ID,
		JoinedAt: time.Now(),
	}); err != nil {
		return 0, fmt.Errorf("adding %q to squad: %w", rawName, err)
	}

	r.cache[normalized] = saved.ID
	r.created++
	return saved.ID, nil
}

// CreatedCount reports how many new players this resolver created.
func (r *Resolver) CreatedCount() int {
	return r.created
}
