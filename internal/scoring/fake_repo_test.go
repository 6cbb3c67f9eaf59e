package scoring

import (
	"github.com/robharvey123/cricket-platform-sub001/internal/formula"
	"github.com/robharvey123/cricket-platform-sub001/internal/match"
	"github.com/robharvey123/cricket-platform-sub001/internal/player"
	"github.com/robharvey123/cricket-platform-sub001/internal/team"
)

// fakeRepo is an in-memory Repository for exercising the publication engine
// without a database. WithTransaction snapshots the whole state and restores
// it when txFunc fails, mirroring a rollback.
type fakeRepo struct {
	matches      map[uint]*match.Match
	formulas     map[uint]*formula.ScoringFormula // active formula by season ID
	players      map[uint]player.Player
	nextPlayerID uint
	squads       map[uint][]uint // team ID -> player IDs
	batting      map[uint]*match.BattingCard
	bowling      map[uint]*match.BowlingCard
	fielding     map[uint]*match.FieldingCard
	nextCardID   uint
	events       []PointsEvent

	appendEventsErr error // injected failure
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		matches:      map[uint]*match.Match{},
		formulas:     map[uint]*formula.ScoringFormula{},
		players:      map[uint]player.Player{},
		nextPlayerID: 1,
		squads:       map[uint][]uint{},
		batting:      map[uint]*match.BattingCard{},
		bowling:      map[uint]*match.BowlingCard{},
		fielding:     map[uint]*match.FieldingCard{},
		nextCardID:   1,
	}
}

// --- test seeding helpers ---

func (f *fakeRepo) addMatch(m match.Match) *match.Match {
	stored := m
	f.matches[stored.ID] = &stored
	return &stored
}

func (f *fakeRepo) addPlayer(clubID uint, first, last string) uint {
	id := f.nextPlayerID
	f.nextPlayerID++
	p := player.Player{
		ClubID:         clubID,
		FirstName:      first,
		LastName:       last,
		NormalizedName: player.NormalizeName(first + " " + last),
	}
	p.ID = id
	f.players[id] = p
	return id
}

func (f *fakeRepo) addBattingCard(card match.BattingCard) uint {
	id := f.nextCardID
	f.nextCardID++
	card.ID = id
	f.batting[id] = &card
	return id
}

func (f *fakeRepo) addBowlingCard(card match.BowlingCard) uint {
	id := f.nextCardID
	f.nextCardID++
	card.ID = id
	f.bowling[id] = &card
	return id
}

func (f *fakeRepo) addFieldingCard(card match.FieldingCard) uint {
	id := f.nextCardID
	f.nextCardID++
	card.ID = id
	f.fielding[id] = &card
	return id
}

// --- Repository implementation ---

func (f *fakeRepo) GetMatch(id uint) (*match.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (f *fakeRepo) ClaimPublish(matchID uint) (bool, error) {
	m, ok := f.matches[matchID]
	if !ok || m.Published {
		return false, nil
	}
	m.Published = true
	return true, nil
}

func (f *fakeRepo) ListMatchesByClub(clubID uint) ([]match.Match, error) {
	var out []match.Match
	for _, m := range f.matches {
		if m.ClubID == clubID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListMatchIDsForPlayer(playerID uint) ([]uint, error) {
	seen := map[uint]bool{}
	var ids []uint
	add := func(matchID uint) {
		if !seen[matchID] {
			seen[matchID] = true
			ids = append(ids, matchID)
		}
	}
	for _, c := range f.batting {
		if c.PlayerID != nil && *c.PlayerID == playerID {
			add(c.MatchID)
		}
	}
	for _, c := range f.bowling {
		if c.PlayerID != nil && *c.PlayerID == playerID {
			add(c.MatchID)
		}
	}
	for _, c := range f.fielding {
		if c.PlayerID != nil && *c.PlayerID == playerID {
			add(c.MatchID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) GetActiveFormula(seasonID uint) (*formula.ScoringFormula, error) {
	fl, ok := f.formulas[seasonID]
	if !ok {
		return nil, nil
	}
	copied := *fl
	return &copied, nil
}

func (f *fakeRepo) GetPlayer(id uint) (*player.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (f *fakeRepo) ListClubPlayers(clubID uint) ([]player.Player, error) {
	var out []player.Player
	for _, p := range f.players {
		if p.ClubID == clubID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreatePlayerIfAbsent(p *player.Player) (*player.Player, error) {
	for _, existing := range f.players {
		if existing.ClubID == p.ClubID && existing.NormalizedName == p.NormalizedName {
			copied := existing
			return &copied, nil
		}
	}
	saved := *p
	saved.ID = f.nextPlayerID
	f.nextPlayerID++
	f.players[saved.ID] = saved
	return &saved, nil
}

func (f *fakeRepo) DeletePlayerRecord(id uint) error {
	delete(f.players, id)
	return nil
}

func (f *fakeRepo) AddSquadMember(m *team.SquadMember) error {
	for _, id := range f.squads[m.TeamID] {
		if id == m.PlayerID {
			return nil
		}
	}
	f.squads[m.TeamID] = append(f.squads[m.TeamID], m.PlayerID)
	return nil
}

func (f *fakeRepo) ListSquadPlayerIDs(teamID uint) ([]uint, error) {
	return append([]uint(nil), f.squads[teamID]...), nil
}

func (f *fakeRepo) ListUnresolvedBattingCards(matchID uint) ([]match.BattingCard, error) {
	var out []match.BattingCard
	for _, c := range f.batting {
		if c.MatchID == matchID && c.PlayerID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUnresolvedBowlingCards(matchID uint) ([]match.BowlingCard, error) {
	var out []match.BowlingCard
	for _, c := range f.bowling {
		if c.MatchID == matchID && c.PlayerID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUnresolvedFieldingCards(matchID uint) ([]match.FieldingCard, error) {
	var out []match.FieldingCard
	for _, c := range f.fielding {
		if c.MatchID == matchID && c.PlayerID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) AssignBattingPlayer(cardID, playerID uint) error {
	if c, ok := f.batting[cardID]; ok {
		pid := playerID
		c.PlayerID = &pid
	}
	return nil
}

func (f *fakeRepo) AssignBowlingPlayer(cardID, playerID uint) error {
	if c, ok := f.bowling[cardID]; ok {
		pid := playerID
		c.PlayerID = &pid
	}
	return nil
}

func (f *fakeRepo) AssignFieldingPlayer(cardID, playerID uint) error {
	if c, ok := f.fielding[cardID]; ok {
		pid := playerID
		c.PlayerID = &pid
	}
	return nil
}

func (f *fakeRepo) ListBattingCardsForScoring(matchID uint) ([]match.BattingCard, error) {
	var out []match.BattingCard
	for _, c := range f.batting {
		if c.MatchID == matchID && c.PlayerID != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBowlingCardsForScoring(matchID uint) ([]match.BowlingCard, error) {
	var out []match.BowlingCard
	for _, c := range f.bowling {
		if c.MatchID == matchID && c.PlayerID != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBattingPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	seen := map[uint]bool{}
	for _, c := range f.batting {
		if c.MatchID == matchID && c.PlayerID != nil && !seen[*c.PlayerID] {
			seen[*c.PlayerID] = true
			ids = append(ids, *c.PlayerID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) ListBowlingPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	seen := map[uint]bool{}
	for _, c := range f.bowling {
		if c.MatchID == matchID && c.PlayerID != nil && !seen[*c.PlayerID] {
			seen[*c.PlayerID] = true
			ids = append(ids, *c.PlayerID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) ListFieldingPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	seen := map[uint]bool{}
	for _, c := range f.fielding {
		if c.MatchID == matchID && c.PlayerID != nil && !seen[*c.PlayerID] {
			seen[*c.PlayerID] = true
			ids = append(ids, *c.PlayerID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) InsertDerivedBattingCard(card *match.BattingCard) error {
	f.addBattingCard(*card)
	return nil
}

func (f *fakeRepo) InsertDerivedBowlingCard(card *match.BowlingCard) error {
	f.addBowlingCard(*card)
	return nil
}

func (f *fakeRepo) InsertDerivedFieldingCard(card *match.FieldingCard) error {
	f.addFieldingCard(*card)
	return nil
}

func (f *fakeRepo) ReassignCards(fromPlayerID, toPlayerID uint) error {
	for _, c := range f.batting {
		if c.PlayerID != nil && *c.PlayerID == fromPlayerID {
			pid := toPlayerID
			c.PlayerID = &pid
		}
	}
	for _, c := range f.bowling {
		if c.PlayerID != nil && *c.PlayerID == fromPlayerID {
			pid := toPlayerID
			c.PlayerID = &pid
		}
	}
	for _, c := range f.fielding {
		if c.PlayerID != nil && *c.PlayerID == fromPlayerID {
			pid := toPlayerID
			c.PlayerID = &pid
		}
	}
	return nil
}

func (f *fakeRepo) AppendEvents(events []PointsEvent) error {
	if f.appendEventsErr != nil {
		return f.appendEventsErr
	}
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeRepo) DeleteEventsForPlayers(matchID uint, playerIDs []uint) error {
	drop := map[uint]bool{}
	for _, id := range playerIDs {
		drop[id] = true
	}
	kept := f.events[:0]
	for _, e := range f.events {
		if e.MatchID == matchID && drop[e.PlayerID] {
			continue
		}
		kept = append(kept, e)
	}
	f.events = kept
	return nil
}

func (f *fakeRepo) ListClubIDs() ([]uint, error) {
	seen := map[uint]bool{}
	var ids []uint
	for _, m := range f.matches {
		if !seen[m.ClubID] {
			seen[m.ClubID] = true
			ids = append(ids, m.ClubID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) WithTransaction(txFunc func(Repository) error) error {
	snapshot := f.clone()
	if err := txFunc(f); err != nil {
		f.restore(snapshot)
		return err
	}
	return nil
}

func (f *fakeRepo) clone() *fakeRepo {
	c := newFakeRepo()
	c.nextPlayerID = f.nextPlayerID
	c.nextCardID = f.nextCardID
	for id, m := range f.matches {
		copied := *m
		c.matches[id] = &copied
	}
	for id, fl := range f.formulas {
		copied := *fl
		c.formulas[id] = &copied
	}
	for id, p := range f.players {
		c.players[id] = p
	}
	for id, squad := range f.squads {
		c.squads[id] = append([]uint(nil), squad...)
	}
	for id, card := range f.batting {
		copied := *card
		c.batting[id] = &copied
	}
	for id, card := range f.bowling {
		copied := *card
		c.bowling[id] = &copied
	}
	for id, card := range f.fielding {
		copied := *card
		c.fielding[id] = &copied
	}
	c.events = append([]PointsEvent(nil), f.events...)
	return c
}

func (f *fakeRepo) restore(snapshot *fakeRepo) {
	f.matches = snapshot.matches
	f.formulas = snapshot.formulas
	f.players = snapshot.players
	f.nextPlayerID = snapshot.nextPlayerID
	f.squads = snapshot.squads
	f.batting = snapshot.batting
	f.bowling = snapshot.bowling
	f.fielding = snapshot.fielding
	f.nextCardID = snapshot.nextCardID
	f.events = snapshot.events
}
