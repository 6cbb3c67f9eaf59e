package match

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// fakeMatchRepo is an in-memory MatchRepository for handler tests.
type fakeMatchRepo struct {
	matches  map[uint]*Match
	innings  map[uint]*Innings
	batting  map[uint]*BattingCard
	bowling  map[uint]*BowlingCard
	fielding map[uint]*FieldingCard
	batches  []ImportBatch
	nextID   uint
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		matches:  map[uint]*Match{},
		innings:  map[uint]*Innings{},
		batting:  map[uint]*BattingCard{},
		bowling:  map[uint]*BowlingCard{},
		fielding: map[uint]*FieldingCard{},
	}
}

func (f *fakeMatchRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeMatchRepo) addMatch(published bool) uint {
	m := &Match{
		ClubID:   1,
		SeasonID: 1,
		TeamID:   1,
		Opponent: "Ashford CC",
		PlayedAt: time.Date(2025, 6, 14, 13, 0, 0, 0, time.UTC),
	}
	m.ID = f.id()
	m.Published = published
	f.matches[m.ID] = m
	return m.ID
}

func (f *fakeMatchRepo) addBattingCard(card BattingCard) uint {
	card.ID = f.id()
	f.batting[card.ID] = &card
	return card.ID
}

func (f *fakeMatchRepo) addBowlingCard(card BowlingCard) uint {
	card.ID = f.id()
	f.bowling[card.ID] = &card
	return card.ID
}

func (f *fakeMatchRepo) addInnings(in Innings) uint {
	in.ID = f.id()
	f.innings[in.ID] = &in
	return in.ID
}

func (f *fakeMatchRepo) CreateMatch(m *Match) error {
	if m.ID == 0 {
		m.ID = f.id()
	}
	cp := *m
	f.matches[m.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) GetMatchByID(id uint) (*Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMatchRepo) GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error) {
	var out []Match
	for _, m := range f.matches {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMatchRepo) UpdateMatch(m *Match) error {
	cp := *m
	f.matches[m.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) DeleteMatch(id uint) error {
	delete(f.matches, id)
	return nil
}

func (f *fakeMatchRepo) CreateInnings(in *Innings) error {
	if in.ID == 0 {
		in.ID = f.id()
	}
	cp := *in
	f.innings[in.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) GetInningsForMatch(matchID uint) ([]Innings, error) {
	var out []Innings
	for _, in := range f.innings {
		if in.MatchID == matchID {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) UpdateInnings(in *Innings) error {
	cp := *in
	f.innings[in.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) CreateBattingCard(card *BattingCard) error {
	if card.ID == 0 {
		card.ID = f.id()
	}
	cp := *card
	f.batting[card.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) CreateBowlingCard(card *BowlingCard) error {
	if card.ID == 0 {
		card.ID = f.id()
	}
	cp := *card
	f.bowling[card.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) CreateFieldingCard(card *FieldingCard) error {
	if card.ID == 0 {
		card.ID = f.id()
	}
	cp := *card
	f.fielding[card.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) GetBattingCards(matchID uint) ([]BattingCard, error) {
	var out []BattingCard
	for _, card := range f.batting {
		if card.MatchID == matchID {
			out = append(out, *card)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) GetBowlingCards(matchID uint) ([]BowlingCard, error) {
	var out []BowlingCard
	for _, card := range f.bowling {
		if card.MatchID == matchID {
			out = append(out, *card)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) GetFieldingCards(matchID uint) ([]FieldingCard, error) {
	var out []FieldingCard
	for _, card := range f.fielding {
		if card.MatchID == matchID {
			out = append(out, *card)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) UpdateBattingCard(card *BattingCard) error {
	cp := *card
	f.batting[card.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) UpdateBowlingCard(card *BowlingCard) error {
	cp := *card
	f.bowling[card.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) DeleteBattingCard(id uint) error {
	delete(f.batting, id)
	return nil
}

func (f *fakeMatchRepo) DeleteBowlingCard(id uint) error {
	delete(f.bowling, id)
	return nil
}

func (f *fakeMatchRepo) CreateImportBatch(batch *ImportBatch) error {
	if batch.ID == 0 {
		batch.ID = f.id()
	}
	f.batches = append(f.batches, *batch)
	return nil
}

func (f *fakeMatchRepo) GetImportBatches(matchID uint) ([]ImportBatch, error) {
	var out []ImportBatch
	for _, b := range f.batches {
		if b.MatchID == matchID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) WithTransaction(txFunc func(MatchRepository) error) error {
	return txFunc(f)
}

func newTestRouter(repo MatchRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mc := NewMatchController(repo)
	r := gin.New()
	r.GET("/matches/:match_id/innings", mc.GetInnings)
	r.GET("/admin/matches/:match_id/import-batches", mc.GetImportBatches)
	r.PUT("/admin/matches/:match_id/innings/:innings_id", mc.UpdateInnings)
	r.PUT("/admin/matches/:match_id/batting-cards/:card_id", mc.UpdateBattingCard)
	r.DELETE("/admin/matches/:match_id/batting-cards/:card_id", mc.DeleteBattingCard)
	r.PUT("/admin/matches/:match_id/bowling-cards/:card_id", mc.UpdateBowlingCard)
	r.DELETE("/admin/matches/:match_id/bowling-cards/:card_id", mc.DeleteBowlingCard)
	return r
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func uintPtr(v uint) *uint { return &v }

func TestUpdateBattingCardOnDraftMatch(t *testing.T) {
	repo := newFakeMatchRepo()
	matchID := repo.addMatch(false)
	cardID := repo.addBattingCard(BattingCard{
		MatchID:    matchID,
		PlayerID:   uintPtr(7),
		PlayerName: "Joe Root",
		Position:   3,
		Runs:       41,
		Dismissed:  true,
	})
	r := newTestRouter(repo)

	w := perform(r, http.MethodPut, "/admin/matches/1/batting-cards/2", gin.H{
		"runs":        52,
		"player_name": "Harry Brook",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 updating a draft card, got %d (%s)", w.Code, w.Body.String())
	}

	card := repo.batting[cardID]
	if card.Runs != 52 {
		t.Errorf("Expected runs to be updated to 52, got %d", card.Runs)
	}
	if card.PlayerName != "Harry Brook" {
		t.Errorf("Expected player name to be updated, got %q", card.PlayerName)
	}
	if card.PlayerID != nil {
		t.Errorf("Expected a renamed card to lose its resolved player, got %v", *card.PlayerID)
	}
	if card.Position != 3 || !card.Dismissed {
		t.Errorf("Expected untouched fields to survive, got %+v", card)
	}
}

func TestScorecardEditsLockedAfterPublish(t *testing.T) {
	repo := newFakeMatchRepo()
	matchID := repo.addMatch(true)
	battingID := repo.addBattingCard(BattingCard{MatchID: matchID, PlayerName: "Joe Root", Runs: 41})
	bowlingID := repo.addBowlingCard(BowlingCard{MatchID: matchID, PlayerName: "Jofra Archer", Wickets: 2})
	inningsID := repo.addInnings(Innings{MatchID: matchID, Side: SideHome, Runs: 180})
	r := newTestRouter(repo)

	requests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"update batting card", http.MethodPut, "/admin/matches/1/batting-cards/2", gin.H{"runs": 99}},
		{"delete batting card", http.MethodDelete, "/admin/matches/1/batting-cards/2", nil},
		{"update bowling card", http.MethodPut, "/admin/matches/1/bowling-cards/3", gin.H{"wickets": 5}},
		{"delete bowling card", http.MethodDelete, "/admin/matches/1/bowling-cards/3", nil},
		{"update innings", http.MethodPut, "/admin/matches/1/innings/4", gin.H{"runs": 200}},
	}
	for _, req := range requests {
		if w := perform(r, req.method, req.path, req.body); w.Code != http.StatusConflict {
			t.Errorf("Expected 409 for %s on a published match, got %d", req.name, w.Code)
		}
	}

	if repo.batting[battingID].Runs != 41 {
		t.Errorf("Expected the published batting card to be untouched, got %d runs", repo.batting[battingID].Runs)
	}
	if repo.bowling[bowlingID].Wickets != 2 {
		t.Errorf("Expected the published bowling card to be untouched, got %d wickets", repo.bowling[bowlingID].Wickets)
	}
	if repo.innings[inningsID].Runs != 180 {
		t.Errorf("Expected the published innings to be untouched, got %d runs", repo.innings[inningsID].Runs)
	}
}

func TestDeleteBowlingCardOnDraftMatch(t *testing.T) {
	repo := newFakeMatchRepo()
	matchID := repo.addMatch(false)
	cardID := repo.addBowlingCard(BowlingCard{MatchID: matchID, PlayerName: "Jofra Archer"})
	r := newTestRouter(repo)

	if w := perform(r, http.MethodDelete, "/admin/matches/1/bowling-cards/2", nil); w.Code != http.StatusOK {
		t.Fatalf("Expected 200 deleting a draft card, got %d", w.Code)
	}
	if _, ok := repo.bowling[cardID]; ok {
		t.Error("Expected the bowling card to be removed")
	}

	if w := perform(r, http.MethodDelete, "/admin/matches/1/bowling-cards/99", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown card, got %d", w.Code)
	}
}

func TestUpdateInningsOnDraftMatch(t *testing.T) {
	repo := newFakeMatchRepo()
	matchID := repo.addMatch(false)
	inningsID := repo.addInnings(Innings{MatchID: matchID, Side: SideHome, Runs: 180, Wickets: 6, Overs: 40, Extras: 12})
	r := newTestRouter(repo)

	w := perform(r, http.MethodPut, "/admin/matches/1/innings/2", gin.H{"runs": 184, "extras": 16})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 updating a draft innings, got %d (%s)", w.Code, w.Body.String())
	}

	in := repo.innings[inningsID]
	if in.Runs != 184 || in.Extras != 16 {
		t.Errorf("Expected innings totals to be updated, got %+v", in)
	}
	if in.Wickets != 6 || in.Overs != 40 {
		t.Errorf("Expected untouched fields to survive, got %+v", in)
	}
}

func TestGetImportBatchesForMatch(t *testing.T) {
	repo := newFakeMatchRepo()
	matchID := repo.addMatch(false)
	otherID := repo.addMatch(false)
	repo.batches = append(repo.batches,
		ImportBatch{ClubID: 1, MatchID: matchID, Reference: "ref-1", CardCount: 11},
		ImportBatch{ClubID: 1, MatchID: matchID, Reference: "ref-2", CardCount: 3},
		ImportBatch{ClubID: 1, MatchID: otherID, Reference: "ref-3", CardCount: 9},
	)
	r := newTestRouter(repo)

	w := perform(r, http.MethodGet, "/admin/matches/1/import-batches", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 listing import batches, got %d", w.Code)
	}

	var envelope struct {
		Data []ImportBatch `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Expected a decodable response, got %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Errorf("Expected 2 batches for the match, got %d", len(envelope.Data))
	}

	if w := perform(r, http.MethodGet, "/admin/matches/99/import-batches", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown match, got %d", w.Code)
	}
}
