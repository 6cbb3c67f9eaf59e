package scoring

import (
	"errors"
	"testing"
)

func TestResolverMatchesExistingRosterPlayer(t *testing.T) {
	repo := newFakeRepo()
	existingID := repo.addPlayer(1, "James", "Anderson")

	resolver, err := NewResolver(repo, 1, 10, 100)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	// Casing and spacing variants normalize onto the same roster entry.
	id, err := resolver.Resolve("  JAMES   anderson ")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if id != existingID {
		t.Errorf("Expected existing player %d, got %d", existingID, id)
	}
	if resolver.CreatedCount() != 0 {
		t.Errorf("Expected no players created, got %d", resolver.CreatedCount())
	}
}

func TestResolverCreatesAndCachesNewPlayer(t *testing.T) {
	repo := newFakeRepo()

	resolver, err := NewResolver(repo, 1, 10, 100)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	first, err := resolver.Resolve("Joe Root")
	if err != nil {
		t.Fatalf("First Resolve failed: %v", err)
	}
	second, err := resolver.Resolve("Joe Root")
	if err != nil {
		t.Fatalf("Second Resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("Same name must resolve to one player, got %d and %d", first, second)
	}
	if resolver.CreatedCount() != 1 {
		t.Errorf("Expected exactly one player created, got %d", resolver.CreatedCount())
	}

	p := repo.players[first]
	if p.FirstName != "Joe" || p.LastName != "Root" {
		t.Errorf("Expected name split Joe/Root, got %s/%s", p.FirstName, p.LastName)
	}

	squad, _ := repo.ListSquadPlayerIDs(10)
	if len(squad) != 1 || squad[0] != first {
		t.Errorf("Expected new player in team 10 squad, got %v", squad)
	}
}

func TestResolverSplitsMultiWordSurname(t *testing.T) {
	repo := newFakeRepo()

	resolver, err := NewResolver(repo, 1, 10, 100)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	id, err := resolver.Resolve("Jos van der Berg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	p := repo.players[id]
	if p.FirstName != "Jos" || p.LastName != "van der Berg" {
		t.Errorf("Expected Jos / van der Berg, got %s / %s", p.FirstName, p.LastName)
	}
}

func TestResolverRejectsSingleTokenName(t *testing.T) {
	repo := newFakeRepo()

	resolver, err := NewResolver(repo, 1, 10, 100)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	_, err = resolver.Resolve("Smith")
	if !errors.Is(err, ErrInvalidNameFormat) {
		t.Errorf("Expected ErrInvalidNameFormat for a single-token name, got %v", err)
	}
	if len(repo.players) != 0 {
		t.Errorf("A rejected name must not create a player, roster has %d", len(repo.players))
	}
}
