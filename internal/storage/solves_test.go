package storage

import "testing"

func TestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R U R' U'", "practice")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for an existing solve")
	}
	if s.ScrambleText == nil || *s.ScrambleText != "R U R' U'" {
		t.Errorf("ScrambleText = %v, want %q", s.ScrambleText, "R U R' U'")
	}
	if s.Notes == nil || *s.Notes != "practice" {
		t.Errorf("Notes = %v, want %q", s.Notes, "practice")
	}
	if s.EndedAt != nil {
		t.Errorf("EndedAt = %v, want nil before End", s.EndedAt)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s, err := repo.Get("does-not-exist")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != nil {
		t.Errorf("Get(missing) = %+v, want nil", s)
	}
}

func TestEndRecordsSolution(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R U R' U'", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.End(id, "U R U' R'", 4, 2, 2); err != nil {
		t.Fatalf("End: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.SolutionText == nil || *s.SolutionText != "U R U' R'" {
		t.Errorf("SolutionText = %v, want %q", s.SolutionText, "U R U' R'")
	}
	if s.MoveCount == nil || *s.MoveCount != 4 {
		t.Errorf("MoveCount = %v, want 4", s.MoveCount)
	}
	if s.Phase1Moves == nil || *s.Phase1Moves != 2 {
		t.Errorf("Phase1Moves = %v, want 2", s.Phase1Moves)
	}
	if s.Phase2Moves == nil || *s.Phase2Moves != 2 {
		t.Errorf("Phase2Moves = %v, want 2", s.Phase2Moves)
	}
	if s.EndedAt == nil {
		t.Error("EndedAt is nil after End")
	}
	if s.DurationMs == nil {
		t.Error("DurationMs is nil after End")
	}
}

func TestGetLastAfterNoSolves(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast: %v", err)
	}
	if last != nil {
		t.Errorf("GetLast() with no solves = %+v, want nil", last)
	}
}

func TestGetLastReturnsACreatedSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	firstID, err := repo.Create("R U R' U'", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	secondID, err := repo.Create("F2 B2", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast: %v", err)
	}
	if last == nil {
		t.Fatal("GetLast returned nil after Creates")
	}
	if last.SolveID != firstID && last.SolveID != secondID {
		t.Errorf("GetLast().SolveID = %q, want one of %q or %q", last.SolveID, firstID, secondID)
	}
}

func TestListReturnsAllCreatedSolves(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	first, err := repo.Create("R", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create("U", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("List returned %d solves, want 2", len(solves))
	}
	ids := map[string]bool{solves[0].SolveID: true, solves[1].SolveID: true}
	if !ids[first] || !ids[second] {
		t.Errorf("List() = %v, want both %q and %q present", solves, first, second)
	}
}

func TestDeleteRemovesSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != nil {
		t.Errorf("Get after Delete = %+v, want nil", s)
	}
}

func TestGetMoveCountBeforeEnd(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	count, err := repo.GetMoveCount(id)
	if err != nil {
		t.Fatalf("GetMoveCount: %v", err)
	}
	if count != 0 {
		t.Errorf("GetMoveCount before End = %d, want 0", count)
	}
}

func TestGetMoveCountAfterEnd(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.End(id, "R'", 1, 1, 0); err != nil {
		t.Fatalf("End: %v", err)
	}
	count, err := repo.GetMoveCount(id)
	if err != nil {
		t.Fatalf("GetMoveCount: %v", err)
	}
	if count != 1 {
		t.Errorf("GetMoveCount after End = %d, want 1", count)
	}
}
