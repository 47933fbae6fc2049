package roster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/bigredeye/marks/internal/database"
)

const smallSchool = `
subjects:
  - Math
students:
  - roll: 1
    first_name: A
    last_name: B
  - roll: 2
    first_name: Grace
    last_name: Hopper
teachers:
  - first_name: Ada
    last_name: Lovelace
    subject: Math
  - first_name: Alan
    last_name: Turing
    subject: " Physics "
  - first_name: Substitute
    last_name: Teacher
`

func TestRosterParsing(t *testing.T) {
	roster, err := Parse([]byte(smallSchool))
	if err != nil {
		t.Fatal("Failed to parse roster:", err)
	}

	expected := &Roster{
		Subjects: []string{"Math", "Physics"},
		Students: []Student{
			{Roll: 1, FirstName: "A", LastName: "B"},
			{Roll: 2, FirstName: "Grace", LastName: "Hopper"},
		},
		Teachers: []Teacher{
			{FirstName: "Ada", LastName: "Lovelace", Subject: "Math"},
			{FirstName: "Alan", LastName: "Turing", Subject: "Physics"},
			{FirstName: "Substitute", LastName: "Teacher"},
		},
	}

	if diff := cmp.Diff(expected, roster); diff != "" {
		t.Fatalf("Invalid roster (-want +got):\n%s", diff)
	}
}

func TestRosterUnknownField(t *testing.T) {
	_, err := Parse([]byte("pupils:\n  - roll: 1\n"))
	if err == nil {
		t.Fatal("Expected error for unknown field")
	}
}

func TestSeed(t *testing.T) {
	logger := zaptest.NewLogger(t)
	db, err := database.OpenDataBase(logger, filepath.Join(t.TempDir(), "marks.db"))
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx, logger); err != nil {
		t.Fatal("Failed to init schema:", err)
	}

	roster, err := Parse([]byte(smallSchool))
	if err != nil {
		t.Fatal("Failed to parse roster:", err)
	}

	// Seeding twice must not duplicate anything.
	for i := 0; i < 2; i++ {
		stats, err := Seed(ctx, db, logger, roster)
		if err != nil {
			t.Fatal("Failed to seed:", err)
		}
		if diff := cmp.Diff(&SeedStats{Subjects: 2, Students: 2, Teachers: 3}, stats); diff != "" {
			t.Fatalf("Invalid stats (-want +got):\n%s", diff)
		}
	}

	counts, err := db.CountRows(ctx)
	if err != nil {
		t.Fatal("Failed to count rows:", err)
	}
	expected := []database.TableCount{
		{Table: "Students", Rows: 2},
		{Table: "Subjects", Rows: 2},
		{Table: "Teachers", Rows: 3},
		{Table: "Marks", Rows: 0},
	}
	if diff := cmp.Diff(expected, counts); diff != "" {
		t.Fatalf("Invalid row counts (-want +got):\n%s", diff)
	}

	physics, err := db.FindSubjectByName(ctx, "Physics")
	if err != nil || physics == nil {
		t.Fatalf("Physics not found: %v", err)
	}
	teacher, err := db.FindTeacher(ctx, 2)
	if err != nil || teacher == nil {
		t.Fatalf("Teacher not found: %v", err)
	}
	if teacher.SubjectID == nil || *teacher.SubjectID != physics.ID {
		t.Fatalf("Invalid teacher subject: %v", teacher.SubjectID)
	}
}
