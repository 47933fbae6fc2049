package scorer

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/bigredeye/marks/internal/database"
	"github.com/bigredeye/marks/internal/models"
)

func setupTestDB(t *testing.T) *database.DataBase {
	logger := zaptest.NewLogger(t)
	db, err := database.OpenDataBase(logger, filepath.Join(t.TempDir(), "marks.db"))
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.InitSchema(context.Background(), logger); err != nil {
		t.Fatal("Failed to init schema:", err)
	}
	return db
}

func addMarks(t *testing.T, db *database.DataBase, roll int, first, last string, marks ...float64) {
	ctx := context.Background()
	student := &models.Student{FirstName: first, LastName: last, RollNumber: roll}
	if err := db.AddStudent(ctx, student); err != nil {
		t.Fatal("Failed to add student:", err)
	}

	subject, err := db.AddSubject(ctx, "Math")
	if err != nil {
		t.Fatal("Failed to add subject:", err)
	}

	for _, mark := range marks {
		err := db.AddMarkAppend(ctx, &models.Mark{StudentID: student.ID, SubjectID: subject.ID, MarksObtained: mark})
		if err != nil {
			t.Fatal("Failed to add mark:", err)
		}
	}
}

func TestCalcStandings(t *testing.T) {
	db := setupTestDB(t)
	addMarks(t, db, 3, "Carol", "C", 40, 10)
	addMarks(t, db, 1, "Alice", "A", 99.5)
	addMarks(t, db, 4, "Dave", "D")
	addMarks(t, db, 2, "Bob", "B", 25, 25)

	standings, err := NewScorer(db).CalcStandings(context.Background())
	if err != nil {
		t.Fatal("Failed to calc standings:", err)
	}

	expected := []int{1, 3, 2}
	rolls := make([]int, 0, len(standings.Students))
	for _, student := range standings.Students {
		rolls = append(rolls, student.RollNumber)
	}
	if diff := cmp.Diff(expected, rolls); diff != "" {
		t.Fatalf("Invalid order (-want +got):\n%s", diff)
	}

	if standings.Students[0].Name != "Alice A" || standings.Students[0].Total != 99.5 {
		t.Fatalf("Invalid leader: %+v", standings.Students[0])
	}
}

func TestCalcStandingsEmpty(t *testing.T) {
	db := setupTestDB(t)

	standings, err := NewScorer(db).CalcStandings(context.Background())
	if err != nil {
		t.Fatal("Failed to calc standings:", err)
	}
	if len(standings.Students) != 0 {
		t.Fatalf("Expected no students, got %d", len(standings.Students))
	}
}

func nonEmptyLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestRender(t *testing.T) {
	out := &bytes.Buffer{}
	Render(out, &Standings{Students: []*StudentScore{
		{RollNumber: 1, Name: "A B", Total: 85},
		{RollNumber: 12, Name: "Long Name", Total: 70.25},
	}})

	lines := nonEmptyLines(out.String())
	if len(lines) != 3 {
		t.Fatalf("Expected header and two rows, got %q", out.String())
	}

	header := strings.Fields(lines[0])
	if diff := cmp.Diff([]string{"Roll", "Name", "Total", "Marks"}, header); diff != "" {
		t.Fatalf("Invalid header (-want +got):\n%s", diff)
	}

	expected := [][]string{{"1", "A", "B", "85"}, {"12", "Long", "Name", "70.25"}}
	for i, row := range expected {
		if diff := cmp.Diff(row, strings.Fields(lines[i+1])); diff != "" {
			t.Fatalf("Invalid row %d (-want +got):\n%s", i, diff)
		}
	}

	nameColumn := strings.Index(lines[0], "Name")
	for _, line := range lines[1:] {
		if strings.Index(line, "A B") != nameColumn && strings.Index(line, "Long Name") != nameColumn {
			t.Fatalf("Name column is not aligned in %q", line)
		}
	}
}

func TestFormatTotal(t *testing.T) {
	for total, expected := range map[float64]string{
		85:     "85",
		85.5:   "85.5",
		0:      "0",
		199.75: "199.75",
	} {
		if got := FormatTotal(total); got != expected {
			t.Fatalf("FormatTotal(%v) = %s, expected %s", total, got, expected)
		}
	}
}
