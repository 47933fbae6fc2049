package scorer

import (
	"context"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/bigredeye/marks/internal/database"
)

type Scorer struct {
	db *database.DataBase
}

func NewScorer(db *database.DataBase) *Scorer {
	return &Scorer{db}
}

// CalcStandings ranks students by the sum of all their marks. Students with
// equal totals keep insertion order.
func (s Scorer) CalcStandings(ctx context.Context) (*Standings, error) {
	totals, err := s.db.ListStudentTotals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to calc student totals")
	}

	scores := make([]*StudentScore, len(totals))
	for i, total := range totals {
		scores[i] = &StudentScore{
			StudentID:  total.StudentID,
			RollNumber: total.RollNumber,
			Name:       total.Name,
			Total:      total.Total,
		}
	}

	return &Standings{scores}, nil
}

func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// Render writes a left aligned Roll / Name / Total Marks table.
func Render(w io.Writer, standings *Standings) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.SetHeader([]string{"Roll", "Name", "Total Marks"})

	for _, student := range standings.Students {
		table.Append([]string{
			strconv.Itoa(student.RollNumber),
			student.Name,
			FormatTotal(student.Total),
		})
	}

	table.Render()
}
