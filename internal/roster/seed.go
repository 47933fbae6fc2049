package roster

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/marks/internal/database"
	lf "github.com/bigredeye/marks/internal/logfield"
	"github.com/bigredeye/marks/internal/models"
)

type SeedStats struct {
	Subjects int
	Students int
	Teachers int
}

// Seed provisions everything listed in the roster. Existing subjects and
// teachers are reused, students are matched by roll number.
func Seed(ctx context.Context, db *database.DataBase, logger *zap.Logger, roster *Roster) (*SeedStats, error) {
	stats := &SeedStats{}
	subjects := make(map[string]uint)

	for _, name := range roster.Subjects {
		subject, err := db.AddSubject(ctx, name)
		if err != nil {
			return stats, errors.Wrapf(err, "Failed to add subject %q", name)
		}
		subjects[name] = subject.ID
		stats.Subjects++
	}

	for _, s := range roster.Students {
		student := &models.Student{FirstName: s.FirstName, LastName: s.LastName, RollNumber: s.Roll}
		if err := db.AddStudent(ctx, student); err != nil {
			return stats, errors.Wrapf(err, "Failed to add student with roll %d", s.Roll)
		}
		logger.Debug("Added student", lf.StudentID(student.ID), lf.RollNumber(student.RollNumber))
		stats.Students++
	}

	for _, t := range roster.Teachers {
		teacher := &models.Teacher{FirstName: t.FirstName, LastName: t.LastName}
		if len(t.Subject) > 0 {
			id := subjects[t.Subject]
			teacher.SubjectID = &id
		}
		added, err := db.AddTeacher(ctx, teacher)
		if err != nil {
			return stats, errors.Wrapf(err, "Failed to add teacher %s %s", t.FirstName, t.LastName)
		}
		logger.Info("Teacher ready", lf.TeacherID(added.ID), zap.String("name", t.FirstName+" "+t.LastName), zap.String("subject", t.Subject))
		stats.Teachers++
	}

	return stats, nil
}
