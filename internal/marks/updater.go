package marks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/marks/internal/console"
	"github.com/bigredeye/marks/internal/database"
	lf "github.com/bigredeye/marks/internal/logfield"
	"github.com/bigredeye/marks/internal/models"
)

// ErrAborted is returned when mark entry stops before the last student.
var ErrAborted = errors.New("mark entry aborted")

type Updater struct {
	db      *database.DataBaseProxy
	console *console.Console
	logger  *zap.Logger
}

func NewUpdater(db *database.DataBaseProxy, console *console.Console, logger *zap.Logger) *Updater {
	return &Updater{
		db:      db,
		console: console,
		logger:  logger.With(lf.Module("marks")),
	}
}

// Update asks for a mark of every student in the subject taught by
// teacherID. Unknown teachers are reported on the console and leave the
// database untouched. A closed input aborts the run; in transactional mode
// this rolls back every mark entered so far.
func (u *Updater) Update(ctx context.Context, teacherID uint) error {
	teacher, err := u.db.FindTeacher(ctx, teacherID)
	if err != nil {
		u.logger.Error("Failed to find teacher", lf.TeacherID(teacherID), zap.Error(err))
		return nil
	}
	if teacher == nil {
		u.console.Println("Invalid Teacher ID.")
		return nil
	}
	if teacher.SubjectID == nil {
		u.console.Println("Teacher has no subject assigned.")
		return nil
	}
	subjectID := *teacher.SubjectID

	students, err := u.db.ListStudents(ctx)
	if err != nil {
		u.logger.Error("Failed to list students", zap.Error(err))
		return nil
	}

	logger := u.logger.With(lf.TeacherID(teacherID), lf.SubjectID(subjectID), lf.MarksMode(u.db.Conf.Marks.Mode))
	logger.Debug("Start mark entry", zap.Int("num_students", len(students)))

	transactional := u.db.Conf.Marks.Transactional
	if transactional {
		err = u.db.Transaction(ctx, func(tx *database.DataBaseProxy) error {
			return u.enterMarks(ctx, tx, logger, students, subjectID)
		})
	} else {
		err = u.enterMarks(ctx, u.db, logger, students, subjectID)
	}
	if IsAborted(err) {
		logger.Warn("Mark entry aborted", zap.Bool("rolled_back", transactional))
	}
	return err
}

func (u *Updater) enterMarks(ctx context.Context, db *database.DataBaseProxy, logger *zap.Logger, students []models.Student, subjectID uint) error {
	for i := range students {
		student := &students[i]
		if err := ctx.Err(); err != nil {
			return errors.Wrap(ErrAborted, err.Error())
		}

		u.console.Printf("Roll: %d, Name: %s\n", student.RollNumber, student.FullName())
		value, err := u.promptMark()
		if err != nil {
			return err
		}

		mark := &models.Mark{
			StudentID:     student.ID,
			SubjectID:     subjectID,
			MarksObtained: value,
		}
		if err := db.AddMark(ctx, mark); err != nil {
			logger.Error("Failed to save mark",
				lf.StudentID(student.ID),
				lf.RollNumber(student.RollNumber),
				lf.Mark(value),
				zap.Bool("constraint_violation", database.IsConstraintViolation(err)),
				zap.Error(err),
			)
			u.console.Error(fmt.Sprintf("Failed to save mark: %s", err.Error()))
			continue
		}

		logger.Debug("Saved mark", lf.StudentID(student.ID), lf.Mark(value))
	}
	return nil
}

func (u *Updater) promptMark() (float64, error) {
	for {
		value, ok, err := u.console.PromptFloat("Enter marks for this student: ")
		if errors.Is(err, console.ErrClosed) {
			return 0, errors.Wrap(ErrAborted, err.Error())
		}
		if err != nil {
			return 0, err
		}
		if ok {
			return value, nil
		}
		u.console.Println("Invalid mark, try again.")
	}
}

func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
