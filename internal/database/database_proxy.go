package database

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/bigredeye/marks/internal/config"
	"github.com/bigredeye/marks/internal/models"
)

// DataBaseProxy picks the mark write strategy from the config.
type DataBaseProxy struct {
	*DataBase
	Conf *config.Config
}

func (db *DataBaseProxy) Transaction(ctx context.Context, fn func(tx *DataBaseProxy) error) error {
	return db.DataBase.Transaction(ctx, func(tx *DataBase) error {
		return fn(&DataBaseProxy{tx, db.Conf})
	})
}

func (db *DataBaseProxy) AddMark(ctx context.Context, mark *models.Mark) error {
	switch db.Conf.Marks.Mode {
	case config.MarksModeAppend:
		return db.AddMarkAppend(ctx, mark)
	case config.MarksModeReplace:
		return db.AddMarkReplace(ctx, mark)
	default:
		return errors.Errorf("Unknown marks mode %q", db.Conf.Marks.Mode)
	}
}

// AddMarkAppend issues INSERT OR REPLACE. Nothing is unique on
// (StudentID, SubjectID), so this always adds a new row.
func (db *DataBase) AddMarkAppend(ctx context.Context, mark *models.Mark) error {
	err := db.WithContext(ctx).
		Clauses(clause.Insert{Modifier: "OR REPLACE"}).
		Create(mark).
		Error
	return classify(err)
}

// AddMarkReplace drops earlier marks of the same student and subject before
// inserting. Both statements run in one transaction (a savepoint when nested),
// so a rejected mark keeps the old rows.
func (db *DataBase) AddMarkReplace(ctx context.Context, mark *models.Mark) error {
	return db.Transaction(ctx, func(tx *DataBase) error {
		err := tx.WithContext(ctx).
			Where("StudentID = ? AND SubjectID = ?", mark.StudentID, mark.SubjectID).
			Delete(&models.Mark{}).
			Error
		if err != nil {
			return err
		}
		return classify(tx.WithContext(ctx).Create(mark).Error)
	})
}
