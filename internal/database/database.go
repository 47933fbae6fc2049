package database

import (
	"context"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"moul.io/zapgorm2"

	"github.com/bigredeye/marks/internal/models"
)

type DataBase struct {
	*gorm.DB
	path string
}

type ConstraintViolation struct {
	nested error
}

func (e *ConstraintViolation) Error() string {
	return e.nested.Error()
}

func (e *ConstraintViolation) Unwrap() error {
	return e.nested
}

func IsConstraintViolation(err error) bool {
	violation := &ConstraintViolation{}
	return errors.As(err, &violation)
}

// gorm keeps the raw driver error unless TranslateError is set.
func isConstraintViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}

func classify(err error) error {
	if err != nil && isConstraintViolation(err) {
		return &ConstraintViolation{err}
	}
	return err
}

func OpenDataBase(logger *zap.Logger, path string) (*DataBase, error) {
	zapLogger := zapgorm2.New(logger.Named("gorm"))
	zapLogger.SetAsDefault()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: zapLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open database %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrapf(err, "Failed to open database %s", path)
	}

	return &DataBase{db, path}, nil
}

func (db *DataBase) Path() string {
	return db.path
}

func (db *DataBase) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn on a transaction-bound copy of db. An error returned
// from fn rolls the transaction back.
func (db *DataBase) Transaction(ctx context.Context, fn func(tx *DataBase) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DataBase{tx, db.path})
	})
}

// FindTeacher returns nil without an error when no teacher has the given id.
func (db *DataBase) FindTeacher(ctx context.Context, id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	res := db.WithContext(ctx).Limit(1).Find(&teacher, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected < 1 {
		return nil, nil
	}
	return &teacher, nil
}

func (db *DataBase) FindSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	var subject models.Subject
	res := db.WithContext(ctx).Limit(1).Find(&subject, "SubjectName = ?", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected < 1 {
		return nil, nil
	}
	return &subject, nil
}

// ListStudents returns students in storage order.
func (db *DataBase) ListStudents(ctx context.Context) (students []models.Student, err error) {
	students = make([]models.Student, 0)
	err = db.WithContext(ctx).Find(&students).Error
	if err != nil {
		students = nil
	}
	return
}

func (db *DataBase) ListMarks(ctx context.Context, studentID, subjectID uint) (marks []models.Mark, err error) {
	marks = make([]models.Mark, 0)
	err = db.WithContext(ctx).
		Order("MarkID").
		Find(&marks, "StudentID = ? AND SubjectID = ?", studentID, subjectID).
		Error
	if err != nil {
		marks = nil
	}
	return
}

type StudentTotal struct {
	StudentID  uint
	RollNumber int
	Name       string
	Total      float64
}

// ListStudentTotals sums every mark of each student across all subjects.
// Students without marks are dropped by the inner join. Equal totals keep
// insertion order.
func (db *DataBase) ListStudentTotals(ctx context.Context) (totals []StudentTotal, err error) {
	totals = make([]StudentTotal, 0)
	err = db.WithContext(ctx).
		Table("Students").
		Select("Students.StudentID AS student_id, " +
			"Students.RollNumber AS roll_number, " +
			"Students.FirstName || ' ' || Students.LastName AS name, " +
			"COALESCE(SUM(Marks.MarksObtained), 0) AS total").
		Joins("JOIN Marks ON Students.StudentID = Marks.StudentID").
		Group("Students.StudentID").
		Order("total DESC").
		Order("Students.StudentID").
		Scan(&totals).
		Error
	if err != nil {
		totals = nil
	}
	return
}

func (db *DataBase) AddSubject(ctx context.Context, name string) (*models.Subject, error) {
	var res models.Subject
	err := db.WithContext(ctx).FirstOrCreate(&res, models.Subject{Name: name}).Error
	if err != nil {
		return nil, classify(err)
	}
	return &res, nil
}

// AddStudent creates a student or renames the one holding the same roll number.
func (db *DataBase) AddStudent(ctx context.Context, student *models.Student) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "RollNumber"}},
		DoUpdates: clause.AssignmentColumns([]string{"FirstName", "LastName"}),
	}).Create(student).Error
	return classify(err)
}

func (db *DataBase) AddTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	var res models.Teacher
	query := db.WithContext(ctx).Where("FirstName = ? AND LastName = ?", teacher.FirstName, teacher.LastName)
	if teacher.SubjectID == nil {
		query = query.Where("SubjectID IS NULL")
	} else {
		query = query.Where("SubjectID = ?", *teacher.SubjectID)
	}
	err := query.Attrs(*teacher).FirstOrCreate(&res).Error
	if err != nil {
		return nil, classify(err)
	}
	return &res, nil
}

type TableCount struct {
	Table string
	Rows  int64
}

type tabler interface {
	TableName() string
}

func (db *DataBase) CountRows(ctx context.Context) ([]TableCount, error) {
	tables := []tabler{&models.Student{}, &models.Subject{}, &models.Teacher{}, &models.Mark{}}
	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		var rows int64
		if err := db.WithContext(ctx).Model(table).Count(&rows).Error; err != nil {
			return nil, errors.Wrapf(err, "Failed to count rows of %s", table.TableName())
		}
		counts = append(counts, TableCount{table.TableName(), rows})
	}
	return counts, nil
}
