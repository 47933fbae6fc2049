package database

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	lf "github.com/bigredeye/marks/internal/logfield"
)

type tableSchema struct {
	name string
	ddl  string
}

// Foreign keys are declared but not enforced: PRAGMA foreign_keys stays off.
var schema = []tableSchema{{
	name: "Students",
	ddl: `CREATE TABLE IF NOT EXISTS Students (
		StudentID INTEGER PRIMARY KEY AUTOINCREMENT,
		FirstName TEXT NOT NULL,
		LastName TEXT NOT NULL,
		RollNumber INTEGER UNIQUE NOT NULL
	);`,
}, {
	name: "Subjects",
	ddl: `CREATE TABLE IF NOT EXISTS Subjects (
		SubjectID INTEGER PRIMARY KEY AUTOINCREMENT,
		SubjectName TEXT NOT NULL UNIQUE
	);`,
}, {
	name: "Teachers",
	ddl: `CREATE TABLE IF NOT EXISTS Teachers (
		TeacherID INTEGER PRIMARY KEY AUTOINCREMENT,
		FirstName TEXT NOT NULL,
		LastName TEXT NOT NULL,
		SubjectID INTEGER,
		FOREIGN KEY (SubjectID) REFERENCES Subjects(SubjectID)
	);`,
}, {
	name: "Marks",
	ddl: `CREATE TABLE IF NOT EXISTS Marks (
		MarkID INTEGER PRIMARY KEY AUTOINCREMENT,
		StudentID INTEGER,
		SubjectID INTEGER,
		MarksObtained REAL CHECK(MarksObtained BETWEEN 0 AND 100),
		FOREIGN KEY (StudentID) REFERENCES Students(StudentID),
		FOREIGN KEY (SubjectID) REFERENCES Subjects(SubjectID)
	);`,
}}

// InitSchema creates the missing tables. A failed statement is logged and
// the remaining ones still run; all failures are returned together.
func (db *DataBase) InitSchema(ctx context.Context, logger *zap.Logger) error {
	var errs error
	for _, table := range schema {
		if err := db.WithContext(ctx).Exec(table.ddl).Error; err != nil {
			logger.Error("Failed to create table", lf.Table(table.name), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
