package lf

import "go.uber.org/zap"

const (
	FieldModule      = "module"
	FieldStudentID   = "student_id"
	FieldSubjectID   = "subject_id"
	FieldTeacherID   = "teacher_id"
	FieldRollNumber  = "roll_number"
	FieldMark        = "mark"
	FieldTable       = "table"
	FieldMarksMode   = "marks_mode"
	FieldDataBase    = "database"
	FieldRosterFile  = "roster_file"
	FieldArchivePath = "archive"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func StudentID(ID uint) zap.Field {
	return zap.Uint(FieldStudentID, ID)
}

func SubjectID(ID uint) zap.Field {
	return zap.Uint(FieldSubjectID, ID)
}

func TeacherID(ID uint) zap.Field {
	return zap.Uint(FieldTeacherID, ID)
}

func RollNumber(roll int) zap.Field {
	return zap.Int(FieldRollNumber, roll)
}

func Mark(value float64) zap.Field {
	return zap.Float64(FieldMark, value)
}

func Table(name string) zap.Field {
	return zap.String(FieldTable, name)
}

func MarksMode(mode string) zap.Field {
	return zap.String(FieldMarksMode, mode)
}

func DataBase(path string) zap.Field {
	return zap.String(FieldDataBase, path)
}

func RosterFile(path string) zap.Field {
	return zap.String(FieldRosterFile, path)
}

func Archive(path string) zap.Field {
	return zap.String(FieldArchivePath, path)
}
