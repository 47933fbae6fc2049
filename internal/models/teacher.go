package models

type Teacher struct {
	ID        uint   `gorm:"column:TeacherID;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:FirstName"`
	LastName  string `gorm:"column:LastName"`
	// SubjectID is nil for a teacher without an assigned subject.
	SubjectID *uint `gorm:"column:SubjectID"`
}

func (Teacher) TableName() string {
	return "Teachers"
}
