package models

const (
	MinMark = 0.0
	MaxMark = 100.0
)

type Mark struct {
	ID            uint    `gorm:"column:MarkID;primaryKey;autoIncrement"`
	StudentID     uint    `gorm:"column:StudentID"`
	SubjectID     uint    `gorm:"column:SubjectID"`
	MarksObtained float64 `gorm:"column:MarksObtained"`
}

func (Mark) TableName() string {
	return "Marks"
}
