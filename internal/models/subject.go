package models

type Subject struct {
	ID   uint   `gorm:"column:SubjectID;primaryKey;autoIncrement"`
	Name string `gorm:"column:SubjectName"`
}

func (Subject) TableName() string {
	return "Subjects"
}
