package models

type Student struct {
	ID         uint   `gorm:"column:StudentID;primaryKey;autoIncrement"`
	FirstName  string `gorm:"column:FirstName"`
	LastName   string `gorm:"column:LastName"`
	RollNumber int    `gorm:"column:RollNumber"`
}

func (Student) TableName() string {
	return "Students"
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
