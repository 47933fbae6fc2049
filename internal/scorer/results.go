package scorer

type StudentScore struct {
	StudentID  uint
	RollNumber int
	Name       string
	Total      float64
}

type Standings struct {
	Students []*StudentScore
}
