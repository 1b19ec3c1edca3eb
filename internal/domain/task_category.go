package domain

// TaskCategory category of coursework tasks a defence session belongs to
type TaskCategory struct {
	ID   int64
	Name string
}
