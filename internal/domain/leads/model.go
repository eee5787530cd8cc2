package leads

import "time"

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQuoted    Status = "quoted"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

type Lead struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	Source    string
	Status    Status
	Notes     string
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SearchFilter narrows List results; zero values mean "any".
type SearchFilter struct {
	Status Status
	Source string
	Email  string
	Limit  int
}
