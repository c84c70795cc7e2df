package domain

// Member is a club roster entry. Members are managed by plain CRUD and are
// unrelated to login users.
type Member struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	Age  int    `json:"age"`
	Type string `json:"type"`
}
