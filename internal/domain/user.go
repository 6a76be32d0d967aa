package domain

type UserCategory string

const (
	UserCategoryStudent UserCategory = "Student"
	UserCategoryStaff   UserCategory = "Staff"
	UserCategoryAdmin   UserCategory = "Admin"
)

type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     UserCategory `json:"category"`
	PasswordHash string       `json:"-"`
}
