package entity

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	IsHost       bool   `db:"is_host"`
	IsActive     bool   `db:"is_active"`
}
