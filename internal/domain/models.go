package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID           int
	Username     string
	PasswordHash string
	Role         Role
	Points       int
	CreatedAt    time.Time
}

// Product prices are whole currency units; the loyalty rule
// floor(total/10) stays exact on integers.
type Product struct {
	ID    int
	Name  string
	Price int
	Cost  int
	Stock int
}

// ProductPatch is a partial update. A nil field means "leave as is";
// a pointer to zero is an explicit zero and must be applied.
type ProductPatch struct {
	Price *int
	Cost  *int
	Stock *int
}

type CartLine struct {
	ProductID int
	Qty       int
}

type Order struct {
	ID        int
	UserID    int
	Items     []CartLine
	Total     int
	CreatedAt time.Time
}

type Settings struct {
	Name   string
	Logo   string
	Banner string
}

type SettingsPatch struct {
	Name   *string
	Logo   *string
	Banner *string
}
