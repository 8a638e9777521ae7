package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// Role is the closed set of workflow roles. Every layer (gate, policy,
// entities) shares this one type; there is no second naming scheme.
type Role string

const (
	RoleOutlet       Role = "Outlet"
	RoleSalesRep     Role = "Sales Rep"
	RoleFGSWarehouse Role = "FGS Warehouse"
	RoleQCLab        Role = "QC Lab"
	RoleFinance      Role = "Finance"
	RoleAdmin        Role = "Admin"
	RoleEXCO         Role = "EXCO"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOutlet, RoleSalesRep, RoleFGSWarehouse, RoleQCLab, RoleFinance, RoleAdmin, RoleEXCO:
		return true
	}
	return false
}

// User accounts are provisioned out of band; the service only reads them.
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	Phone        string    `gorm:"size:32" json:"phone"`
	Department   string    `gorm:"size:128" json:"department"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role         Role      `gorm:"size:32;not null" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
