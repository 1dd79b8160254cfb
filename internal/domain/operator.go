package domain

import (
	"time"
)

type OperatorRole string

const (
	RoleOperatore      OperatorRole = "Operatore"
	RoleAmministratore OperatorRole = "Amministratore"
)

// Operator e' un utente dell'ufficio housekeeping che accede al gestionale.
// Da non confondere con StaffMember, che e' il personale ai piani.
type Operator struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	Role         OperatorRole `json:"role"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	Version      int32        `json:"-"`
}
