package entity

import "hospital-admin/internal/domain/badge"

type Employee struct {
	ID       int64        `json:"id"`
	Nip      string       `json:"nip"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	Phone    string       `json:"phone"`
	Email    string       `json:"email"`
	Status   string       `json:"status"`
	Badge    *badge.Badge `json:"badge,omitempty"`
}
