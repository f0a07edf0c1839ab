package models

import "time"

type CpuInquiry struct {
	ID        int       `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CpuModel  string    `json:"cpu_model" db:"cpu_model"`
	Quantity  int       `json:"quantity" db:"quantity"`
	RAM       string    `json:"ram" db:"ram"`
	Storage   string    `json:"storage" db:"storage"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
