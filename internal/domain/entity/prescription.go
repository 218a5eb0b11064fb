package entity

import "hospital-admin/internal/domain/badge"

// Prescription is a pharmacy order (resep) written for a patient.
type Prescription struct {
	ID          int64              `json:"id"`
	Number      string             `json:"number"`
	PatientID   int64              `json:"patient_id"`
	PatientName string             `json:"patient_name"`
	DoctorID    int64              `json:"doctor_id"`
	DoctorName  string             `json:"doctor_name"`
	Status      string             `json:"status"`
	IssuedAt    string             `json:"issued_at"`
	Items       []PrescriptionItem `json:"items"`
	Badge       *badge.Badge       `json:"badge,omitempty"`
}

type PrescriptionItem struct {
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Dosage   string `json:"dosage"`
}
