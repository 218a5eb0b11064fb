package entity

type Patient struct {
	ID                  int64  `json:"id"`
	MedicalRecordNumber string `json:"medical_record_number"`
	Name                string `json:"name"`
	Gender              string `json:"gender"`
	BirthDate           string `json:"birth_date"`
	Address             string `json:"address"`
	Phone               string `json:"phone"`
}
