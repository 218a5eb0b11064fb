package model

type EmployeeForm struct {
	Nip      string `json:"nip" validate:"required,max=32"`
	Name     string `json:"name" validate:"required,max=120"`
	Position string `json:"position" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Status   string `json:"status" validate:"required,oneof=active leave inactive"`
}

type PatientForm struct {
	MedicalRecordNumber string `json:"medical_record_number" validate:"required"`
	Name                string `json:"name" validate:"required,max=120"`
	Gender              string `json:"gender" validate:"required,oneof=male female"`
	BirthDate           string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Address             string `json:"address"`
	Phone               string `json:"phone" validate:"omitempty,max=20"`
}

type PrescriptionForm struct {
	PatientID int64                  `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int64                  `json:"doctor_id" validate:"required,gt=0"`
	Status    string                 `json:"status" validate:"omitempty,oneof=pending processed dispensed cancelled"`
	Items     []PrescriptionItemForm `json:"items" validate:"required,min=1,dive"`
}

type PrescriptionItemForm struct {
	ItemID   int64  `json:"item_id" validate:"required,gt=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Dosage   string `json:"dosage" validate:"required"`
}

type ItemForm struct {
	Code           string  `json:"code" validate:"required,max=32"`
	Name           string  `json:"name" validate:"required,max=120"`
	CategoryID     int64   `json:"category_id" validate:"required,gt=0"`
	UnitID         int64   `json:"unit_id" validate:"required,gt=0"`
	ManufacturerID int64   `json:"manufacturer_id" validate:"omitempty,gt=0"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type WarehouseForm struct {
	Name     string `json:"name" validate:"required,max=80"`
	Location string `json:"location"`
}

type CategoryForm struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description"`
}

type ManufacturerForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Country string `json:"country"`
}

type SupplierForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

type UnitForm struct {
	Name   string `json:"name" validate:"required,max=40"`
	Symbol string `json:"symbol" validate:"required,max=10"`
}

type StockForm struct {
	ItemID          int64  `json:"item_id" validate:"required,gt=0"`
	WarehouseID     int64  `json:"warehouse_id" validate:"required,gt=0"`
	Quantity        int    `json:"quantity" validate:"gte=0"`
	MinimumQuantity int    `json:"minimum_quantity" validate:"gte=0"`
	ExpiredAt       string `json:"expired_at" validate:"omitempty,datetime=2006-01-02"`
}

type ConsumptionForm struct {
	ItemID      int64  `json:"item_id" validate:"required,gt=0"`
	WarehouseID int64  `json:"warehouse_id" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Department  string `json:"department" validate:"required"`
	ConsumedAt  string `json:"consumed_at" validate:"required,datetime=2006-01-02"`
	Note        string `json:"note" validate:"max=255"`
}

type PurchaseOrderForm struct {
	SupplierID int64                   `json:"supplier_id" validate:"required,gt=0"`
	Status     string                  `json:"status" validate:"omitempty,oneof=draft ordered partial received cancelled"`
	OrderedAt  string                  `json:"ordered_at" validate:"required,datetime=2006-01-02"`
	Lines      []PurchaseOrderLineForm `json:"lines" validate:"required,min=1,dive"`
}

type PurchaseOrderLineForm struct {
	ItemID    int64   `json:"item_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// QueueTicketForm is the request to preview or print a queue ticket.
type QueueTicketForm struct {
	Number      string `json:"number" validate:"required,max=10"`
	Service     string `json:"service" validate:"required"`
	PatientName string `json:"patientName"`
	Counter     string `json:"counter"`
	Copies      int    `json:"copies" validate:"omitempty,min=1,max=5"`
}
