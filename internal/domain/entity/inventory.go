package entity

// Item is a stocked article (barang).
type Item struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	CategoryID     int64   `json:"category_id"`
	UnitID         int64   `json:"unit_id"`
	ManufacturerID int64   `json:"manufacturer_id"`
	Price          float64 `json:"price"`
}

// Warehouse (gudang)
type Warehouse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Category (kategori)
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Manufacturer (pabrik)
type Manufacturer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Unit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
