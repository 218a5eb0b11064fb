package navigation

// Item is one entry of the sidebar. Group entries have Children and usually no Path.
type Item struct {
	Title    string `json:"title"`
	Path     string `json:"path,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Children []Item `json:"children,omitempty"`
}

func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// DefaultMenu returns the hospital admin sidebar.
func DefaultMenu() []Item {
	return []Item{
		{Title: "Dashboard", Path: "/", Icon: "home"},
		{Title: "Employees", Path: "/employees", Icon: "users"},
		{Title: "Patients", Path: "/patients", Icon: "user"},
		{
			Title: "Pharmacy",
			Icon:  "pill",
			Children: []Item{
				{Title: "Prescriptions", Path: "/prescriptions"},
			},
		},
		{
			Title: "Inventory",
			Icon:  "package",
			Children: []Item{
				{Title: "Items", Path: "/items"},
				{Title: "Warehouses", Path: "/warehouses"},
				{Title: "Categories", Path: "/categories"},
				{Title: "Manufacturers", Path: "/manufacturers"},
				{Title: "Suppliers", Path: "/suppliers"},
				{Title: "Units", Path: "/units"},
				{Title: "Stocks", Path: "/stocks"},
				{Title: "Consumptions", Path: "/consumptions"},
				{Title: "Purchase Orders", Path: "/purchase-orders"},
			},
		},
		{Title: "Queue", Path: "/queue-tickets", Icon: "ticket"},
	}
}
