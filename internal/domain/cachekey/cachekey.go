package cachekey

import (
	"fmt"
	"sort"
	"strings"
)

// Key names the cached lists and details of one resource.
type Key string

const (
	Employees      Key = "employees"
	Patients       Key = "patients"
	Prescriptions  Key = "prescriptions"
	Items          Key = "items"
	Warehouses     Key = "warehouses"
	Categories     Key = "categories"
	Manufacturers  Key = "manufacturers"
	Suppliers      Key = "suppliers"
	Units          Key = "units"
	Stocks         Key = "stocks"
	Consumptions   Key = "consumptions"
	PurchaseOrders Key = "purchase-orders"
)

// All lists every known key.
func All() []Key {
	return []Key{
		Employees, Patients, Prescriptions, Items, Warehouses, Categories,
		Manufacturers, Suppliers, Units, Stocks, Consumptions, PurchaseOrders,
	}
}

// Parse returns the Key named s.
func Parse(s string) (Key, error) {
	for _, k := range All() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown cache key %q", s)
}

// Op is the kind of mutation performed on a resource.
type Op string

const (
	Create Op = "create"
	Update Op = "update"
	Delete Op = "delete"
)

// Mutation is a write on one resource.
type Mutation struct {
	Key Key
	Op  Op
}

func (m Mutation) String() string {
	return string(m.Key) + ":" + string(m.Op)
}

// Table lists, for each mutation, the other keys whose cached reads become stale.
// The mutated key itself is always stale and is not repeated here.
var Table = map[Mutation][]Key{
	// prescriptions embed the patient and the dispensed items
	{Prescriptions, Create}: {Patients, Stocks, Consumptions},
	{Prescriptions, Update}: {Patients, Stocks, Consumptions},
	{Prescriptions, Delete}: {Patients, Stocks, Consumptions},

	// items are shown by name inside stock, consumption and purchase order rows
	{Items, Update}: {Stocks, Consumptions, PurchaseOrders, Prescriptions},
	{Items, Delete}: {Stocks, Consumptions, PurchaseOrders, Prescriptions},

	{Warehouses, Update}:    {Stocks, Items},
	{Warehouses, Delete}:    {Stocks, Items},
	{Categories, Update}:    {Items},
	{Categories, Delete}:    {Items},
	{Manufacturers, Update}: {Items},
	{Manufacturers, Delete}: {Items},
	{Units, Update}:         {Items, Stocks},
	{Units, Delete}:         {Items, Stocks},
	{Suppliers, Update}:     {PurchaseOrders},
	{Suppliers, Delete}:     {PurchaseOrders},

	// a consumption draws stock down
	{Consumptions, Create}: {Stocks},
	{Consumptions, Update}: {Stocks},
	{Consumptions, Delete}: {Stocks},

	// receiving a purchase order adds stock
	{PurchaseOrders, Create}: {Stocks},
	{PurchaseOrders, Update}: {Stocks},
	{PurchaseOrders, Delete}: {Stocks},

	{Employees, Update}: {Prescriptions},
	{Employees, Delete}: {Prescriptions},
	{Patients, Update}:  {Prescriptions},
	{Patients, Delete}:  {Prescriptions},
}

// Affected returns the keys invalidated by m, including m.Key, deduplicated and sorted.
func Affected(m Mutation) []Key {
	seen := map[Key]struct{}{m.Key: {}}
	for _, k := range Table[m] {
		seen[k] = struct{}{}
	}

	keys := make([]Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Pattern matches every cache entry stored below key.
func Pattern(key Key) string {
	return string(key) + "::*"
}

// ListEntry is the cache entry name of a list query.
func ListEntry(params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+params[name])
	}
	return "list:" + strings.Join(parts, "&")
}

// DetailEntry is the cache entry name of a single record.
func DetailEntry(id string) string {
	return "detail:" + id
}
