package main

import (
	"github.com/labstack/echo/v4"

	"hospital-admin/internal/application/controller"
	"hospital-admin/internal/application/schedule"
	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/gateway/api"
	"hospital-admin/internal/domain/gateway/cache"
	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/usecase/resource"
	"hospital-admin/pkg/http"
	pkgresource "hospital-admin/pkg/resource"
)

type resourceDeps struct {
	api        *echo.Group
	httpClient *http.Client
	queryCache cache.QueryCache
	defaults   controller.ListDefaults
	warmers    map[string]schedule.Warmer
}

// register wires gateway, use case and controller for one resource. The route and the
// cache key share the resource name; the backend path comes from app.backend.resources.
func register[T any, F any](deps *resourceDeps, key cachekey.Key, title string, decorator resource.Decorator[T]) {
	name := string(key)
	path := pkgresource.GetStringOrDefault("app.backend.resources."+name, "/"+name)

	gateway := api.NewResourceGateway[T, F](name, path, deps.httpClient)
	useCase := resource.NewResourceUseCase(key, gateway, deps.queryCache, decorator)
	controller.NewResourceController(deps.api, "/"+name, title, deps.defaults, useCase).InitResourceRoutes()

	deps.warmers[name] = useCase
}

// registerResources wires the twelve admin resources and returns the stock gateway
// used by the low stock scan.
func registerResources(deps *resourceDeps) api.ResourceGateway[entity.Stock, model.StockForm] {
	register[entity.Employee, model.EmployeeForm](deps, cachekey.Employees, "Employee", resource.EmployeeBadge)
	register[entity.Patient, model.PatientForm](deps, cachekey.Patients, "Patient", nil)
	register[entity.Prescription, model.PrescriptionForm](deps, cachekey.Prescriptions, "Prescription", resource.PrescriptionBadge)
	register[entity.Item, model.ItemForm](deps, cachekey.Items, "Item", nil)
	register[entity.Warehouse, model.WarehouseForm](deps, cachekey.Warehouses, "Warehouse", nil)
	register[entity.Category, model.CategoryForm](deps, cachekey.Categories, "Category", nil)
	register[entity.Manufacturer, model.ManufacturerForm](deps, cachekey.Manufacturers, "Manufacturer", nil)
	register[entity.Supplier, model.SupplierForm](deps, cachekey.Suppliers, "Supplier", nil)
	register[entity.Unit, model.UnitForm](deps, cachekey.Units, "Unit", nil)
	register[entity.Stock, model.StockForm](deps, cachekey.Stocks, "Stock", resource.StockBadge)
	register[entity.Consumption, model.ConsumptionForm](deps, cachekey.Consumptions, "Consumption", nil)
	register[entity.PurchaseOrder, model.PurchaseOrderForm](deps, cachekey.PurchaseOrders, "Purchase order", resource.PurchaseOrderBadge)

	// the scan reads the backend directly so it never serves stale quantities
	stockPath := pkgresource.GetStringOrDefault("app.backend.resources.stocks", "/stocks")
	return api.NewResourceGateway[entity.Stock, model.StockForm](string(cachekey.Stocks), stockPath, deps.httpClient)
}
