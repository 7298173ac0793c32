package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/tillpoint/tillpoint-api/pkg/pagination"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
	importService  *service.ImportService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService, importService *service.ImportService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, importService: importService}
}

// List handles listing catalog items with optional search
func (h *CatalogHandler) List(c *gin.Context) {
	var filter request.ItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	result, err := h.catalogService.ListItems(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Lookup handles resolving a scanned or typed code to a catalog item
func (h *CatalogHandler) Lookup(c *gin.Context) {
	item, err := h.catalogService.Lookup(c.Request.Context(), c.Param("upc"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles quick item creation with the minimal fields
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.CreateBasic(c.Request.Context(), req.UPC, req.Name, toCents(req.Price))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Upsert handles full catalog row creation or update
func (h *CatalogHandler) Upsert(c *gin.Context) {
	var req request.UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	mode := service.InsertOnly
	if req.Update {
		mode = service.UpdateOrInsert
	}

	item, err := h.catalogService.UpsertFull(c.Request.Context(), &service.UpsertItemInput{
		UPC:         req.UPC,
		Brand:       req.Brand,
		Product:     req.Product,
		Description: req.Description,
		Cost:        toCents(req.Cost),
		Price:       toCents(req.Price),
	}, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item saved successfully", item)
}

// UpdatePrice handles changing an item's selling price
func (h *CatalogHandler) UpdatePrice(c *gin.Context) {
	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.UpdatePrice(c.Request.Context(), c.Param("upc"), toCents(req.Price))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price updated successfully", item)
}

// Clear handles wiping the whole catalog
func (h *CatalogHandler) Clear(c *gin.Context) {
	if err := h.catalogService.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Import handles bulk catalog import from an uploaded CSV file
func (h *CatalogHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file upload")
		return
	}
	defer file.Close()

	mode := service.InsertOnly
	if c.Query("mode") == "update" {
		mode = service.UpdateOrInsert
	}

	result, err := h.importService.ImportCSV(c.Request.Context(), file, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import completed", result)
}
