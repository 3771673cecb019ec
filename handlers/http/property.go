package httpHandler

import (
	"net/http"
	"strconv"

	"estate-server/entities"
	"estate-server/middleware"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	useCase *usecases.PropertyUseCase
}

func NewPropertyHandler(useCase *usecases.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{useCase: useCase}
}

type createPropertyRequest struct {
	Title          string   `json:"title" binding:"required"`
	BuildingNumber string   `json:"buildingNumber"`
	City           string   `json:"city" binding:"required"`
	Country        string   `json:"country"`
	Type           string   `json:"type" binding:"required"`
	Price          *float64 `json:"price" binding:"required"`
	Latitude       *float64 `json:"latitude" binding:"required"`
	Longitude      *float64 `json:"longitude" binding:"required"`
	Image          string   `json:"image"`
}

type interestRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
}

// CreateProperty handles POST /properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "All fields are required"})
		return
	}

	property := entities.Property{
		Title:          req.Title,
		BuildingNumber: req.BuildingNumber,
		City:           req.City,
		Country:        req.Country,
		Type:           req.Type,
		Price:          *req.Price,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		Image:          req.Image,
		OwnerID:        c.GetString(middleware.CtxUserID),
	}
	if err := h.useCase.CreateProperty(&property); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": property.ID})
}

// ListProperties handles GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.useCase.ListProperties()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// SearchProperties handles GET /properties/search
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	filter := entities.PropertyFilter{
		City: c.Query("city"),
		Type: c.Query("type"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid minPrice"})
			return
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid maxPrice"})
			return
		}
		filter.MaxPrice = &max
	}

	properties, err := h.useCase.SearchProperties(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// PendingProperties handles GET /properties/pending (moderator only)
func (h *PropertyHandler) PendingProperties(c *gin.Context) {
	properties, err := h.useCase.ListPendingProperties(c.GetString(middleware.CtxUserRole))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// ApproveProperty handles PUT /properties/approve/:id (moderator only)
func (h *PropertyHandler) ApproveProperty(c *gin.Context) {
	id := c.Param("id")
	if err := h.useCase.ApproveProperty(id, c.GetString(middleware.CtxUserRole)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Approved"})
}

// ExpressInterest handles POST /properties/interest
func (h *PropertyHandler) ExpressInterest(c *gin.Context) {
	var req interestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Property ID is required"})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	userEmail := c.GetString(middleware.CtxUserEmail)
	if err := h.useCase.ExpressInterest(c.Request.Context(), userID, userEmail, req.PropertyID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Interest recorded"})
}

// ListInterests handles GET /properties/interests
func (h *PropertyHandler) ListInterests(c *gin.Context) {
	properties, err := h.useCase.InterestsOf(c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}
