package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"brasiliaimoveis/server/config"
	"brasiliaimoveis/server/internal/dashboard"
	"brasiliaimoveis/server/internal/database"
	"brasiliaimoveis/server/internal/models"
	"brasiliaimoveis/server/internal/notify"
	"brasiliaimoveis/server/internal/storage"
	"brasiliaimoveis/server/internal/validation"
)

type Handler struct {
	db         *database.Database
	store      *storage.ImageStore
	aggregator *dashboard.Aggregator
	notifier   *notify.Service
	logger     *logrus.Logger
}

func NewHandler(db *database.Database, store *storage.ImageStore, notifier *notify.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:         db,
		store:      store,
		aggregator: dashboard.NewAggregator(db, logger),
		notifier:   notifier,
		logger:     logger,
	}
}

// GetProperties lists every listing, or runs a filtered search when any
// of the filter query parameters is present.
func (h *Handler) GetProperties(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetros de busca inválidos"})
		return
	}

	var properties []models.Property
	if filter.IsEmpty() {
		properties, err = h.db.GetProperties()
	} else {
		properties, err = h.db.SearchProperties(filter)
	}
	if err != nil {
		if errors.Is(err, database.ErrInvalidBedrooms) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetros de busca inválidos"})
			return
		}
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	if properties == nil {
		properties = []models.Property{}
	}
	c.JSON(http.StatusOK, properties)
}

func parseFilter(c *gin.Context) (database.PropertyFilter, error) {
	filter := database.PropertyFilter{
		Type:     c.Query("type"),
		Region:   c.Query("region"),
		Bedrooms: c.Query("bedrooms"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = minPrice
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = maxPrice
	}
	return filter, nil
}

// GetPropertyByID returns 404 when the listing does not exist.
func (h *Handler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")

	property, err := h.db.GetPropertyByID(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Propriedade não encontrada"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetMeta serves the region and property-type options used by the
// search form selects.
func (h *Handler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions":        config.BrasiliaRegions,
		"property_types": config.PropertyTypes,
	})
}

func (h *Handler) GetContacts(c *gin.Context) {
	contacts, err := h.db.GetContacts()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if contacts == nil {
		contacts = []models.ContactLead{}
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	if err := validation.ValidateContact(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := &models.ContactLead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
	}
	if err := h.db.CreateContact(contact); err != nil {
		h.logger.WithError(err).Error("Failed to create contact")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	h.notifier.NotifyContact(contact)

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) GetFinancing(c *gin.Context) {
	leads, err := h.db.GetFinancing()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get financing leads")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if leads == nil {
		leads = []models.FinancingLead{}
	}
	c.JSON(http.StatusOK, leads)
}

func (h *Handler) CreateFinancing(c *gin.Context) {
	var req models.FinancingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	if err := validation.ValidateFinancing(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := &models.FinancingLead{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PropertyValue: req.PropertyValue,
		DownPayment:   req.DownPayment,
		TermYears:     req.TermYears,
	}
	if err := h.db.CreateFinancing(lead); err != nil {
		h.logger.WithError(err).Error("Failed to create financing lead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	h.notifier.NotifyFinancing(lead)

	c.JSON(http.StatusCreated, lead)
}

func (h *Handler) GetInsurance(c *gin.Context) {
	leads, err := h.db.GetInsurance()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get insurance leads")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if leads == nil {
		leads = []models.InsuranceLead{}
	}
	c.JSON(http.StatusOK, leads)
}

func (h *Handler) CreateInsurance(c *gin.Context) {
	var req models.InsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	if err := validation.ValidateInsurance(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := &models.InsuranceLead{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.db.CreateInsurance(lead); err != nil {
		h.logger.WithError(err).Error("Failed to create insurance lead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	h.notifier.NotifyInsurance(lead)

	c.JSON(http.StatusCreated, lead)
}
