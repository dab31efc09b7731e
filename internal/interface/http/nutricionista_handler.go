package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nutricionistas-api/internal/application"
	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
	"github.com/oksasatya/nutricionistas-api/pkg/response"
	"github.com/oksasatya/nutricionistas-api/pkg/validation"
)

// ResourcePath is where nutricionistas live; Location headers point below it.
const ResourcePath = "/nutricionistas"

type NutricionistaHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
	// BaseURL prefixes Location headers. Empty means scheme://host of the request.
	BaseURL string
	// ErrorEnvelope answers validation failures with the APIResponse envelope
	// instead of a bare JSON array of messages.
	ErrorEnvelope bool
}

func NewNutricionistaHandler(svc *application.Service, logger *logrus.Logger, baseURL string, errorEnvelope bool) *NutricionistaHandler {
	return &NutricionistaHandler{Svc: svc, Logger: logger, BaseURL: baseURL, ErrorEnvelope: errorEnvelope}
}

type nutricionistaResponse struct {
	ID             int64        `json:"id"`
	Nome           string       `json:"nome"`
	CPF            string       `json:"cpf"`
	DataNascimento helpers.Date `json:"dataNascimento"`
	Email          string       `json:"email"`
	CRN            string       `json:"crn"`
	CreatedAt      time.Time    `json:"createdAt"`
}

func toResponse(n *entity.Nutricionista) nutricionistaResponse {
	return nutricionistaResponse{
		ID:             n.ID,
		Nome:           n.Nome,
		CPF:            n.CPF,
		DataNascimento: helpers.Date{Time: n.DataNascimento},
		Email:          n.Email,
		CRN:            n.CRN,
		CreatedAt:      n.CreatedAt,
	}
}

// Cadastrar POST /nutricionistas
func (h *NutricionistaHandler) Cadastrar(c *gin.Context) {
	var req application.NutricionistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		v := validation.DecodeViolation(err, application.FieldDataNascimento)
		h.validationFailed(c, validation.NewValidationError(application.Formatter, []validation.Violation{v}))
		return
	}

	n, err := h.Svc.Cadastrar(c.Request.Context(), req)
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			h.validationFailed(c, verr)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create nutricionista", nil)
		return
	}

	c.Header("Location", h.location(c, n.ID))
	c.Status(http.StatusCreated)
}

// Buscar GET /nutricionistas/:id
func (h *NutricionistaHandler) Buscar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	n, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNutricionistaNotFound) {
			response.Error[any](c, http.StatusNotFound, "nutricionista not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("nutricionista_id", id).Error("get nutricionista failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load nutricionista", nil)
		return
	}
	response.Success(c, http.StatusOK, toResponse(n), "nutricionista", nil)
}

func (h *NutricionistaHandler) validationFailed(c *gin.Context, verr *validation.ValidationError) {
	if h.Logger != nil {
		h.Logger.WithField("request_id", c.GetString("request_id")).
			WithField("violations", len(verr.Mensagens)).
			Debug("registration rejected")
	}
	if h.ErrorEnvelope {
		response.Error[any](c, http.StatusBadRequest, "validation failed", verr)
		return
	}
	c.JSON(http.StatusBadRequest, verr.Mensagens)
}

func (h *NutricionistaHandler) location(c *gin.Context, id int64) string {
	base := h.BaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + ResourcePath + "/" + strconv.FormatInt(id, 10)
}
