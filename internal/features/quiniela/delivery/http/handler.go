package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "quiniela-tool-backend/internal/common/errors"
	"quiniela-tool-backend/internal/common/middleware"
	"quiniela-tool-backend/internal/features/quiniela/draft"
	"quiniela-tool-backend/internal/features/quiniela/models"
	"quiniela-tool-backend/internal/features/quiniela/models/dto"
	"quiniela-tool-backend/internal/features/quiniela/repository"
	quinielaservice "quiniela-tool-backend/internal/features/quiniela/service"
)

type QuinielaHandler struct {
	service quinielaservice.QuinielaService
}

func NewQuinielaHandler(service quinielaservice.QuinielaService) *QuinielaHandler {
	return &QuinielaHandler{service: service}
}

func (h *QuinielaHandler) RegisterRoutes(router *gin.RouterGroup) {
	quinielas := router.Group("/quinielas")
	{
		quinielas.POST("", h.create)
		quinielas.POST("/validate", h.validate)
		quinielas.GET("", h.listActive)
		quinielas.GET("/:id", h.getByID)
		quinielas.GET("/invite/:code", h.getByInviteCode)
		quinielas.POST("/:id/join", h.join)
		quinielas.GET("/:id/participants", h.getParticipants)
	}
}

// @Summary Create a new quiniela
// @Description Validates the submitted draft and, when acceptable, creates the quiniela and returns it together with its invitation code. On validation failure the full ordered list of field errors is returned.
// @Tags quinielas
// @Accept json
// @Produce json
// @Param creator_id query int true "Creator user ID"
// @Param input body dto.QuinielaCreateRequest true "Quiniela draft"
// @Success 201 {object} dto.QuinielaResponse
// @Failure 400 {object} dto.ValidationResultResponse "Draft validation failed"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quinielas [post]
func (h *QuinielaHandler) create(c *gin.Context) {
	var input dto.QuinielaCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	creatorID, err := strconv.ParseInt(c.Query("creator_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "creator_id must be an integer"})
		return
	}

	quiniela, err := h.service.Create(c.Request.Context(), creatorID, &input)
	if err != nil {
		var verrs draft.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, dto.ValidationResultResponse{Valid: false, Errors: verrs})
			return
		}
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to create quiniela"))
		return
	}

	c.JSON(http.StatusCreated, quiniela)
}

// @Summary Validate a quiniela draft
// @Description Dry-run validation of a partially-filled draft. Returns the ordered list of field-scoped errors without creating anything.
// @Tags quinielas
// @Accept json
// @Produce json
// @Param input body dto.QuinielaValidateRequest true "Quiniela draft"
// @Success 200 {object} dto.ValidationResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quinielas/validate [post]
func (h *QuinielaHandler) validate(c *gin.Context) {
	var input dto.QuinielaValidateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.ValidateDraft(&input))
}

// @Summary List active quinielas
// @Tags quinielas
// @Produce json
// @Success 200 {array} dto.QuinielaResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quinielas [get]
func (h *QuinielaHandler) listActive(c *gin.Context) {
	quinielas, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to list quinielas"))
		return
	}

	c.JSON(http.StatusOK, quinielas)
}

// @Summary Get quiniela by ID
// @Tags quinielas
// @Produce json
// @Param id path string true "Quiniela ID"
// @Success 200 {object} dto.QuinielaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quinielas/{id} [get]
func (h *QuinielaHandler) getByID(c *gin.Context) {
	quiniela, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendServiceError(c, c.Param("id"), err)
		return
	}

	c.JSON(http.StatusOK, quiniela)
}

// @Summary Get quiniela by invitation code
// @Tags quinielas
// @Produce json
// @Param code path string true "Invitation code"
// @Success 200 {object} dto.QuinielaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quinielas/invite/{code} [get]
func (h *QuinielaHandler) getByInviteCode(c *gin.Context) {
	quiniela, err := h.service.GetByInviteCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.sendServiceError(c, c.Param("code"), err)
		return
	}

	c.JSON(http.StatusOK, quiniela)
}

// @Summary Join a quiniela
// @Tags quinielas
// @Accept json
// @Produce json
// @Param id path string true "Quiniela ID"
// @Param input body dto.JoinRequest true "Joining user"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already joined"
// @Failure 422 {object} dto.ErrorResponse "Full or closed"
// @Router /quinielas/{id}/join [post]
func (h *QuinielaHandler) join(c *gin.Context) {
	var input dto.JoinRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.Join(c.Request.Context(), c.Param("id"), input.UserID); err != nil {
		h.sendServiceError(c, c.Param("id"), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "joined"})
}

// @Summary List quiniela participants
// @Tags quinielas
// @Produce json
// @Param id path string true "Quiniela ID"
// @Success 200 {array} int64
// @Failure 404 {object} dto.ErrorResponse
// @Router /quinielas/{id}/participants [get]
func (h *QuinielaHandler) getParticipants(c *gin.Context) {
	participants, err := h.service.Participants(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendServiceError(c, c.Param("id"), err)
		return
	}

	c.JSON(http.StatusOK, participants)
}

func (h *QuinielaHandler) sendServiceError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, repository.ErrQuinielaNotFound), errors.Is(err, repository.ErrInviteCodeNotFound):
		middleware.SendError(c, apperrors.NewQuinielaNotFoundError(id))
	case errors.Is(err, models.ErrQuinielaFull):
		middleware.SendError(c, apperrors.New(apperrors.ErrCodeQuinielaFull, err.Error()))
	case errors.Is(err, models.ErrQuinielaClosed):
		middleware.SendError(c, apperrors.New(apperrors.ErrCodeQuinielaClosed, err.Error()))
	case errors.Is(err, models.ErrAlreadyJoined):
		middleware.SendError(c, apperrors.New(apperrors.ErrCodeAlreadyJoined, err.Error()))
	default:
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error"))
	}
}
