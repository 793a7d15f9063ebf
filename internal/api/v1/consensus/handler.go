package consensus

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hopa-consensus/internal/services"
	"hopa-consensus/internal/utils"
	"hopa-consensus/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const Greeting = "Hello, world! This is the AI Consensus app."

type Handler struct {
	matches   *services.MatchService
	templates *services.TemplateService
}

func NewHandler(matches *services.MatchService, templates *services.TemplateService) *Handler {
	return &Handler{matches: matches, templates: templates}
}

// Index godoc
// @Summary Greeting
// @Tags consensus
// @Produce json
// @Success 200 {object} utils.Response
// @Router /consensus/ [get]
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse(Greeting, nil))
}

// Match godoc
// @Summary Match a consensus template
// @Description Extract scenario keywords from the requirement and return the best matching template document
// @Tags consensus
// @Produce json
// @Param require query string true "Requirement in free text"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 422 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /consensus/match [get]
func (h *Handler) Match(c *gin.Context) {
	requirement := strings.TrimSpace(c.Query("require"))
	if requirement == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No requirement provided."))
		return
	}

	result, err := h.matches.Match(c.Request.Context(), requirement)
	if err != nil {
		status, message := matchFailure(err)
		if status >= http.StatusInternalServerError {
			logger.Log.Error("consensus match failed", zap.String("require", requirement), zap.Error(err))
		}
		c.JSON(status, utils.NewErrorResponse(status, message))
		return
	}

	c.JSON(http.StatusOK, MatchResponse{
		Data:       result.Document,
		Message:    "Templates matched successfully.",
		Status:     "success",
		Keywords:   result.Keywords,
		Candidates: result.Candidates,
	})
}

func matchFailure(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmptyRequirement):
		return http.StatusBadRequest, "No requirement provided."
	case errors.Is(err, services.ErrNoKeywords):
		return http.StatusUnprocessableEntity, "No keywords extracted from the requirement."
	case errors.Is(err, services.ErrNoMatch):
		return http.StatusNotFound, "No matching templates found for the provided keywords."
	case errors.Is(err, services.ErrNoTemplateLoaded):
		return http.StatusNotFound, "No templates found for the matched keywords."
	case errors.Is(err, services.ErrCompletionFailed):
		return http.StatusBadGateway, "Keyword extraction service is unavailable."
	}
	return http.StatusInternalServerError, "Failed to match templates"
}

// ListTemplates godoc
// @Summary List consensus templates
// @Description Paginated template titles, newest first, optionally filtered by title or description
// @Tags consensus
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Substring of title or description"
// @Success 200 {object} utils.Response{data=TemplateListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /consensus/templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	templates, total, err := h.templates.List(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		logger.Log.Error("list templates failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch templates"))
		return
	}

	items := make([]TemplateListItem, 0, len(templates))
	for _, t := range templates {
		items = append(items, TemplateListItem{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", TemplateListResponse{
		Templates: items,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}))
}

// GetTemplateByTitle godoc
// @Summary Get a template document by exact title
// @Tags consensus
// @Produce json
// @Param title query string true "Template title"
// @Success 200 {object} utils.Response{data=services.TemplateDocument}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /consensus/templates/by-title [get]
func (h *Handler) GetTemplateByTitle(c *gin.Context) {
	title := c.Query("title")
	if strings.TrimSpace(title) == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Title is required"))
		return
	}

	doc, err := h.templates.Document(c.Request.Context(), title)
	h.respondDocument(c, doc, err)
}

// GetTemplate godoc
// @Summary Get a template document by id
// @Tags consensus
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response{data=services.TemplateDocument}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /consensus/templates/{id} [get]
func (h *Handler) GetTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.templates.DocumentByID(c.Request.Context(), id)
	h.respondDocument(c, doc, err)
}

func (h *Handler) respondDocument(c *gin.Context, doc *services.TemplateDocument, err error) {
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Template not found"))
			return
		}
		logger.Log.Error("export template failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load template"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", doc))
}

// BatchCreateTemplates godoc
// @Summary Ingest template documents
// @Description Store documents in order, each atomically. Stops at the first invalid document. Admin only.
// @Tags consensus
// @Accept json
// @Produce json
// @Param request body BatchCreateRequest true "Template documents"
// @Success 201 {object} utils.Response{data=BatchCreateResponse}
// @Failure 400 {object} utils.Response{data=BatchFailure}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response{data=BatchFailure}
// @Security ApiKeyAuth
// @Router /consensus/templates/batch [post]
func (h *Handler) BatchCreateTemplates(c *gin.Context) {
	var req BatchCreateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ids, err := h.templates.Ingest(c.Request.Context(), req.Templates)
	if err != nil {
		failure := BatchFailure{IDs: ids, Error: err.Error()}
		var ingestErr *services.IngestError
		if errors.As(err, &ingestErr) {
			failure.Index = ingestErr.Index
			failure.Title = ingestErr.Title
			failure.Error = ingestErr.Err.Error()
		}

		status := http.StatusInternalServerError
		if services.IsClientError(err) {
			status = http.StatusBadRequest
		} else {
			logger.Log.Error("template ingestion failed", zap.Error(err))
		}
		c.JSON(status, utils.NewResponse(status, "Template ingestion stopped", failure))
		return
	}

	logger.Log.Info("templates ingested", zap.Uints("ids", ids), zap.String("by", c.GetString("subject")))
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Templates created", BatchCreateResponse{IDs: ids}))
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Description Remove a template with all of its questions. Admin only.
// @Tags consensus
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Security ApiKeyAuth
// @Router /consensus/templates/{id} [delete]
func (h *Handler) DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.templates.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Template not found"))
			return
		}
		logger.Log.Error("delete template failed", zap.Uint("template_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete template"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template deleted", nil))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid template ID"))
		return 0, false
	}
	return uint(id), true
}
