package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/ats"
	"resume-builder/internal/resume"
	"resume-builder/internal/session"
	"resume-builder/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/parse", h.parse)
	rg.POST("/resumes/generate", h.generate)
	rg.POST("/resumes/import", h.importResume)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.GET("/resumes/:id/ats", h.atsForStored)
	rg.POST("/resumes/ats-check", h.atsCheck)
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 10MB limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadSize {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	result, err := h.Svc.ParseUpload(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		h.fail(c, err, "failed to parse resume")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"sessionId":            result.Record.ID,
		"resume":               result.Record.Resume,
		"extractedTextPreview": result.Preview,
		"extractionMethod":     result.Method,
	})
}

func (h *Handler) generate(c *gin.Context) {
	rec, err := h.Svc.Generate(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to generate resume")
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"sessionId": rec.ID,
		"resume":    rec.Resume,
	})
}

func (h *Handler) importResume(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}

	rec, err := h.Svc.Import(c.Request.Context(), body)
	if err != nil {
		h.fail(c, err, "failed to import resume")
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"sessionId": rec.ID,
		"resume":    rec.Resume,
	})
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.Store.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list resumes")
		return
	}

	resp := make([]gin.H, 0, len(records))
	for _, rec := range records {
		resp = append(resp, gin.H{
			"sessionId": rec.ID,
			"origin":    rec.Origin,
			"fileName":  rec.FileName,
			"createdAt": rec.CreatedAt,
			"updatedAt": rec.UpdatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.Svc.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) update(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}
	src, ok := resume.DecodeSource(body)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "body is not valid resume JSON", nil)
		return
	}

	rec, err := h.Svc.Store.Update(c.Request.Context(), c.Param("id"), resume.Canonicalize(src))
	if err != nil {
		h.fail(c, err, "failed to update resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) atsForStored(c *gin.Context) {
	rec, err := h.Svc.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch resume")
		return
	}
	respond.JSON(c, http.StatusOK, ats.Check(rec.Resume))
}

func (h *Handler) atsCheck(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}
	src, ok := resume.DecodeSource(body)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "body is not valid resume JSON", nil)
		return
	}
	respond.JSON(c, http.StatusOK, ats.Check(resume.Canonicalize(src)))
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, session.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "upstream_error", err.Error(), nil)
	case errors.Is(err, ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func toResponse(rec session.Record) gin.H {
	return gin.H{
		"sessionId": rec.ID,
		"origin":    rec.Origin,
		"fileName":  rec.FileName,
		"resume":    rec.Resume,
		"createdAt": rec.CreatedAt,
		"updatedAt": rec.UpdatedAt,
	}
}
