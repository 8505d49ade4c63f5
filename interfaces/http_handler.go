package interfaces

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recruiting-intake/domain"
	"recruiting-intake/services"
)

type HTTPHandler struct {
	Intake   *services.IntakeService
	Results  *services.ResultsService
	Decision *services.DecisionService
	Trigger  *services.TriggerService
}

func NewHTTPHandler(router *gin.Engine, intake *services.IntakeService, results *services.ResultsService, decision *services.DecisionService, trigger *services.TriggerService) {
	h := &HTTPHandler{Intake: intake, Results: results, Decision: decision, Trigger: trigger}

	router.GET("/health", h.Health)
	router.POST("/create-job", h.CreateJob)
	router.POST("/upload-cv", h.UploadCV)
	router.POST("/trigger-analysis", h.TriggerAnalysis)
	router.GET("/results", h.ListResults)
	router.POST("/update-decision", h.UpdateDecision)
}

func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// CreateJob handles POST /create-job (form fields: title, description).
func (h *HTTPHandler) CreateJob(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	created, err := h.Intake.CreateJob(c.Request.Context(), title, description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"job_id":      created.JobID,
		"airtable_id": created.AirtableID,
	})
}

// UploadCV handles POST /upload-cv (form field job_id + file part "file").
func (h *HTTPHandler) UploadCV(c *gin.Context) {
	jobID := c.PostForm("job_id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	candidateID, err := h.Intake.SubmitCandidate(c.Request.Context(), jobID, fileHeader.Filename, fileBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"candidate_id": candidateID,
	})
}

// TriggerAnalysis handles POST /trigger-analysis (JSON body {job_id}).
func (h *HTTPHandler) TriggerAnalysis(c *gin.Context) {
	var req struct {
		JobID string `json:"job_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.Trigger.Trigger(c.Request.Context(), req.JobID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListResults handles GET /results?job_id=...&only_done=...
func (h *HTTPHandler) ListResults(c *gin.Context) {
	jobID := c.Query("job_id")
	onlyDone := c.Query("only_done") == "true"

	candidates, err := h.Results.ListResults(c.Request.Context(), jobID, onlyDone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// UpdateDecision handles POST /update-decision (JSON {candidate_id, decision}).
func (h *HTTPHandler) UpdateDecision(c *gin.Context) {
	var req struct {
		CandidateID string `json:"candidate_id"`
		Decision    string `json:"decision"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	airtableID, err := h.Decision.UpdateDecision(c.Request.Context(), req.CandidateID, req.Decision)
	if err != nil {
		// A store failure on the decision write surfaces as a plain server
		// error; historical API contract for this endpoint.
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			logrus.WithError(err).Error("decision write failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstream.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"airtable_id": airtableID,
	})
}

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		input      *domain.ClientInputError
		extraction *domain.ExtractionError
		notFound   *domain.NotFoundError
		upstream   *domain.UpstreamError
		configErr  *domain.ConfigError
	)

	switch {
	case errors.As(err, &input):
		c.JSON(http.StatusBadRequest, gin.H{"error": input.Reason})
	case errors.As(err, &extraction):
		c.JSON(http.StatusBadRequest, gin.H{"error": extraction.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &upstream):
		logrus.WithError(err).Error("upstream call failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": upstream.Error()})
	case errors.As(err, &configErr):
		logrus.WithError(err).Error("configuration missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": configErr.Error()})
	default:
		logrus.WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
