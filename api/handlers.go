package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vkovalenko/go-doc-indexer/internal/errors"
	"github.com/vkovalenko/go-doc-indexer/services"
)

// API holds dependencies for API handlers, primarily the index manager.
type API struct {
	engine services.IndexManager
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the diagnostic API routes.
func SetupRoutes(router *gin.Engine, engine services.IndexManager) {
	apiHandler := NewAPI(engine)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.GetStatsHandler)
	router.GET("/verify", apiHandler.VerifyWordHandler)
	router.GET("/search", apiHandler.SearchHandler)
	router.POST("/rebuild", apiHandler.RebuildIndexHandler)

	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler) // Get job status by ID
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "doc-indexer",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// GetStatsHandler returns index and collection statistics.
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}

// VerifyWordHandler checks a single word against the index and reports
// coverage. Query parameters: word (required), expected_doc (optional
// document index the word is expected to appear in).
func (api *API) VerifyWordHandler(c *gin.Context) {
	word := c.Query("word")
	expectedDocParam := c.Query("expected_doc")

	if result := ValidateVerifyParams(word, expectedDocParam); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	var expectedDocIndex *int
	if expectedDocParam != "" {
		idx, _ := strconv.Atoi(expectedDocParam) // validated above
		expectedDocIndex = &idx
	}

	report, err := api.engine.VerifyWord(word, expectedDocIndex)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
			return
		}
		SendInternalError(c, "word verification", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// SearchHandler finds documents containing every stem of the query.
// Query parameter: q (required).
func (api *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if result := ValidateSearchQuery(query); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	results, err := api.engine.Search(query)
	if err != nil {
		SendSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// RebuildIndexHandler starts an asynchronous full rebuild of the inverted
// index and returns the job ID for polling.
func (api *API) RebuildIndexHandler(c *gin.Context) {
	jobID, err := api.engine.RebuildIndexAsync()
	if err != nil {
		SendJobExecutionError(c, "index rebuild", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Index rebuild started",
		"job_id":  jobID,
	})
}

// GetJobHandler handles requests to get job status by ID
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			SendJobNotFoundError(c, jobID)
			return
		}
		SendInternalError(c, "job lookup", err)
		return
	}

	c.JSON(http.StatusOK, job)
}
