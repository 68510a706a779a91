package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Post)
		jobs.GET("", handler.Search)
		jobs.GET("/mine", handler.ListMine)
		jobs.GET("/:id", handler.GetByID)
	}
}

type PostJobRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Requirements    string  `json:"requirements" binding:"required"`
	Salary          float64 `json:"salary" binding:"required,gt=0"`
	Location        string  `json:"location" binding:"required"`
	JobType         string  `json:"job_type" binding:"required"`
	ExperienceYears int     `json:"experience_years" binding:"required,gte=0"`
	Position        int     `json:"position" binding:"required,gt=0"`
	CompanyID       string  `json:"company_id" binding:"required"`
}

// Post godoc
// @Summary      Post a new job
// @Description  Creates a job under an existing company; requirements are comma-separated
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      PostJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs [post]
// @Security     CookieAuth
func (h *JobHandler) Post(c *gin.Context) {
	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	creatorID := c.GetString(string(domain.KeyUserID))

	job, err := h.jobUC.PostJob(c.Request.Context(), creatorID, domain.PostJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceYears: req.ExperienceYears,
		Position:        req.Position,
		CompanyID:       req.CompanyID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "New job created successfully", job)
}

// Search godoc
// @Summary      Search jobs
// @Description  Case-insensitive keyword match over title and description, newest first
// @Tags         jobs
// @Produce      json
// @Param        keyword  query     string  false  "Search keyword"
// @Success      200      {object}  response.Response
// @Router       /jobs [get]
// @Security     CookieAuth
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// ListMine godoc
// @Summary      List own job posts
// @Description  Jobs created by the authenticated user
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/mine [get]
// @Security     CookieAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	creatorID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListJobsByCreator(c.Request.Context(), creatorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your job posts", jobs)
}

// GetByID godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     CookieAuth
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobUC.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}
