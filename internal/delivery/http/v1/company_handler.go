package v1

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.POST("", handler.Register)
		companies.GET("", handler.ListOwned)
		companies.GET("/:id", handler.GetByID)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}

type RegisterCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website" binding:"omitempty,url"`
	Location    string `form:"location"`
}

// Register godoc
// @Summary      Register a company
// @Description  Creates a company owned by the authenticated user
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      RegisterCompanyRequest  true  "Company name"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /companies [post]
// @Security     CookieAuth
func (h *CompanyHandler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))

	company, err := h.companyUC.RegisterCompany(c.Request.Context(), ownerID, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company registered successfully", company)
}

// ListOwned godoc
// @Summary      List own companies
// @Description  Companies owned by the authenticated user, newest first
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies [get]
// @Security     CookieAuth
func (h *CompanyHandler) ListOwned(c *gin.Context) {
	ownerID := c.GetString(string(domain.KeyUserID))

	companies, err := h.companyUC.ListOwnedCompanies(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company list", companies)
}

// GetByID godoc
// @Summary      Get company details
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
// @Security     CookieAuth
func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companyUC.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details", company)
}

// Update godoc
// @Summary      Update a company
// @Description  Partially updates company fields; an optional logo is uploaded first
// @Tags         companies
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true   "Company ID"
// @Param        name         formData  string  false  "Name"
// @Param        description  formData  string  false  "Description"
// @Param        website      formData  string  false  "Website URL"
// @Param        location     formData  string  false  "Location"
// @Param        logo         formData  file    false  "Logo image"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     CookieAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	logo, err := formFile(c, "logo")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.Error(apperror.BadRequest("Could not read logo file"))
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), c.Param("id"), domain.CompanyUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        logo,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company information updated", company)
}

// Delete godoc
// @Summary      Delete a company
// @Description  Removes the company and every job posted under it
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
// @Security     CookieAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyUC.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted successfully", nil)
}
