package v1

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// sessionCookieName must match what the auth middleware reads.
const sessionCookieName = "token"

type UserHandler struct {
	userUC     domain.UserUsecase
	sessionTTL time.Duration
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, userUC domain.UserUsecase, cfg *config.Config) {
	handler := &UserHandler{
		userUC:     userUC,
		sessionTTL: time.Duration(cfg.SessionTTLHours) * time.Hour,
	}

	// Public Routes
	publicUsers := public.Group("/users")
	{
		publicUsers.POST("/register", handler.Register)
		publicUsers.POST("/login", handler.Login)
		publicUsers.POST("/logout", handler.Logout)
	}

	// Protected Routes
	protectedUsers := protected.Group("/users")
	{
		protectedUsers.GET("/me", handler.Me)
		protectedUsers.PATCH("/profile", handler.UpdateProfile)
	}
}

type RegisterRequest struct {
	FullName      string `form:"fullname" binding:"required,valid_name"`
	Email         string `form:"email" binding:"required,email"`
	PhoneNumber   string `form:"phone_number" binding:"required,valid_phone"`
	Password      string `form:"password" binding:"required,min=6"`
	AadhaarNumber string `form:"aadhaar_number" binding:"required,aadhaar"`
	PANNumber     string `form:"pan_number" binding:"required,pan"`
	Role          string `form:"role" binding:"required,oneof=jobseeker recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=jobseeker recruiter"`
}

type UpdateProfileRequest struct {
	FullName      string `form:"fullname" binding:"omitempty,valid_name"`
	Email         string `form:"email" binding:"omitempty,email"`
	PhoneNumber   string `form:"phone_number" binding:"omitempty,valid_phone"`
	AadhaarNumber string `form:"aadhaar_number" binding:"omitempty,aadhaar"`
	PANNumber     string `form:"pan_number" binding:"omitempty,pan"`
	Bio           string `form:"bio"`
	Skills        string `form:"skills"`
}

// bindError converts binding failures into a single client-facing 400.
func bindError(err error) *apperror.AppError {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}

// formFile reads an optional multipart file into memory. The caller decides
// whether a missing file is an error.
func formFile(c *gin.Context, field string) (*domain.FileUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &domain.FileUpload{OriginalName: fileHeader.Filename, Data: data}, nil
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with a mandatory profile photo
// @Tags         users
// @Accept       mpfd
// @Produce      json
// @Param        fullname        formData  string  true  "Full name"
// @Param        email           formData  string  true  "Email"
// @Param        phone_number    formData  string  true  "Phone number"
// @Param        password        formData  string  true  "Password (min 6 chars)"
// @Param        aadhaar_number  formData  string  true  "Aadhaar number"
// @Param        pan_number      formData  string  true  "PAN number"
// @Param        role            formData  string  true  "jobseeker or recruiter"
// @Param        photo           formData  file    true  "Profile photo"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	photo, err := formFile(c, "photo")
	if err != nil {
		c.Error(apperror.BadRequest("Profile photo is required"))
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), domain.RegisterInput{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Password:      req.Password,
		AadhaarNumber: req.AadhaarNumber,
		PANNumber:     req.PANNumber,
		Role:          domain.Role(req.Role),
		Photo:         photo,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", user)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email, password and role; sets the session cookie
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	token, user, err := h.userUC.Login(c.Request.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		c.Error(err)
		return
	}

	// Session rides in an HTTP-only cookie; SameSite=Strict is the CSRF guard.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, "Welcome back "+user.FullName, user)
}

// Logout godoc
// @Summary      User Logout
// @Description  Clears the session cookie
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated user's sanitized view
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/me [get]
// @Security     CookieAuth
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.userUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Partially updates the authenticated user's profile; absent fields stay untouched
// @Tags         users
// @Accept       mpfd
// @Produce      json
// @Param        fullname      formData  string  false  "Full name"
// @Param        email         formData  string  false  "Email"
// @Param        phone_number  formData  string  false  "Phone number"
// @Param        bio           formData  string  false  "Bio"
// @Param        skills        formData  string  false  "Comma-separated skills"
// @Param        resume        formData  file    false  "Resume file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /users/profile [patch]
// @Security     CookieAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	resume, err := formFile(c, "resume")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.Error(apperror.BadRequest("Could not read resume file"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.userUC.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdateInput{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		AadhaarNumber: req.AadhaarNumber,
		PANNumber:     req.PANNumber,
		Bio:           req.Bio,
		Skills:        req.Skills,
		Resume:        resume,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", user)
}
