package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/barbapp/booking-api/internal/audit"
	"github.com/barbapp/booking-api/internal/config"
	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/httpresp"
	"github.com/barbapp/booking-api/internal/models"
	ucUser "github.com/barbapp/booking-api/internal/usecase/user"
)

type UserHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher

	createUC *ucUser.CreateUser
	authUC   *ucUser.AuthenticateUser
	updateUC *ucUser.UpdateUser
}

func NewUserHandler(
	db *gorm.DB,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
	createUC *ucUser.CreateUser,
	authUC *ucUser.AuthenticateUser,
	updateUC *ucUser.UpdateUser,
) *UserHandler {
	return &UserHandler{
		db:       db,
		config:   cfg,
		audit:    auditDispatcher,
		createUC: createUC,
		authUC:   authUC,
		updateUC: updateUC,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Role        string `json:"role"`
	ProfileInfo string `json:"profile_info"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ProfileInfo string `json:"profile_info"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		slog.Error("listing users", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if len(users) == 0 {
		httperr.NotFound(c, "No User Found")
		return
	}

	httpresp.OK(c, users)
}

func (h *UserHandler) GetOne(c *gin.Context) {
	id := c.Param("id")

	var u models.User
	if err := h.db.Where("id = ?", id).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User not found")
			return
		}
		slog.Error("fetching user", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Cannot create user")
		return
	}

	u, err := h.createUC.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		Role:        req.Role,
		ProfileInfo: req.ProfileInfo,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeDuplicateCredential) {
			httperr.BadRequest(c, "Name, username, or email is already registered. Please use another email or log in with your account.")
			return
		}
		slog.Error("creating user", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.Created(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Can Not update Users")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// per the route contract, PUT failures other than not-found are 500
		httperr.Internal(c, "Internal Server Error")
		return
	}

	u, err := h.updateUC.Execute(c.Request.Context(), id, ucUser.UpdateUserInput{
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		Role:        req.Role,
		ProfileInfo: req.ProfileInfo,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, "Can Not update Users")
			return
		}
		slog.Error("updating user", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var u models.User
	if err := h.db.Where("id = ?", id).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Can Not Delete User")
			return
		}
		slog.Error("fetching user for delete", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if err := h.db.Delete(&u).Error; err != nil {
		slog.Error("deleting user", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &u.ID,
	})

	httpresp.OK(c, u)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "Invalid username or password")
		return
	}

	u, err := h.authUC.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			httperr.Unauthorized(c, "Invalid username or password")
			return
		}
		slog.Error("logging in", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		slog.Error("generating token", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"payload": u,
		"token":   token,
	})
}

// --------- JWT ---------

func (h *UserHandler) generateToken(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"role":     u.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
