package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-registration-api/internal/application/ports"
	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/interface/api/rest/dto/user"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PUT(RouteUser, uc.UpdateUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		uc.fail(c, "ListUsers", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data:  user.ToResponseUsers(users),
		Count: len(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	u, err := uc.userService.GetUserByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		uc.fail(c, "GetUserByID", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToCreateRequest(req))
	if err != nil {
		uc.fail(c, "CreateUser", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), c.Param("user_id"), user.ToUpdateRequest(req))
	if err != nil {
		uc.fail(c, "UpdateUser", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	if err := uc.userService.DeleteUser(c.Request.Context(), c.Param("user_id")); err != nil {
		uc.fail(c, "DeleteUser", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// fail maps the typed domain errors to status codes; anything else is
// an unclassified store failure and stays server-side.
func (uc *UserController) fail(c *gin.Context, op string, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": vErr.Fields,
		})
		return
	}

	var cErr *domain.ConflictError
	if errors.As(err, &cErr) {
		c.JSON(http.StatusConflict, gin.H{"error": cErr.Error()})
		return
	}

	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
		return
	}

	c.JSON(
		http.StatusInternalServerError,
		gin.H{"error": "internal server error"},
	)
	uc.logger.Error(op+"() error", zap.Error(err))
}
