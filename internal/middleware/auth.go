package middleware

import (
	"net/http"
	"strings"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
	"github.com/ebeyer/lapwise/internal/security"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Auth resolves the bearer token to the acting User and stores it in the
// request context. Requests without a valid token are rejected with 401.
func Auth(tokens *security.TokenMaker, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Authorization header"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Authorization header"})
			return
		}

		userID, err := tokens.Resolve(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Could not validate credentials"})
			return
		}
		user, err := userRepo.Get(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Could not validate credentials"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Inactive user"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the acting user set by Auth. Handlers behind the Auth
// middleware can rely on it being present.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// RequireTeacher gates routes that only teachers may call.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != model.RoleTeacher {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "The user is not a teacher"})
			return
		}
		c.Next()
	}
}

// RequireStudent gates routes that only students may call.
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != model.RoleStudent {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "The user is not a student"})
			return
		}
		c.Next()
	}
}

// RequireSuperuser gates the admin catalog routes.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "The user doesn't have enough privileges"})
			return
		}
		c.Next()
	}
}
