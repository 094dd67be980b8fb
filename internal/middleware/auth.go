package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/response"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
	// ContextKeyPrincipal is the Gin context key for the resolved profile.
	ContextKeyPrincipal = "principal"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(tokenStr string) (*service.Claims, error)
}

// ProfileResolver maps a verified subject to the role profile it must have.
type ProfileResolver interface {
	Resolve(ctx context.Context, email string, role model.Role) (model.Principal, error)
}

// RequireRole guards a route group for one account role. All four role
// gates are instantiations of this single middleware. The flow is: extract
// bearer token, verify it, require the credential's stored role to match,
// resolve the role profile, and attach it to the context. A verified token
// whose credential lacks a profile is a server-side integrity failure and
// surfaces as 500, not 403.
func RequireRole(parser TokenParser, resolver ProfileResolver, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearer(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := parser.ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenExpired)
				return
			}
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), claims.Subject, role)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrRoleMismatch):
				response.AbortFail(c, http.StatusForbidden, response.ErrForbiddenRole)
			case errors.Is(err, service.ErrProfileMissing):
				response.AbortFail(c, http.StatusInternalServerError, response.ErrProfileMissing)
			default:
				response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			}
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyPrincipal, principal)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetPrincipal retrieves the resolved role profile from the Gin context.
func GetPrincipal(c *gin.Context) model.Principal {
	val, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return nil
	}
	principal, ok := val.(model.Principal)
	if !ok {
		return nil
	}
	return principal
}

// GetStudent retrieves the authenticated student profile. Only valid behind
// RequireRole(RoleStudent).
func GetStudent(c *gin.Context) *model.Student {
	s, _ := GetPrincipal(c).(*model.Student)
	return s
}

// GetInstructor retrieves the authenticated instructor profile.
func GetInstructor(c *gin.Context) *model.Instructor {
	i, _ := GetPrincipal(c).(*model.Instructor)
	return i
}

// GetAnalyst retrieves the authenticated analyst profile.
func GetAnalyst(c *gin.Context) *model.Analyst {
	a, _ := GetPrincipal(c).(*model.Analyst)
	return a
}

// GetAdmin retrieves the authenticated admin profile.
func GetAdmin(c *gin.Context) *model.Admin {
	a, _ := GetPrincipal(c).(*model.Admin)
	return a
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
