package api

import (
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/donatelife/donatelife-api/schema"
	"github.com/donatelife/donatelife-api/store"
)

// requirement declares what a route demands from its caller. Every
// requirement implies a valid bearer token; SelfParam/SelfQuery name a
// path or query parameter whose value must match the token's email;
// Roles lists the acceptable roles of the caller's user record.
type requirement struct {
	SelfParam string
	SelfQuery string
	Roles     []schema.Role
}

// requestJWT issues a signed token for a caller-supplied identity. The
// identity is assumed to be authenticated upstream; this service only
// binds it into a time-limited credential.
func (s *Server) requestJWT(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}

	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if req.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	expire := viper.GetInt("jwt.expire")
	if expire == 0 {
		expire = 1
	}

	now := time.Now()
	exp := now.Add(time.Duration(expire) * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   req.Email,
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     tokenString,
		"expire_in": exp.Sub(now).Seconds(),
	})
}

// requires is the single authorization evaluator: every protected route
// declares its requirement and this middleware enforces it in a fixed
// order (authenticate, identity match, role check).
func (s *Server) requires(req requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authorize(c, req) {
			return
		}
		c.Next()
	}
}

// authorize evaluates a requirement against the current request. It
// aborts with the right status on failure and reports whether the
// request may proceed. On success the verified email is stored under
// "requester" in the gin context. Exposed separately from requires so
// dispatch handlers can apply branch-specific requirements.
func (s *Server) authorize(c *gin.Context, req requirement) bool {
	claims := &jwt.StandardClaims{}
	token, err := jwtrequest.ParseFromRequest(c.Request,
		jwtrequest.AuthorizationHeaderExtractor,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return s.jwtSecret, nil
		},
		jwtrequest.WithClaims(claims),
	)

	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorAuthorizationRequired, err)
		return false
	}

	if !token.Valid || claims.Subject == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
		return false
	}

	requester := claims.Subject
	c.Set("requester", requester)

	if req.SelfParam != "" && c.Param(req.SelfParam) != requester {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return false
	}

	if req.SelfQuery != "" {
		if email := c.Query(req.SelfQuery); email != "" && email != requester {
			abortWithEncoding(c, http.StatusForbidden, errorForbidden)
			return false
		}
	}

	if len(req.Roles) > 0 && !s.hasRole(c, requester, req.Roles) {
		return false
	}

	return true
}

// hasRole resolves the caller's user record and checks it against the
// accepted role set. A missing or unknown user resolves to "not
// authorized", never a crash; blocked accounts fail regardless of role.
func (s *Server) hasRole(c *gin.Context, requester string, roles []schema.Role) bool {
	user, err := s.mongoStore.GetUser(requester)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusForbidden, errorForbidden)
			return false
		}
		return !shouldInterupt(err, c)
	}

	if user.Status == schema.AccountBlocked {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return false
	}

	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}

	abortWithEncoding(c, http.StatusForbidden, errorForbidden)
	return false
}
