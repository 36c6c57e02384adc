package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/donatelife/donatelife-api/api/mocks"
	"github.com/donatelife/donatelife-api/schema"
)

func TestAdminStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m, jwtSecret: testJWTSecret}

	m.EXPECT().GetUser("admin@x.com").Return(&schema.User{
		Email:  "admin@x.com",
		Role:   schema.RoleAdmin,
		Status: schema.AccountActive,
	}, nil).Times(1)
	m.EXPECT().AdminStats().Return(&schema.AdminStats{
		Users:    12,
		Requests: 7,
		Donors:   9,
		Funding:  3,
		Funds:    130.35,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-stats", s.requires(requirement{
		Roles: []schema.Role{schema.RoleAdmin, schema.RoleVolunteer},
	}), s.adminStats)

	req := httptest.NewRequest("GET", "/admin-stats", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken("admin@x.com"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.AdminStats
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(12), jResp.Users, "wrong user count")
	assert.Equal(t, int64(9), jResp.Donors, "wrong donor count")
	assert.Equal(t, 130.35, jResp.Funds, "wrong funds total")
}
