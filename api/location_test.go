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

func TestLocationList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().ListLocations().Return([]schema.DistrictWithUpazilas{
		{
			District: schema.District{ID: "1", Name: "Dhaka", BnName: "ঢাকা"},
			Upazilas: []schema.Upazila{
				{ID: "10", DistrictID: "1", Name: "Dhanmondi"},
			},
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/location", s.locationList)

	req := httptest.NewRequest("GET", "/location", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result []schema.DistrictWithUpazilas `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Result, 1, "wrong result length")
	assert.Equal(t, "Dhaka", jResp.Result[0].Name, "wrong district name")
	assert.Len(t, jResp.Result[0].Upazilas, 1, "wrong upazila count")
}
