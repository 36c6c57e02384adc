package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donatelife/donatelife-api/schema"
	"github.com/donatelife/donatelife-api/store"
)

// userRegister is the API for self-registration. Registration is
// idempotent on email: a duplicate answers ok without inserting.
func (s *Server) userRegister(c *gin.Context) {
	logger := log.WithField("api", "userRegister")

	var params struct {
		Email      string `json:"email" binding:"required"`
		Name       string `json:"name"`
		Avatar     string `json:"avatar"`
		BloodGroup string `json:"blood_group"`
		District   string `json:"district"`
		Upazila    string `json:"upazila"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user, err := s.mongoStore.CreateUser(schema.User{
		Email:      params.Email,
		Name:       params.Name,
		Avatar:     params.Avatar,
		BloodGroup: params.BloodGroup,
		District:   params.District,
		Upazila:    params.Upazila,
		Role:       schema.RoleDonor,
		Status:     schema.AccountActive,
	})
	if err != nil {
		if err == store.ErrAccountTaken {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"created": false,
			})
			return
		}
		_ = c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"created": true,
		"result":  user,
	})
}

// userList is the admin view of every account, optionally narrowed by
// status.
func (s *Server) userList(c *gin.Context) {
	status := schema.AccountStatus(c.Query("status"))
	if status != "" && status != "all" && !status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if status == "all" {
		status = ""
	}

	users, err := s.mongoStore.ListUsers(status)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}

// userDetail is the API to query the caller's own account.
func (s *Server) userDetail(c *gin.Context) {
	user, err := s.mongoStore.GetUser(c.Param("email"))
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}

// userFlagDispatch serves GET /users/admin/:email and
// GET /users/adminVolunteer/:email; gin routes both through one
// two-segment wildcard, so the first segment picks the branch. The
// admin flag only needs authentication, the combined flags are
// self-only.
func (s *Server) userFlagDispatch(c *gin.Context) {
	switch c.Param("email") {
	case "admin":
		if !s.authorize(c, requirement{}) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"admin": s.lookupRole(c.Param("targetEmail")) == schema.RoleAdmin,
		})
	case "adminVolunteer":
		if !s.authorize(c, requirement{SelfParam: "targetEmail"}) {
			return
		}
		role := s.lookupRole(c.Param("targetEmail"))
		c.JSON(http.StatusOK, gin.H{
			"admin":     role == schema.RoleAdmin,
			"volunteer": role == schema.RoleVolunteer,
		})
	default:
		c.AbortWithStatusJSON(http.StatusNotFound, errorAccountNotFound)
	}
}

// lookupRole resolves an email to a role; unknown accounts carry no
// role at all.
func (s *Server) lookupRole(email string) schema.Role {
	user, err := s.mongoStore.GetUser(email)
	if err != nil {
		return ""
	}
	return user.Role
}

// userSetRole builds the admin-only handler that moves an account to
// the given role.
func (s *Server) userSetRole(role schema.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c)
		if !ok {
			return
		}

		if err := s.mongoStore.UpdateUserRole(id, role); err != nil {
			if err == store.ErrAccountNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
				return
			}
			shouldInterupt(err, c)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// userSetStatus builds the admin-only handler that blocks or
// reactivates an account.
func (s *Server) userSetStatus(status schema.AccountStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c)
		if !ok {
			return
		}

		if err := s.mongoStore.UpdateUserStatus(id, status); err != nil {
			if err == store.ErrAccountNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
				return
			}
			shouldInterupt(err, c)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// donorSearch is the public donor directory, a conjunction of whatever
// filters the caller provides.
func (s *Server) donorSearch(c *gin.Context) {
	donors, err := s.mongoStore.SearchDonors(store.DonorFilter{
		BloodGroup: c.Query("bloodGroup"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": donors})
}

// objectID parses the :id route parameter, answering 400 on a
// malformed value instead of letting the store throw.
func objectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return primitive.NilObjectID, false
	}
	return id, true
}
