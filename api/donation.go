package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donatelife/donatelife-api/schema"
	"github.com/donatelife/donatelife-api/store"
)

// requestCreate is the public API for asking for a blood donation. The
// record always starts pending, whatever status the caller submits.
func (s *Server) requestCreate(c *gin.Context) {
	logger := log.WithField("api", "requestCreate")

	var params schema.DonationRequest
	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.RequesterEmail == "" || params.BloodGroup == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.mongoStore.CreateRequest(params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// pendingRequestList is the public board of open requests.
func (s *Server) pendingRequestList(c *gin.Context) {
	requests, err := s.mongoStore.ListRequests(store.RequestFilter{
		Status: schema.RequestPending,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// myRequestList returns the caller's own requests, optionally narrowed
// by status. The email query parameter is identity-checked by the
// route's requirement; an absent parameter defaults to the caller.
func (s *Server) myRequestList(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("requester")
	}

	status := schema.RequestStatus(c.Query("status"))
	if status != "" && status != "all" && !status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.mongoStore.ListRequests(store.RequestFilter{
		RequesterEmail: email,
		Status:         status,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// allRequestList is the staff view over every request.
func (s *Server) allRequestList(c *gin.Context) {
	status := schema.RequestStatus(c.Query("status"))
	if status != "" && status != "all" && !status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.mongoStore.ListRequests(store.RequestFilter{
		Status: status,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// requestDetail is the public detail view of one request.
func (s *Server) requestDetail(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	req, err := s.mongoStore.GetRequest(id)
	if err != nil {
		abortWithRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// requestClaim is the API for a donor to take a pending request,
// moving it to inprogress with the donor identity attached. The donor
// email always comes from the verified token, never the body.
func (s *Server) requestClaim(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	var params struct {
		DonorName string `json:"donor_name"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	donorEmail := c.GetString("requester")
	donorName := params.DonorName
	if donorName == "" {
		donorName = donorEmail
	}

	req, err := s.mongoStore.ClaimRequest(id, donorName, donorEmail)
	if err != nil {
		abortWithRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// requestCloseDispatch serves PATCH /donationRequests/done/:id and
// PATCH /donationRequests/cancel/:id; the route wildcard named "id"
// carries the action and "targetID" the request id.
func (s *Server) requestCloseDispatch(c *gin.Context) {
	var next schema.RequestStatus
	switch c.Param("id") {
	case "done":
		next = schema.RequestDone
	case "cancel":
		next = schema.RequestCancelled
	default:
		c.AbortWithStatusJSON(http.StatusNotFound, errorRequestNotFound)
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("targetID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return
	}

	if err := s.mongoStore.CloseRequest(id, c.GetString("requester"), next); err != nil {
		abortWithRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestEdit replaces the editable fields of the caller's own pending
// request.
func (s *Server) requestEdit(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	var params schema.RequestEdit
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.mongoStore.EditRequest(id, c.GetString("requester"), params); err != nil {
		abortWithRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestDelete removes a request on behalf of its requester or its
// claimed donor.
func (s *Server) requestDelete(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteRequest(id, c.GetString("requester")); err != nil {
		abortWithRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// abortWithRequestError maps lifecycle errors from the store onto the
// HTTP taxonomy: unknown record 404, illegal or lost transition 409,
// identity mismatch 403, anything else 500.
func abortWithRequestError(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
	case store.ErrInvalidTransition:
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
	case store.ErrConflictingTransition:
		abortWithEncoding(c, http.StatusConflict, errorConflictingTransition)
	case store.ErrNotAllowed:
		abortWithEncoding(c, http.StatusForbidden, errorNotAllowed)
	default:
		_ = c.Error(err)
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	}
}
