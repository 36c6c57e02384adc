package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/donatelife/donatelife-api/external/stripe"
	"github.com/donatelife/donatelife-api/logmodule"
	"github.com/donatelife/donatelife-api/schema"
	"github.com/donatelife/donatelife-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// External services
	stripeClient stripe.Stripe

	// JWT signing secret
	jwtSecret []byte
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	stripeClient stripe.Stripe,
	jwtSecret []byte) *Server {
	return &Server{
		mongoStore:   mongoStore,
		stripeClient: stripeClient,
		jwtSecret:    jwtSecret,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("cors.origins"),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(logmodule.Ginrus("API"))

	r.GET("/", s.root)
	r.GET("/healthz", s.healthz)

	r.POST("/jwt", s.requestJWT)

	adminOnly := s.requires(requirement{Roles: []schema.Role{schema.RoleAdmin}})

	userRoute := r.Group("/users")
	{
		userRoute.POST("", s.userRegister)
		userRoute.GET("", adminOnly, s.userList)

		// gin's tree cannot mount /users/admin/:email next to
		// /users/:email, so the two-segment GET routes share one
		// wildcard route and dispatch on the first segment
		userRoute.GET("/:email", s.requires(requirement{SelfParam: "email"}), s.userDetail)
		userRoute.GET("/:email/:targetEmail", s.userFlagDispatch)

		userRoute.PATCH("/admin/:id", adminOnly, s.userSetRole(schema.RoleAdmin))
		userRoute.PATCH("/volunteer/:id", adminOnly, s.userSetRole(schema.RoleVolunteer))
		userRoute.PATCH("/blocked/:id", adminOnly, s.userSetStatus(schema.AccountBlocked))
		userRoute.PATCH("/active/:id", adminOnly, s.userSetStatus(schema.AccountActive))

		// blog status toggles have always been mounted here, clients
		// depend on these paths
		userRoute.PATCH("/published/:id", adminOnly, s.blogSetStatus(schema.BlogPublished))
		userRoute.PATCH("/draft/:id", adminOnly, s.blogSetStatus(schema.BlogDraft))
	}

	r.GET("/donors", s.donorSearch)

	staffOnly := s.requires(requirement{Roles: []schema.Role{schema.RoleAdmin, schema.RoleVolunteer}})

	blogRoute := r.Group("/blogs")
	{
		blogRoute.POST("", staffOnly, s.blogCreate)
		blogRoute.GET("", s.blogList)
		blogRoute.GET("/:id", s.blogDetail)
	}
	r.GET("/dashboard/blogs", staffOnly, s.dashboardBlogList)

	r.GET("/location", s.locationList)

	requestRoute := r.Group("/donationRequests")
	{
		requestRoute.POST("", s.requestCreate)
		requestRoute.GET("", s.requires(requirement{SelfQuery: "email"}), s.myRequestList)
		requestRoute.GET("/:id", s.requestDetail)
		requestRoute.PATCH("/:id", s.requires(requirement{}), s.requestClaim)
		// serves PATCH /donationRequests/done/:id and /cancel/:id; the
		// first wildcard carries the action, see requestCloseDispatch
		requestRoute.PATCH("/:id/:targetID", s.requires(requirement{}), s.requestCloseDispatch)
		requestRoute.DELETE("/:id", s.requires(requirement{}), s.requestDelete)
	}
	r.GET("/pendingRequests", s.pendingRequestList)
	r.GET("/myDonationRequests", s.requires(requirement{SelfQuery: "email"}), s.myRequestList)
	r.GET("/allDonationRequests", staffOnly, s.allRequestList)
	r.PATCH("/editingRequests/:id", s.requires(requirement{}), s.requestEdit)

	r.POST("/contactUs", s.contactCreate)

	r.POST("/create-payment-intent", s.requires(requirement{}), s.createPaymentIntent)
	r.POST("/payments", s.requires(requirement{}), s.paymentCreate)
	r.GET("/payments", staffOnly, s.paymentList)

	r.GET("/admin-stats", staffOnly, s.adminStats)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "DonateLife Server Running!")
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		_ = c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
