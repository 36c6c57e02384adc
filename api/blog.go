package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/donatelife/donatelife-api/schema"
	"github.com/donatelife/donatelife-api/store"
)

// blogCreate is the staff API for drafting a new post.
func (s *Server) blogCreate(c *gin.Context) {
	var params struct {
		Title     string `json:"title" binding:"required"`
		Thumbnail string `json:"thumbnail"`
		Content   string `json:"content"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	blog, err := s.mongoStore.CreateBlog(schema.Blog{
		Title:       params.Title,
		Thumbnail:   params.Thumbnail,
		Content:     params.Content,
		AuthorEmail: c.GetString("requester"),
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": blog})
}

// dashboardBlogList is the staff view over posts in any status.
func (s *Server) dashboardBlogList(c *gin.Context) {
	status := schema.BlogStatus(c.Query("status"))
	if status != "" && status != "all" && !status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	blogs, err := s.mongoStore.ListBlogs(status)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": blogs})
}

// blogList is the public feed; only published posts are visible.
func (s *Server) blogList(c *gin.Context) {
	blogs, err := s.mongoStore.ListBlogs(schema.BlogPublished)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": blogs})
}

// blogDetail is the public detail view of one post.
func (s *Server) blogDetail(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	blog, err := s.mongoStore.GetBlog(id)
	if err != nil {
		if err == store.ErrBlogNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorBlogNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": blog})
}

// blogSetStatus builds the admin-only handler that publishes a post or
// pulls it back to draft.
func (s *Server) blogSetStatus(status schema.BlogStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c)
		if !ok {
			return
		}

		if err := s.mongoStore.UpdateBlogStatus(id, status); err != nil {
			if err == store.ErrBlogNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorBlogNotFound)
				return
			}
			shouldInterupt(err, c)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
