package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atleti-backend/model"
	"atleti-backend/service"
)

// ArticleHandler exposes the article routes.
type ArticleHandler struct {
	svc *service.ArticleService
}

func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var input model.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, "create article", err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Get handles GET /articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	id := c.Param("id")
	article, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "get article "+id, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// List handles GET /articles.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, "list articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Update handles PATCH /articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch model.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, "update article "+id, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	article, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, "delete article "+id, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// IncrementViews handles PUT /articles/:id/views.
func (h *ArticleHandler) IncrementViews(c *gin.Context) {
	id := c.Param("id")
	views, err := h.svc.IncrementViews(c.Request.Context(), id)
	if err != nil {
		writeError(c, "increment views "+id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}

// ToggleLike handles PUT /articles/:id/like.
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	id := c.Param("id")
	likes, err := h.svc.ToggleLike(c.Request.Context(), id)
	if err != nil {
		writeError(c, "toggle like "+id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// Featured handles GET /articles/featured. No featured article is an
// expected state in the service; the HTTP surface reports it as 404.
func (h *ArticleHandler) Featured(c *gin.Context) {
	article, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		writeError(c, "featured article", err)
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no featured article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// Recent handles GET /articles/recent?limit=N.
func (h *ArticleHandler) Recent(c *gin.Context) {
	articles, err := h.svc.Recent(c.Request.Context(), limitQuery(c))
	if err != nil {
		writeError(c, "recent articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ByKeywords handles GET /articles/by-keywords?keywords=a,b&limit=N.
func (h *ArticleHandler) ByKeywords(c *gin.Context) {
	keywords := strings.Split(c.Query("keywords"), ",")
	articles, err := h.svc.ByKeywords(c.Request.Context(), keywords, limitQuery(c))
	if err != nil {
		writeError(c, "articles by keywords", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}
