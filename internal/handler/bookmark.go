package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/middleware"
	"github.com/lingua/api/internal/model"
	"github.com/lingua/api/internal/store"
)

type BookmarkHandler struct {
	coll    *store.Collection[model.Bookmark, *model.Bookmark]
	enforce bool
	log     logging.Logger
}

func NewBookmarkHandler(coll *store.Collection[model.Bookmark, *model.Bookmark], enforce bool, log logging.Logger) *BookmarkHandler {
	return &BookmarkHandler{coll: coll, enforce: enforce, log: log.With("collection", coll.Name())}
}

func (h *BookmarkHandler) Register(g *gin.RouterGroup) {
	g.POST("/bookmarks", h.Create)
	g.GET("/bookmarks/:userId", h.ListForUser)
}

func (h *BookmarkHandler) principal(c *gin.Context) string {
	if !h.enforce {
		return ""
	}
	if p, ok := middleware.PrincipalFrom(c); ok {
		return p.UserID
	}
	return ""
}

// Create appends a bookmark row. Bookmarking the same entry again adds another
// row rather than replacing the first.
func (h *BookmarkHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var bookmark model.Bookmark
	if err := c.ShouldBindJSON(&bookmark); err != nil {
		h.log.Warn(ctx, "invalid bookmark", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving bookmark"})
		return
	}
	bookmark.ID = ""
	if p := h.principal(c); p != "" {
		bookmark.UserID = p
	}

	err := h.coll.Create(ctx, &bookmark)
	middleware.RecordStoreOp(h.coll.Name(), "add", resultOf(err))
	if err != nil {
		h.log.Error(ctx, "save bookmark failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving bookmark"})
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) ListForUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	if p := h.principal(c); p != "" && p != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Cannot read another user's bookmarks"})
		return
	}

	bookmarks, err := h.coll.ListBy(ctx, "user_id", userID)
	middleware.RecordStoreOp(h.coll.Name(), "list", resultOf(err))
	if err != nil {
		h.log.Error(ctx, "fetch bookmarks failed", "userId", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookmarks"})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

func resultOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
