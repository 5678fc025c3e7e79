package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/middleware"
	"github.com/lingua/api/internal/model"
	"github.com/lingua/api/internal/store"
)

// CollectionConfig describes how one collection is exposed over HTTP.
type CollectionConfig struct {
	// Label starts the status strings: "<Label> Fetched", "<Label> Not Found".
	Label string
	// Noun ends the error strings: "Error with get <Noun>", "All <Noun> cleared".
	Noun string
	// ResponseKey wraps the document in get and update responses.
	ResponseKey string
	// AddedMessage is the body returned by a successful add.
	AddedMessage string
	// UpdateFields maps accepted update keys to columns.
	UpdateFields map[string]string
	Clearable    bool
	// AppendOnly collections expose add and list only.
	AppendOnly bool
}

// Hooks let a collection adjust documents around the store calls.
type Hooks[T any, P model.Record[T]] struct {
	BeforeCreate func(ctx context.Context, doc P) error
	AfterList    func(ctx context.Context, docs []T) error
}

// CRUDHandler serves add/list/get/update/delete/clear for one collection.
type CRUDHandler[T any, P model.Record[T]] struct {
	coll    *store.Collection[T, P]
	cfg     CollectionConfig
	hooks   Hooks[T, P]
	enforce bool
	log     logging.Logger
}

func NewCRUDHandler[T any, P model.Record[T]](coll *store.Collection[T, P], cfg CollectionConfig, log logging.Logger) *CRUDHandler[T, P] {
	return &CRUDHandler[T, P]{coll: coll, cfg: cfg, log: log.With("collection", coll.Name())}
}

func (h *CRUDHandler[T, P]) WithHooks(hooks Hooks[T, P]) *CRUDHandler[T, P] {
	h.hooks = hooks
	return h
}

// EnforceOwnership scopes every operation to the authenticated principal.
func (h *CRUDHandler[T, P]) EnforceOwnership(enforce bool) *CRUDHandler[T, P] {
	h.enforce = enforce
	return h
}

func (h *CRUDHandler[T, P]) Register(g *gin.RouterGroup) {
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/", h.List)
	if h.cfg.AppendOnly {
		return
	}
	g.GET("/get/:id", h.Get)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/delete/:id", h.Delete)
	if h.cfg.Clearable {
		g.DELETE("/clear", h.Clear)
	}
}

// owner returns the principal the request is scoped to, or "" when ownership
// is not enforced.
func (h *CRUDHandler[T, P]) owner(c *gin.Context) string {
	if !h.enforce {
		return ""
	}
	if p, ok := middleware.PrincipalFrom(c); ok {
		return p.UserID
	}
	return ""
}

func (h *CRUDHandler[T, P]) record(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, store.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	middleware.RecordStoreOp(h.coll.Name(), op, result)
}

func (h *CRUDHandler[T, P]) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"status": h.cfg.Label + " Not Found"})
}

// fetchOwned loads a document and hides it when it belongs to someone else.
func (h *CRUDHandler[T, P]) fetchOwned(c *gin.Context, id string) (P, error) {
	doc, err := h.coll.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if owner := h.owner(c); owner != "" && doc.GetOwner() != owner {
		return nil, store.ErrNotFound
	}
	return doc, nil
}

func (h *CRUDHandler[T, P]) Add(c *gin.Context) {
	ctx := c.Request.Context()

	doc := P(new(T))
	if err := c.ShouldBindJSON(doc); err != nil {
		if isBodyTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, "Error: "+err.Error())
			return
		}
		c.JSON(http.StatusBadRequest, "Error: "+err.Error())
		return
	}
	doc.SetID("")
	if owner := h.owner(c); owner != "" {
		doc.SetOwner(owner)
	}

	if h.hooks.BeforeCreate != nil {
		if err := h.hooks.BeforeCreate(ctx, doc); err != nil {
			h.log.Warn(ctx, "before-create hook failed", "error", err)
			c.JSON(http.StatusBadRequest, "Error: "+err.Error())
			return
		}
	}

	err := h.coll.Create(ctx, doc)
	h.record("add", err)
	if err != nil {
		c.JSON(http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, h.cfg.AddedMessage)
}

func (h *CRUDHandler[T, P]) List(c *gin.Context) {
	ctx := c.Request.Context()

	scope := store.Scope{Owner: h.owner(c)}
	if scope.Owner == "" {
		scope.Owner = c.Query("user")
	}

	docs, err := h.coll.List(ctx, scope)
	h.record("list", err)
	if err != nil {
		h.log.Error(ctx, "list failed", "error", err)
		c.JSON(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	if h.hooks.AfterList != nil {
		if err := h.hooks.AfterList(ctx, docs); err != nil {
			h.log.Error(ctx, "after-list hook failed", "error", err)
			c.JSON(http.StatusInternalServerError, "Error: "+err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, docs)
}

func (h *CRUDHandler[T, P]) Get(c *gin.Context) {
	doc, err := h.fetchOwned(c, c.Param("id"))
	h.record("get", err)

	if errors.Is(err, store.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.log.Error(c.Request.Context(), "get failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "Error with get " + h.cfg.Noun, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": h.cfg.Label + " Fetched", h.cfg.ResponseKey: doc})
}

// updateFields keeps the configured keys whose values are strings. Absent,
// null and non-string values leave the column untouched.
func (h *CRUDHandler[T, P]) updateFields(body map[string]any) map[string]any {
	fields := make(map[string]any, len(h.cfg.UpdateFields))
	for key, column := range h.cfg.UpdateFields {
		if v, ok := body[key].(string); ok {
			fields[column] = v
		}
	}
	return fields
}

func (h *CRUDHandler[T, P]) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// A missing body updates nothing.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "Error with updating data", "error": err.Error()})
		return
	}

	var err error
	if h.enforce {
		_, err = h.fetchOwned(c, id)
	}
	var doc P
	if err == nil {
		doc, err = h.coll.Update(ctx, id, h.updateFields(body))
	}
	h.record("update", err)

	if errors.Is(err, store.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.log.Error(ctx, "update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "Error with updating data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": h.cfg.Label + " Updated", h.cfg.ResponseKey: doc})
}

func (h *CRUDHandler[T, P]) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var err error
	if h.enforce {
		_, err = h.fetchOwned(c, id)
	}
	if err == nil {
		err = h.coll.Delete(ctx, id)
	}
	h.record("delete", err)

	if errors.Is(err, store.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.log.Error(ctx, "delete failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "Error with delete " + h.cfg.Noun, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": h.cfg.Label + " Deleted"})
}

// Clear removes every document in the collection. Without ownership
// enforcement that includes other users' documents.
func (h *CRUDHandler[T, P]) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.coll.Clear(ctx, store.Scope{Owner: h.owner(c)})
	h.record("clear", err)
	if err != nil {
		h.log.Error(ctx, "clear failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "Error clearing " + h.cfg.Noun, "error": err.Error()})
		return
	}

	h.log.Info(ctx, "collection cleared", "deleted", count, "owner", h.owner(c))
	c.JSON(http.StatusOK, gin.H{"status": "All " + h.cfg.Noun + " cleared", "deletedCount": count})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
