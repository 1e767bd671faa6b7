package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	dom "todoapi/internal/domain"
	"todoapi/internal/dto"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageNumber = 0
	defaultPageSize   = 10
)

// TodoService is the slice of the service layer the handlers need.
type TodoService interface {
	Create(ctx context.Context, title, description string) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Search(ctx context.Context, term string, page dom.SearchPage) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, title, description string) (dom.Todo, error)
	Delete(ctx context.Context, id int64) (dom.Todo, error)
}

type TodoHandler struct {
	svc TodoService
}

func NewTodoHandler(svc TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo entry
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorDocument
// @Router       /todo [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationDocument(err))
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, todoToResponse(t))
}

// GetByID godoc
// @Summary      Get a todo entry by id
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todo/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// List godoc
// @Summary      List all todo entries
// @Tags         todos
// @Produce      json
// @Success      200  {array}  dto.TodoResponse
// @Router       /todo [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, todosToResponses(list))
}

// Search godoc
// @Summary      Search todo entries by title or description
// @Tags         todos
// @Produce      json
// @Param        searchTerm  query     string  false  "Case-insensitive substring"
// @Param        pageNumber  query     int     false  "Zero-based page"
// @Param        pageSize    query     int     false  "Rows per page"
// @Param        sortField   query     string  false  "Field to sort by"
// @Param        sortOrder   query     string  false  "ASC or DESC"
// @Success      200  {array}  dto.TodoResponse
// @Router       /todo/search [get]
func (h *TodoHandler) Search(c *gin.Context) {
	term := c.Query("searchTerm")
	page := dom.SearchPage{
		PageNumber: queryInt(c, "pageNumber", defaultPageNumber),
		PageSize:   queryInt(c, "pageSize", defaultPageSize),
		SortField:  c.Query("sortField"),
		SortOrder:  c.Query("sortOrder"),
	}
	if page.PageNumber < 0 {
		page.PageNumber = defaultPageNumber
	}
	if page.PageSize <= 0 {
		page.PageSize = defaultPageSize
	}

	list, err := h.svc.Search(c.Request.Context(), term, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, todosToResponses(list))
}

// Update godoc
// @Summary      Replace a todo entry
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Replacement body"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorDocument
// @Failure      404   {object}  map[string]string
// @Router       /todo/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationDocument(err))
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo entry
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		CreationTime:     t.CreationTime,
		ModificationTime: t.ModificationTime,
	}
}

// todosToResponses always allocates so an empty result encodes as [].
func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
