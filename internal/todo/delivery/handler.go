package delivery

import (
	"net/http"

	authdelivery "storefront-backend/internal/auth/delivery"
	tododomain "storefront-backend/internal/todo/domain"
	"storefront-backend/internal/todo/usecase"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{todoUsecase: todoUsecase}
}

// GetTodos returns the user's todo list
// GET /todos
func (h *TodoHandler) GetTodos(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	todos, err := h.todoUsecase.GetTodos(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"todos": todos})
}

// CreateTodo adds a todo
// POST /todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req usecase.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	todo, err := h.todoUsecase.CreateTodo(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"todo": todo})
}

// UpdateTodo updates a todo's mutable fields
// PUT /todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	todoID := c.Param("id")

	var req usecase.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	todo, err := h.todoUsecase.UpdateTodo(userID, todoID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"todo": todo})
}

// DeleteTodo removes a todo
// DELETE /todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	todoID := c.Param("id")

	if err := h.todoUsecase.DeleteTodo(userID, todoID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"deleted": true})
}

// BulkSync replaces the entire todo list
// POST /todos/bulk
func (h *TodoHandler) BulkSync(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req struct {
		Todos []tododomain.Todo `json:"todos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	todos, err := h.todoUsecase.BulkSync(userID, req.Todos)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"todos": todos})
}
