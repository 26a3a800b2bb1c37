package usecase

import (
	"time"

	tododomain "storefront-backend/internal/todo/domain"
	"storefront-backend/internal/todo/repository"
	"storefront-backend/pkg/apperr"

	"github.com/google/uuid"
)

// CreateTodoRequest carries the fields accepted when creating a todo
type CreateTodoRequest struct {
	Text         string  `json:"text"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	ProductImage string  `json:"productImage"`
	Quantity     int     `json:"quantity"`
}

// UpdateTodoRequest carries the mutable fields; nil means unchanged
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	Quantity  *int    `json:"quantity"`
}

// TodoUsecase defines todo operations for a single user
type TodoUsecase interface {
	GetTodos(userID string) ([]tododomain.Todo, error)
	CreateTodo(userID string, req *CreateTodoRequest) (*tododomain.Todo, error)
	UpdateTodo(userID, todoID string, req *UpdateTodoRequest) (*tododomain.Todo, error)
	DeleteTodo(userID, todoID string) error
	// BulkSync replaces the user's entire list
	BulkSync(userID string, todos []tododomain.Todo) ([]tododomain.Todo, error)
	// ImportTodos appends migrated guest todos to the list
	ImportTodos(userID string, todos []tododomain.Todo) (int, error)
}

type todoUsecase struct {
	todoRepo repository.TodoRepository
}

func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{todoRepo: todoRepo}
}

func (u *todoUsecase) GetTodos(userID string) ([]tododomain.Todo, error) {
	return u.todoRepo.FindByUser(userID)
}

func (u *todoUsecase) CreateTodo(userID string, req *CreateTodoRequest) (*tododomain.Todo, error) {
	if req.Text == "" {
		return nil, apperr.Validation("text", "text is required")
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	now := time.Now()
	todo := tododomain.Todo{
		ID:           uuid.New().String(),
		Text:         req.Text,
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		ProductImage: req.ProductImage,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := u.todoRepo.Mutate(userID, func(todos []tododomain.Todo) ([]tododomain.Todo, error) {
		return append(todos, todo), nil
	})
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (u *todoUsecase) UpdateTodo(userID, todoID string, req *UpdateTodoRequest) (*tododomain.Todo, error) {
	var updated *tododomain.Todo

	_, err := u.todoRepo.Mutate(userID, func(todos []tododomain.Todo) ([]tododomain.Todo, error) {
		for i := range todos {
			if todos[i].ID != todoID {
				continue
			}
			if req.Text != nil {
				todos[i].Text = *req.Text
			}
			if req.Completed != nil {
				todos[i].Completed = *req.Completed
			}
			if req.Quantity != nil && *req.Quantity >= 1 {
				todos[i].Quantity = *req.Quantity
			}
			todos[i].UpdatedAt = time.Now()
			updated = &todos[i]
			return todos, nil
		}
		return nil, apperr.NotFound("NotFound", "todo not found")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *todoUsecase) DeleteTodo(userID, todoID string) error {
	_, err := u.todoRepo.Mutate(userID, func(todos []tododomain.Todo) ([]tododomain.Todo, error) {
		for i := range todos {
			if todos[i].ID == todoID {
				return append(todos[:i], todos[i+1:]...), nil
			}
		}
		return nil, apperr.NotFound("NotFound", "todo not found")
	})
	return err
}

func (u *todoUsecase) BulkSync(userID string, incoming []tododomain.Todo) ([]tododomain.Todo, error) {
	return u.todoRepo.Mutate(userID, func([]tododomain.Todo) ([]tododomain.Todo, error) {
		return normalize(incoming), nil
	})
}

func (u *todoUsecase) ImportTodos(userID string, incoming []tododomain.Todo) (int, error) {
	list := normalize(incoming)
	_, err := u.todoRepo.Mutate(userID, func(todos []tododomain.Todo) ([]tododomain.Todo, error) {
		return append(todos, list...), nil
	})
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func normalize(incoming []tododomain.Todo) []tododomain.Todo {
	out := make([]tododomain.Todo, 0, len(incoming))
	now := time.Now()
	for _, t := range incoming {
		if t.Text == "" {
			continue
		}
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.Quantity < 1 {
			t.Quantity = 1
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = now
		}
		out = append(out, t)
	}
	return out
}
