package repository

import (
	tododomain "storefront-backend/internal/todo/domain"
	"storefront-backend/pkg/apperr"
	"storefront-backend/pkg/jsonstore"
)

const todosDoc = "todos"

// TodoRepository stores one todo list per user
type TodoRepository interface {
	FindByUser(userID string) ([]tododomain.Todo, error)
	// Mutate applies fn to the user's list under the document lock and
	// persists the result.
	Mutate(userID string, fn func(todos []tododomain.Todo) ([]tododomain.Todo, error)) ([]tododomain.Todo, error)
}

type todoRepository struct {
	store jsonstore.Store
}

func NewTodoRepository(store jsonstore.Store) TodoRepository {
	return &todoRepository{store: store}
}

func (r *todoRepository) load() (map[string][]tododomain.Todo, error) {
	todos := make(map[string][]tododomain.Todo)
	if err := r.store.Load(todosDoc, &todos); err != nil {
		return nil, apperr.Storage(err)
	}
	return todos, nil
}

func (r *todoRepository) FindByUser(userID string) ([]tododomain.Todo, error) {
	todos, err := r.load()
	if err != nil {
		return nil, err
	}
	list := todos[userID]
	if list == nil {
		list = []tododomain.Todo{}
	}
	return list, nil
}

func (r *todoRepository) Mutate(userID string, fn func(todos []tododomain.Todo) ([]tododomain.Todo, error)) ([]tododomain.Todo, error) {
	defer r.store.Lock(todosDoc)()

	todos, err := r.load()
	if err != nil {
		return nil, err
	}

	list := todos[userID]
	if list == nil {
		list = []tododomain.Todo{}
	}

	list, err = fn(list)
	if err != nil {
		return nil, err
	}

	todos[userID] = list
	if err := r.store.Save(todosDoc, todos); err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}
