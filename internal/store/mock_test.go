package store

import (
	"context"

	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
)

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	GetAllFunc  func(ctx context.Context) ([]model.Board, error)
	GetByIDFunc func(ctx context.Context, id int) (*model.Board, error)
	CreateFunc  func(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error)
	UpdateFunc  func(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error)
	DeleteFunc  func(ctx context.Context, id int) error
	SearchFunc  func(ctx context.Context, query string) ([]model.Board, error)
	StatsFunc   func(ctx context.Context, id int) (*dto.BoardStats, error)
}

func (m *MockBoardService) GetAll(ctx context.Context) ([]model.Board, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []model.Board{}, nil
}

func (m *MockBoardService) GetByID(ctx context.Context, id int) (*model.Board, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &model.Board{ID: id}, nil
}

func (m *MockBoardService) Create(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &model.Board{Nombre: req.Nombre}, nil
}

func (m *MockBoardService) Update(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &model.Board{ID: id}, nil
}

func (m *MockBoardService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardService) Search(ctx context.Context, query string) ([]model.Board, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []model.Board{}, nil
}

func (m *MockBoardService) Stats(ctx context.Context, id int) (*dto.BoardStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, id)
	}
	return &dto.BoardStats{}, nil
}

// MockColumnService is a mock implementation of service.ColumnService
type MockColumnService struct {
	GetAllFunc     func(ctx context.Context) ([]model.Column, error)
	GetByBoardFunc func(ctx context.Context, boardID int) ([]model.Column, error)
	GetByIDFunc    func(ctx context.Context, id int) (*model.Column, error)
	CreateFunc     func(ctx context.Context, req dto.CreateColumnRequest) (*model.Column, error)
	UpdateFunc     func(ctx context.Context, id int, req dto.UpdateColumnRequest) (*model.Column, error)
	DeleteFunc     func(ctx context.Context, id int) error
	SearchFunc     func(ctx context.Context, query string) ([]model.Column, error)
}

func (m *MockColumnService) GetAll(ctx context.Context) ([]model.Column, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []model.Column{}, nil
}

func (m *MockColumnService) GetByBoard(ctx context.Context, boardID int) ([]model.Column, error) {
	if m.GetByBoardFunc != nil {
		return m.GetByBoardFunc(ctx, boardID)
	}
	return []model.Column{}, nil
}

func (m *MockColumnService) GetByID(ctx context.Context, id int) (*model.Column, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &model.Column{ID: id}, nil
}

func (m *MockColumnService) Create(ctx context.Context, req dto.CreateColumnRequest) (*model.Column, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &model.Column{BoardID: req.BoardID, Titulo: req.Titulo}, nil
}

func (m *MockColumnService) Update(ctx context.Context, id int, req dto.UpdateColumnRequest) (*model.Column, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &model.Column{ID: id}, nil
}

func (m *MockColumnService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockColumnService) Search(ctx context.Context, query string) ([]model.Column, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []model.Column{}, nil
}

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	GetAllFunc      func(ctx context.Context) ([]model.Task, error)
	GetByColumnFunc func(ctx context.Context, columnID int) ([]model.Task, error)
	GetByIDFunc     func(ctx context.Context, id int) (*model.Task, error)
	CreateFunc      func(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error)
	UpdateFunc      func(ctx context.Context, id int, req dto.UpdateTaskRequest) (*model.Task, error)
	DeleteFunc      func(ctx context.Context, id int) error
	SearchFunc      func(ctx context.Context, query string) ([]model.Task, error)
}

func (m *MockTaskService) GetAll(ctx context.Context) ([]model.Task, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []model.Task{}, nil
}

func (m *MockTaskService) GetByColumn(ctx context.Context, columnID int) ([]model.Task, error) {
	if m.GetByColumnFunc != nil {
		return m.GetByColumnFunc(ctx, columnID)
	}
	return []model.Task{}, nil
}

func (m *MockTaskService) GetByID(ctx context.Context, id int) (*model.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &model.Task{ID: id}, nil
}

func (m *MockTaskService) Create(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &model.Task{ColumnID: req.ColumnID, Nombre: req.Nombre}, nil
}

func (m *MockTaskService) Update(ctx context.Context, id int, req dto.UpdateTaskRequest) (*model.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &model.Task{ID: id}, nil
}

func (m *MockTaskService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskService) Search(ctx context.Context, query string) ([]model.Task, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []model.Task{}, nil
}
