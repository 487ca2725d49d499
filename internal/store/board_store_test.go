package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
)

func newBoardStore(t *testing.T, svc *MockBoardService) *BoardStore {
	t.Helper()
	return NewBoardStore(context.Background(), svc, nil, zap.NewNop())
}

func TestBoardStoreFetchesOnCreation(t *testing.T) {
	calls := 0
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			calls++
			return []model.Board{{ID: 1, Nombre: "A"}, {ID: 2, Nombre: "B"}}, nil
		},
	}

	s := newBoardStore(t, svc)

	assert.Equal(t, 1, calls, "the store fetches exactly once on creation")
	assert.Len(t, s.Items(), 2)
	assert.Empty(t, s.Err())
	assert.False(t, s.Loading())
	assert.Nil(t, s.Selected())
}

func TestBoardStoreFetchAllFailureEmptiesCollection(t *testing.T) {
	fail := false
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			if fail {
				return nil, &apperr.APIError{Code: apperr.CodeServerError, StatusCode: 500, Message: "Error interno del servidor"}
			}
			return []model.Board{{ID: 1, Nombre: "A"}}, nil
		},
	}

	s := newBoardStore(t, svc)
	require.Len(t, s.Items(), 1)

	fail = true
	err := s.FetchAll(context.Background())

	require.Error(t, err)
	assert.Empty(t, s.Items(), "a failed fetch must not leave stale items visible")
	assert.Equal(t, "Error interno del servidor", s.Err())
	assert.False(t, s.Loading())
}

func TestBoardStoreCreateAppendsCanonicalObject(t *testing.T) {
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "Existente"}}, nil
		},
		CreateFunc: func(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error) {
			return &model.Board{ID: 99, Nombre: req.Nombre, CreatedAt: "2025-01-01T00:00:00Z"}, nil
		},
	}

	s := newBoardStore(t, svc)
	board, err := s.Create(context.Background(), dto.CreateBoardRequest{Nombre: "Nuevo"})

	require.NoError(t, err)
	assert.Equal(t, 99, board.ID, "the server-assigned id is used, not a local one")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 99, items[1].ID)
	assert.Equal(t, "2025-01-01T00:00:00Z", items[1].CreatedAt)
}

func TestBoardStoreCreateFailureLeavesCollectionUnchanged(t *testing.T) {
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "Existente"}}, nil
		},
		CreateFunc: func(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error) {
			return nil, apperr.NewValidation("nombre", "El nombre del tablero es requerido")
		},
	}

	s := newBoardStore(t, svc)
	_, err := s.Create(context.Background(), dto.CreateBoardRequest{})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Len(t, s.Items(), 1)
	assert.Equal(t, "El nombre del tablero es requerido", s.Err())
}

func TestBoardStoreUpdateReplacesOnlyMatching(t *testing.T) {
	nombre := "Renombrado"
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "A"}, {ID: 2, Nombre: "B"}}, nil
		},
		UpdateFunc: func(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error) {
			return &model.Board{ID: id, Nombre: *req.Nombre, UpdatedAt: "2025-06-01T00:00:00Z"}, nil
		},
	}

	s := newBoardStore(t, svc)
	_, err := s.Update(context.Background(), 2, dto.UpdateBoardRequest{Nombre: &nombre})

	require.NoError(t, err)
	items := s.Items()
	assert.Equal(t, "A", items[0].Nombre, "non-matching elements stay untouched")
	assert.Equal(t, "Renombrado", items[1].Nombre)
	assert.Equal(t, "2025-06-01T00:00:00Z", items[1].UpdatedAt, "the canonical object replaces the local one")
}

func TestBoardStoreUpdateRefreshesSelected(t *testing.T) {
	nombre := "Renombrado"
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "A"}}, nil
		},
		GetByIDFunc: func(ctx context.Context, id int) (*model.Board, error) {
			return &model.Board{ID: id, Nombre: "A"}, nil
		},
		UpdateFunc: func(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error) {
			return &model.Board{ID: id, Nombre: *req.Nombre}, nil
		},
	}

	s := newBoardStore(t, svc)
	require.NoError(t, s.FetchOne(context.Background(), 1))
	require.NotNil(t, s.Selected())

	_, err := s.Update(context.Background(), 1, dto.UpdateBoardRequest{Nombre: &nombre})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", s.Selected().Nombre)
}

func TestBoardStoreDelete(t *testing.T) {
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "A"}, {ID: 2, Nombre: "B"}}, nil
		},
		GetByIDFunc: func(ctx context.Context, id int) (*model.Board, error) {
			return &model.Board{ID: id}, nil
		},
	}

	s := newBoardStore(t, svc)
	require.NoError(t, s.FetchOne(context.Background(), 2))

	require.NoError(t, s.Delete(context.Background(), 2))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Nil(t, s.Selected(), "deleting the selected board clears the selection")
}

func TestBoardStoreDeleteFailureKeepsItem(t *testing.T) {
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "A"}}, nil
		},
		DeleteFunc: func(ctx context.Context, id int) error {
			return &apperr.APIError{Code: apperr.CodeNotFound, StatusCode: 404, Message: "Recurso no encontrado"}
		},
	}

	s := newBoardStore(t, svc)
	err := s.Delete(context.Background(), 1)

	require.Error(t, err)
	assert.Len(t, s.Items(), 1, "the item is removed only after the server confirms")
	assert.Equal(t, "Recurso no encontrado", s.Err())
}

func TestBoardStoreSearchReplacesCollection(t *testing.T) {
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "Alfa"}, {ID: 2, Nombre: "Beta"}}, nil
		},
		SearchFunc: func(ctx context.Context, query string) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "Alfa"}}, nil
		},
	}

	s := newBoardStore(t, svc)
	require.Len(t, s.Items(), 2)

	require.NoError(t, s.Search(context.Background(), "alfa"))
	assert.Len(t, s.Items(), 1, "search replaces the collection rather than annotating it")
}

func TestBoardStoreBlankSearchFetchesAll(t *testing.T) {
	searchCalls := 0
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "Alfa"}, {ID: 2, Nombre: "Beta"}}, nil
		},
		SearchFunc: func(ctx context.Context, query string) ([]model.Board, error) {
			searchCalls++
			return nil, nil
		},
	}

	s := newBoardStore(t, svc)
	require.NoError(t, s.Search(context.Background(), "   "))

	assert.Zero(t, searchCalls, "a blank query skips the search path entirely")
	assert.Len(t, s.Items(), 2)
}

func TestBoardStoreStaleFetchDiscarded(t *testing.T) {
	svc := &MockBoardService{}
	s := newBoardStore(t, svc)

	calls := 0
	svc.GetAllFunc = func(ctx context.Context) ([]model.Board, error) {
		calls++
		if calls == 1 {
			// A later fetch starts and completes while this one is in flight.
			_ = s.FetchAll(ctx)
			return []model.Board{{ID: 1, Nombre: "obsoleto"}}, nil
		}
		return []model.Board{{ID: 2, Nombre: "vigente"}}, nil
	}

	require.NoError(t, s.FetchAll(context.Background()))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "vigente", items[0].Nombre, "the superseded response must not overwrite the newer one")
}

func TestBoardStoreFetchOne(t *testing.T) {
	svc := &MockBoardService{
		GetByIDFunc: func(ctx context.Context, id int) (*model.Board, error) {
			return &model.Board{ID: id, Nombre: "Detalle", Columns: []model.Column{{ID: 1, BoardID: id, Titulo: "Col"}}}, nil
		},
	}

	s := newBoardStore(t, svc)
	require.NoError(t, s.FetchOne(context.Background(), 7))

	sel := s.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, 7, sel.ID)
	assert.Len(t, sel.Columns, 1)

	s.ClearSelected()
	assert.Nil(t, s.Selected())
}

func TestBoardStoreFetchOneFailure(t *testing.T) {
	svc := &MockBoardService{
		GetByIDFunc: func(ctx context.Context, id int) (*model.Board, error) {
			return nil, &apperr.APIError{Code: apperr.CodeNotFound, StatusCode: 404, Message: "Recurso no encontrado"}
		},
	}

	s := newBoardStore(t, svc)
	err := s.FetchOne(context.Background(), 7)

	require.Error(t, err)
	assert.Nil(t, s.Selected())
	assert.Equal(t, "Recurso no encontrado", s.Err())

	s.ClearError()
	assert.Empty(t, s.Err())
}

func TestBoardStoreRefresh(t *testing.T) {
	detail := &model.Board{ID: 1, Nombre: "A"}
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "A"}}, nil
		},
		GetByIDFunc: func(ctx context.Context, id int) (*model.Board, error) {
			b := *detail
			return &b, nil
		},
	}

	s := newBoardStore(t, svc)
	require.NoError(t, s.FetchOne(context.Background(), 1))

	// A child mutation happened elsewhere; Refresh pulls the new detail.
	detail.Columns = []model.Column{{ID: 5, BoardID: 1, Titulo: "Nueva columna"}}
	require.NoError(t, s.Refresh(context.Background(), 1))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Len(t, items[0].Columns, 1)
	require.NotNil(t, s.Selected())
	assert.Len(t, s.Selected().Columns, 1)
}

func TestBoardStoreStateSnapshot(t *testing.T) {
	svc := &MockBoardService{
		GetAllFunc: func(ctx context.Context) ([]model.Board, error) {
			return []model.Board{{ID: 1, Nombre: "A"}}, nil
		},
	}

	s := newBoardStore(t, svc)
	state := s.State()

	assert.Len(t, state.Items, 1)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)

	// Mutating the snapshot must not leak into the store
	state.Items[0].Nombre = "mutado"
	assert.Equal(t, "A", s.Items()[0].Nombre)
}
