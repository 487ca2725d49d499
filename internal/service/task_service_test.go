package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
)

const tasksPayload = `[
	{"id": 1, "column_id": 1, "nombre": "Diseñar esquema", "avance": 100},
	{"id": 2, "column_id": 1, "nombre": "Escribir pruebas", "descripcion": "cobertura del esquema"},
	{"id": 3, "column_id": 2, "nombre": "Desplegar", "avance": 50}
]`

func TestTaskServiceGetByColumn(t *testing.T) {
	api := &fakeAPIClient{
		GetFunc: func(ctx context.Context, path string) (json.RawMessage, error) {
			if path != "/tasks" {
				t.Errorf("Expected the flat collection endpoint, got %s", path)
			}
			return json.RawMessage(tasksPayload), nil
		},
	}
	svc := NewTaskService(api, nil, zap.NewNop())

	tasks, err := svc.GetByColumn(context.Background(), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks for column 1, got %d", len(tasks))
	}
}

func TestTaskServiceCreateValidation(t *testing.T) {
	valid := dto.CreateTaskRequest{ColumnID: 1, Nombre: "Tarea válida"}

	tests := []struct {
		name   string
		mutate func(*dto.CreateTaskRequest)
	}{
		{"empty name", func(r *dto.CreateTaskRequest) { r.Nombre = "" }},
		{"whitespace name", func(r *dto.CreateTaskRequest) { r.Nombre = "   " }},
		{"name too short", func(r *dto.CreateTaskRequest) { r.Nombre = "ab" }},
		{"name too long", func(r *dto.CreateTaskRequest) { r.Nombre = strings.Repeat("x", 201) }},
		{"missing column id", func(r *dto.CreateTaskRequest) { r.ColumnID = 0 }},
		{"description too long", func(r *dto.CreateTaskRequest) { r.Descripcion = strings.Repeat("d", 1001) }},
		{"negative avance", func(r *dto.CreateTaskRequest) { r.Avance = -1 }},
		{"avance above 100", func(r *dto.CreateTaskRequest) { r.Avance = 101 }},
		{"unknown prioridad", func(r *dto.CreateTaskRequest) { r.Prioridad = "urgente" }},
		{"unknown estado", func(r *dto.CreateTaskRequest) { r.Estado = "Archivado" }},
		{"due date before assignment", func(r *dto.CreateTaskRequest) {
			r.FechaAsignacion = "2025-02-10"
			r.FechaLimite = "2025-02-05"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPIClient{}
			svc := NewTaskService(api, nil, zap.NewNop())

			req := valid
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			if !apperr.IsValidation(err) {
				t.Fatalf("Expected a validation error, got %v", err)
			}
			if api.calls != 0 {
				t.Error("Validation failure must not reach the transport")
			}
		})
	}
}

func TestTaskServiceCreateAcceptsBoundaryValues(t *testing.T) {
	api := &fakeAPIClient{
		PostFunc: func(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
			return json.RawMessage(`{"id": 1, "column_id": 1, "nombre": "abc"}`), nil
		},
	}
	svc := NewTaskService(api, nil, zap.NewNop())

	tests := []struct {
		name string
		req  dto.CreateTaskRequest
	}{
		{"minimum name length", dto.CreateTaskRequest{ColumnID: 1, Nombre: "abc"}},
		{"maximum name length", dto.CreateTaskRequest{ColumnID: 1, Nombre: strings.Repeat("x", 200)}},
		{"avance at 100", dto.CreateTaskRequest{ColumnID: 1, Nombre: "Hecho", Avance: 100}},
		{"equal dates", dto.CreateTaskRequest{ColumnID: 1, Nombre: "Mismo día", FechaAsignacion: "2025-02-10", FechaLimite: "2025-02-10"}},
		{"rfc3339 dates", dto.CreateTaskRequest{ColumnID: 1, Nombre: "Con hora", FechaAsignacion: "2025-02-10T09:00:00Z", FechaLimite: "2025-02-10T17:00:00Z"}},
		{"unparseable dates left to server", dto.CreateTaskRequest{ColumnID: 1, Nombre: "Fecha rara", FechaAsignacion: "mañana", FechaLimite: "ayer"}},
		{"valid prioridad and estado", dto.CreateTaskRequest{ColumnID: 1, Nombre: "Tarea", Prioridad: model.PriorityHigh, Estado: model.StatusBlocked}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.req); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestTaskServiceUpdateValidation(t *testing.T) {
	blank := " "
	short := "ab"
	longDesc := strings.Repeat("d", 1001)
	over := 101
	badPriority := model.Priority("urgente")
	asignacion := "2025-03-10"
	limite := "2025-03-01"

	tests := []struct {
		name string
		req  dto.UpdateTaskRequest
	}{
		{"empty payload", dto.UpdateTaskRequest{}},
		{"blank name", dto.UpdateTaskRequest{Nombre: &blank}},
		{"short name", dto.UpdateTaskRequest{Nombre: &short}},
		{"long description", dto.UpdateTaskRequest{Descripcion: &longDesc}},
		{"avance out of range", dto.UpdateTaskRequest{Avance: &over}},
		{"unknown prioridad", dto.UpdateTaskRequest{Prioridad: &badPriority}},
		{"inverted dates", dto.UpdateTaskRequest{FechaAsignacion: &asignacion, FechaLimite: &limite}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPIClient{}
			svc := NewTaskService(api, nil, zap.NewNop())

			_, err := svc.Update(context.Background(), 1, tt.req)
			if !apperr.IsValidation(err) {
				t.Fatalf("Expected a validation error, got %v", err)
			}
			if api.calls != 0 {
				t.Error("Validation failure must not reach the transport")
			}
		})
	}
}

func TestTaskServiceUpdate(t *testing.T) {
	avance := 75
	api := &fakeAPIClient{
		PutFunc: func(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
			if path != "/tasks/2" {
				t.Errorf("Expected /tasks/2, got %s", path)
			}
			return json.RawMessage(`{"id": 2, "column_id": 1, "nombre": "Escribir pruebas", "avance": 75}`), nil
		},
	}
	svc := NewTaskService(api, nil, zap.NewNop())

	task, err := svc.Update(context.Background(), 2, dto.UpdateTaskRequest{Avance: &avance})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if task.Avance != 75 {
		t.Errorf("Expected canonical avance 75, got %d", task.Avance)
	}
}

func TestTaskServiceSearch(t *testing.T) {
	api := &fakeAPIClient{
		GetFunc: func(ctx context.Context, path string) (json.RawMessage, error) {
			return json.RawMessage(tasksPayload), nil
		},
	}
	svc := NewTaskService(api, nil, zap.NewNop())

	t.Run("matches name", func(t *testing.T) {
		tasks, err := svc.Search(context.Background(), "desplegar")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tasks) != 1 || tasks[0].ID != 3 {
			t.Errorf("Expected only task 3, got %+v", tasks)
		}
	})

	t.Run("matches description", func(t *testing.T) {
		tasks, err := svc.Search(context.Background(), "cobertura")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tasks) != 1 || tasks[0].ID != 2 {
			t.Errorf("Expected only task 2, got %+v", tasks)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		tasks, err := svc.Search(context.Background(), "inexistente")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("Expected no matches, got %+v", tasks)
		}
	})
}

func TestTaskServiceDelete(t *testing.T) {
	api := &fakeAPIClient{
		DeleteFunc: func(ctx context.Context, path string) (json.RawMessage, error) {
			if path != "/tasks/9" {
				t.Errorf("Expected /tasks/9, got %s", path)
			}
			return nil, nil
		},
	}
	svc := NewTaskService(api, nil, zap.NewNop())

	if err := svc.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}
