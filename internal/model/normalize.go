package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// The remote API keys the same attribute differently across entities and
// deployments (boards sometimes arrive keyed "name" or "titulo" instead of
// "nombre", columns "title" instead of "titulo"). Decoding goes through a
// loose map so the aliases are resolved here and never leak past this
// package.

func rawField(m map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]json.RawMessage, keys ...string) string {
	raw, ok := rawField(m, keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func intField(m map[string]json.RawMessage, keys ...string) int {
	raw, ok := rawField(m, keys...)
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		// Some backends serialize numeric ids as strings.
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		var parsed float64
		if _, err := fmt.Sscanf(s, "%f", &parsed); err != nil {
			return 0
		}
		n = parsed
	}
	return int(math.Round(n))
}

// DecodeBoard normalizes a single board payload into the canonical type.
func DecodeBoard(data []byte) (*Board, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode board payload: %w", err)
	}
	b := &Board{
		ID:          intField(m, "id"),
		Nombre:      stringField(m, "nombre", "name", "titulo", "title"),
		Descripcion: stringField(m, "descripcion", "description"),
		CreatedAt:   stringField(m, "created_at", "createdAt"),
		UpdatedAt:   stringField(m, "updated_at", "updatedAt"),
	}
	if raw, ok := rawField(m, "columns", "columnas"); ok {
		cols, err := DecodeColumnList(raw)
		if err != nil {
			return nil, err
		}
		b.Columns = cols
	}
	return b, nil
}

// DecodeBoardList normalizes a board collection payload.
func DecodeBoardList(data []byte) ([]Board, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode board list: %w", err)
	}
	boards := make([]Board, 0, len(items))
	for _, item := range items {
		b, err := DecodeBoard(item)
		if err != nil {
			return nil, err
		}
		boards = append(boards, *b)
	}
	return boards, nil
}

// DecodeColumn normalizes a single column payload into the canonical type.
// A missing color falls back to the neutral default.
func DecodeColumn(data []byte) (*Column, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode column payload: %w", err)
	}
	c := &Column{
		ID:        intField(m, "id"),
		BoardID:   intField(m, "board_id", "boardId", "tablero_id"),
		Titulo:    stringField(m, "titulo", "title", "nombre", "name"),
		Color:     stringField(m, "color"),
		Posicion:  intField(m, "posicion", "position", "orden"),
		CreatedAt: stringField(m, "created_at", "createdAt"),
		UpdatedAt: stringField(m, "updated_at", "updatedAt"),
	}
	if c.Color == "" {
		c.Color = DefaultColumnColor
	}
	if raw, ok := rawField(m, "tasks", "tareas"); ok {
		tasks, err := DecodeTaskList(raw)
		if err != nil {
			return nil, err
		}
		c.Tasks = tasks
	}
	return c, nil
}

// DecodeColumnList normalizes a column collection payload.
func DecodeColumnList(data []byte) ([]Column, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode column list: %w", err)
	}
	columns := make([]Column, 0, len(items))
	for _, item := range items {
		c, err := DecodeColumn(item)
		if err != nil {
			return nil, err
		}
		columns = append(columns, *c)
	}
	return columns, nil
}

// DecodeTask normalizes a single task payload into the canonical type.
// Unknown priorities fall back to media; unknown statuses to Pendiente.
func DecodeTask(data []byte) (*Task, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode task payload: %w", err)
	}
	t := &Task{
		ID:              intField(m, "id"),
		ColumnID:        intField(m, "column_id", "columnId", "columna_id"),
		Nombre:          stringField(m, "nombre", "name", "titulo", "title"),
		Descripcion:     stringField(m, "descripcion", "description"),
		FechaAsignacion: stringField(m, "fecha_asignacion", "assigned_at"),
		FechaLimite:     stringField(m, "fecha_limite", "due_date"),
		Asignador:       stringField(m, "asignador", "assigner"),
		Responsable:     stringField(m, "responsable", "assignee"),
		Avance:          intField(m, "avance", "progress"),
		Prioridad:       Priority(stringField(m, "prioridad", "priority")),
		Estado:          Status(stringField(m, "estado", "status")),
		CreatedAt:       stringField(m, "created_at", "createdAt"),
		UpdatedAt:       stringField(m, "updated_at", "updatedAt"),
	}
	if !t.Prioridad.Valid() {
		t.Prioridad = PriorityMedium
	}
	if !t.Estado.Valid() {
		t.Estado = StatusPending
	}
	return t, nil
}

// DecodeTaskList normalizes a task collection payload.
func DecodeTaskList(data []byte) ([]Task, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}
	tasks := make([]Task, 0, len(items))
	for _, item := range items {
		t, err := DecodeTask(item)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}
