package metrics

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementColumnCreated increments the column creation counter
func (m *Metrics) IncrementColumnCreated() {
	m.safeExecute("IncrementColumnCreated", func() {
		m.ColumnCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// SetStoreItems records the current size of an entity store's collection
func (m *Metrics) SetStoreItems(entity string, count int) {
	m.safeExecute("SetStoreItems", func() {
		m.StoreItems.WithLabelValues(entity).Set(float64(count))
	})
}
