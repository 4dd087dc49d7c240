package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGraphMirror simula o espelho de grafo
type MockGraphMirror struct {
	mock.Mock
}

func (m *MockGraphMirror) RecordOrderRelation(ctx context.Context, n OrderNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func TestGraphDispatcher_DeliversNotification(t *testing.T) {
	// Arrange
	mockMirror := new(MockGraphMirror)
	notification := OrderNotification{
		CustomerID:  9,
		OrderID:     "order-123",
		ProductID:   1,
		ProductName: "Widget",
		Amount:      300.0,
	}
	mockMirror.On("RecordOrderRelation", mock.Anything, notification).Return(nil)

	dispatcher := NewGraphDispatcher(mockMirror, 8)
	dispatcher.Start()

	// Act
	dispatcher.Dispatch(notification)
	dispatcher.Stop()

	// Assert
	mockMirror.AssertExpectations(t)
}

func TestGraphDispatcher_DeliveryFailureIsDropped(t *testing.T) {
	// Arrange: falha de entrega é logada e descartada, nunca propaga
	mockMirror := new(MockGraphMirror)
	mockMirror.On("RecordOrderRelation", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	dispatcher := NewGraphDispatcher(mockMirror, 8)
	dispatcher.Start()

	// Act: Stop retorna normalmente mesmo com a entrega falhando
	dispatcher.Dispatch(OrderNotification{OrderID: "order-123"})
	dispatcher.Stop()

	// Assert
	mockMirror.AssertExpectations(t)
}

func TestGraphDispatcher_FullQueueDropsNotification(t *testing.T) {
	// Arrange: worker parado, fila de 1
	mockMirror := new(MockGraphMirror)
	dispatcher := NewGraphDispatcher(mockMirror, 1)

	// Act: a segunda notificação não bloqueia nem estoura
	dispatcher.Dispatch(OrderNotification{OrderID: "order-1"})
	dispatcher.Dispatch(OrderNotification{OrderID: "order-2"})

	// Assert
	assert.Len(t, dispatcher.queue, 1)
}
