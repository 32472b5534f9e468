package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/furnspace/furnspace/internal/repository"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    repository.OrderStatus
		to      repository.OrderStatus
		allowed bool
	}{
		{"pending to processing", repository.OrderStatusPending, repository.OrderStatusProcessing, true},
		{"pending to cancelled", repository.OrderStatusPending, repository.OrderStatusCancelled, true},
		{"pending to shipped skips processing", repository.OrderStatusPending, repository.OrderStatusShipped, false},
		{"processing to shipped", repository.OrderStatusProcessing, repository.OrderStatusShipped, true},
		{"processing to cancelled", repository.OrderStatusProcessing, repository.OrderStatusCancelled, true},
		{"processing back to pending", repository.OrderStatusProcessing, repository.OrderStatusPending, false},
		{"shipped to delivered", repository.OrderStatusShipped, repository.OrderStatusDelivered, true},
		{"shipped to cancelled", repository.OrderStatusShipped, repository.OrderStatusCancelled, true},
		{"delivered is terminal", repository.OrderStatusDelivered, repository.OrderStatusCancelled, false},
		{"cancelled is terminal", repository.OrderStatusCancelled, repository.OrderStatusPending, false},
		{"same status is not a transition", repository.OrderStatusPending, repository.OrderStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}
