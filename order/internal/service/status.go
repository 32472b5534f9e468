package service

import "github.com/furnspace/furnspace/internal/repository"

var orderTransitions = map[repository.OrderStatus][]repository.OrderStatus{
	repository.OrderStatusPending:    {repository.OrderStatusProcessing, repository.OrderStatusCancelled},
	repository.OrderStatusProcessing: {repository.OrderStatusShipped, repository.OrderStatusCancelled},
	repository.OrderStatusShipped:    {repository.OrderStatusDelivered, repository.OrderStatusCancelled},
	repository.OrderStatusDelivered:  {},
	repository.OrderStatusCancelled:  {},
}

// CanTransition reports whether an order may move from one status to another.
// Statuses only move forward, except that any non-terminal order can be cancelled.
func CanTransition(from, to repository.OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
