// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence, with notifications dispatched after commit.
package commands

import (
	"context"

	"riderspool/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InterviewRepoFactory provides access to the interview repository within a transaction.
	InterviewRepoFactory interface {
		InterviewRepository() ports.InterviewRepository
	}

	// FeedbackRepoFactory provides access to the feedback repository within a transaction.
	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	// OfficeLocationRepoFactory provides access to the office location repository within a transaction.
	OfficeLocationRepoFactory interface {
		OfficeLocationRepository() ports.OfficeLocationRepository
	}

	// ProviderRepoFactory provides access to the provider repository within a transaction.
	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	// InterviewUoW manages transactions for interview-only transitions
	// (confirm, cancel, reschedule, mark hired).
	InterviewUoW interface {
		TxManager
		InterviewRepoFactory
	}

	// InterviewUoWFactory creates new interview unit of work instances.
	InterviewUoWFactory interface {
		Create() InterviewUoW
	}

	// BookingUoW manages transactions for interview creation, which also
	// reads the provider profile and the office location catalogue.
	BookingUoW interface {
		TxManager
		InterviewRepoFactory
		OfficeLocationRepoFactory
		ProviderRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CompletionUoW manages transactions for interview completion, which
	// updates the provider's interview counter in the same transaction.
	CompletionUoW interface {
		TxManager
		InterviewRepoFactory
		ProviderRepoFactory
	}

	// CompletionUoWFactory creates new completion unit of work instances.
	CompletionUoWFactory interface {
		Create() CompletionUoW
	}

	// FeedbackUoW manages transactions for feedback submission, which
	// records the feedback and recomputes the provider's rating atomically.
	FeedbackUoW interface {
		TxManager
		InterviewRepoFactory
		FeedbackRepoFactory
		ProviderRepoFactory
	}

	// FeedbackUoWFactory creates new feedback unit of work instances.
	FeedbackUoWFactory interface {
		Create() FeedbackUoW
	}
)
