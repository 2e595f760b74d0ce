package task

import "context"

type TaskService interface {
	// List returns the checklist of the company's current pay period.
	List(ctx context.Context, companyID string) ([]TaskResponse, error)
	// Generate regenerates the checklist.
	Generate(ctx context.Context, userID, companyID string) error
	// Complete marks a task DONE_BY_USER so regeneration never resurrects it.
	Complete(ctx context.Context, userID, id string) (TaskResponse, error)
	// Reopen puts a completed task back to TODO.
	Reopen(ctx context.Context, userID, id string) (TaskResponse, error)
}
