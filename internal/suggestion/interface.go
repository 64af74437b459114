package suggestion

import "context"

// UseCase wraps the outbound AI call. Fetch degrades to an empty list on
// any failure; it never returns an error for a failed upstream call and
// never mutates the task collection.
type UseCase interface {
	Fetch(ctx context.Context) (FetchOutput, error)
}
