package domain

import "context"

// RegistryService is the application-facing API over the activity registry.
// Signup and Unregister return a human-readable confirmation message on
// success.
type RegistryService interface {
	ListActivities(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// ActivityStore abstracts the backing registry storage. Mutations must be
// atomic: the membership check and the write happen under a single
// synchronization point so concurrent requests cannot interleave.
type ActivityStore interface {
	// List returns a snapshot of the full registry. Mutating the returned
	// map or its participant slices must not affect the store.
	List(ctx context.Context) (map[string]Activity, error)

	// AddParticipant appends email to the named activity. Returns
	// ErrActivityNotFound if the activity does not exist and
	// ErrAlreadySignedUp if email is already enrolled.
	AddParticipant(ctx context.Context, activity, email string) error

	// RemoveParticipant removes email from the named activity. Returns
	// ErrActivityNotFound if the activity does not exist and
	// ErrNotRegistered if email is not enrolled.
	RemoveParticipant(ctx context.Context, activity, email string) error

	// Len returns the number of activities in the registry.
	Len() int
}
