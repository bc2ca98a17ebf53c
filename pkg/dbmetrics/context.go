package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor returns a context carrying the given executor, typically a
// transaction opened by a transaction manager.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, exec)
}

// GetExecutor returns the executor stored in the context, falling back to
// the repository's own handle when no transaction is active.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction reports whether the context carries a transaction executor.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(DBExecutor)
	return ok
}
