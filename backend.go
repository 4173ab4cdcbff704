package orchestrator

import (
	"context"

	"github.com/ubuntu/wsl-orchestrator/internal/backend"
	"github.com/ubuntu/wsl-orchestrator/internal/backend/windows"
	"github.com/ubuntu/wsl-orchestrator/mock"
)

type backendQueryType int

const backendQuery backendQueryType = 0

// WithMock adds the mock back-end to the context.
func WithMock(ctx context.Context, b *mock.Backend) context.Context {
	return context.WithValue(ctx, backendQuery, b)
}

func selectBackend(ctx context.Context) backend.Backend {
	v := ctx.Value(backendQuery)

	if v == nil {
		return windows.Backend{}
	}

	//nolint: forcetypeassert // The panic is expected and welcome
	return v.(backend.Backend)
}
