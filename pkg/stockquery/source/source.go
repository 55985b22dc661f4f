package source

import (
	"context"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// Source loads form requests from a specification (e.g., filepath).
type Source interface {
	Load(ctx context.Context, spec any) ([]types.Request, error)
}

// Static serves a fixed set of requests and ignores spec.
type Static []types.Request

func (s Static) Load(ctx context.Context, _ any) ([]types.Request, error) { //nolint:revive
	return append([]types.Request(nil), s...), nil
}
