package seeder

import (
	"context"

	"github.com/wate11/HyMatch-project/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
