package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	CreateIgnore(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, orderBy string, entity any) error
	UpdateColumns(ctx context.Context, model any, whereColumn string, whereValue any, updates map[string]any) error
	Upsert(ctx context.Context, record any, conflictColumn string, updateColumns []string) error
}
