package menus

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewMenuRepository returns the generic bun repository for menus. Lookups by
// identifier resolve the menu code.
func NewMenuRepository(db *bun.DB) repository.Repository[*Menu] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Menu]{
		NewRecord:          func() *Menu { return new(Menu) },
		GetID:              func(menu *Menu) uuid.UUID { return menu.ID },
		SetID:              func(menu *Menu, id uuid.UUID) { menu.ID = id },
		GetIdentifier:      func() string { return "code" },
		GetIdentifierValue: func(menu *Menu) string { return menu.Code },
	})
}

// NewMenuItemRepository returns the generic bun repository for tree rows.
// Rows have no natural key, so the identifier is the node id.
func NewMenuItemRepository(db *bun.DB) repository.Repository[*MenuItem] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*MenuItem]{
		NewRecord:          func() *MenuItem { return new(MenuItem) },
		GetID:              func(row *MenuItem) uuid.UUID { return row.ID },
		SetID:              func(row *MenuItem, id uuid.UUID) { row.ID = id },
		GetIdentifier:      func() string { return "id" },
		GetIdentifierValue: func(row *MenuItem) string { return row.ID.String() },
	})
}
