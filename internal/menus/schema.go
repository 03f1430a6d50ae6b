package menus

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Models lists the bun models owned by this package, parents first.
func Models() []any {
	return []any{
		(*Menu)(nil),
		(*MenuItem)(nil),
	}
}

// CreateSchema creates the menu tables and the item lookup index when missing.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("menus: create table %T: %w", model, err)
		}
	}
	if _, err := db.NewCreateIndex().
		Model((*MenuItem)(nil)).
		Index("menu_items_menu_id_position_idx").
		Column("menu_id", "position").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("menus: create menu item index: %w", err)
	}
	return nil
}
