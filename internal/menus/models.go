package menus

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Menu is a named container for one menu tree.
type Menu struct {
	bun.BaseModel `bun:"table:menus,alias:m"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Code        string    `bun:"code,notnull,unique" json:"code"`
	Description *string   `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// MenuItem is one persisted node. Rows of a menu are stored flat; Position is
// the index among siblings.
type MenuItem struct {
	bun.BaseModel `bun:"table:menu_items,alias:mi"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	MenuID    uuid.UUID  `bun:"menu_id,notnull,type:uuid" json:"menu_id"`
	ParentID  *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Depth     int        `bun:"depth,notnull,default:0" json:"depth"`
	Position  int        `bun:"position,notnull,default:0" json:"position"`
	OrderKey  int        `bun:"order_key,notnull,default:0" json:"order_key"`
	Name      string     `bun:"name,notnull" json:"name"`
	Path      string     `bun:"path" json:"path,omitempty"`
	Icon      string     `bun:"icon" json:"icon,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
