package menus

import (
	"time"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

func itemsFromSnapshot(menuID uuid.UUID, snapshot menutree.Snapshot, now time.Time) []*MenuItem {
	items := make([]*MenuItem, len(snapshot))
	for i, row := range snapshot {
		items[i] = &MenuItem{
			ID:        row.ID,
			MenuID:    menuID,
			ParentID:  cloneUUIDPtr(row.ParentID),
			Depth:     row.Depth,
			Position:  row.Position,
			OrderKey:  row.OrderKey,
			Name:      row.Name,
			Path:      row.Path,
			Icon:      row.Icon,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return items
}

func snapshotFromItems(items []*MenuItem) menutree.Snapshot {
	rows := make(menutree.Snapshot, len(items))
	for i, item := range items {
		rows[i] = menutree.FlatNode{
			ID:       item.ID,
			ParentID: cloneUUIDPtr(item.ParentID),
			Depth:    item.Depth,
			Position: item.Position,
			OrderKey: item.OrderKey,
			Name:     item.Name,
			Path:     item.Path,
			Icon:     item.Icon,
		}
	}
	return rows
}

// sameRows reports whether both sets hold exactly the same ids.
func sameRows(existing []*MenuItem, next []*MenuItem) bool {
	if len(existing) != len(next) {
		return false
	}
	ids := make(map[uuid.UUID]struct{}, len(existing))
	for _, item := range existing {
		ids[item.ID] = struct{}{}
	}
	for _, item := range next {
		if _, ok := ids[item.ID]; !ok {
			return false
		}
	}
	return true
}
