package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-menu-editor/internal/identity"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

// Document is the portable form of one menu.
type Document struct {
	Menu        string `json:"menu" yaml:"menu"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []Item `json:"items" yaml:"items"`
}

// Item is one node of a document. An empty ID is derived from the menu code
// and the item path, so re-importing a document keeps node ids stable.
type Item struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Children []Item `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree converts the document into a normalized tree.
func (d Document) Tree(stride int) (menutree.Tree, error) {
	tree, err := buildLevel(d.Menu, d.Items, "")
	if err != nil {
		return nil, err
	}
	if err := menutree.Validate(tree); err != nil {
		return nil, err
	}
	return menutree.Normalize(tree, stride), nil
}

func buildLevel(menuCode string, items []Item, prefix string) ([]*menutree.Node, error) {
	nodes := make([]*menutree.Node, 0, len(items))
	for idx, item := range items {
		position := strconv.Itoa(idx)
		if prefix != "" {
			position = prefix + "." + position
		}
		id, err := itemID(menuCode, item, position)
		if err != nil {
			return nil, err
		}
		node := &menutree.Node{
			ID:   id,
			Name: strings.TrimSpace(item.Name),
			Path: strings.TrimSpace(item.Path),
			Icon: strings.TrimSpace(item.Icon),
		}
		if len(item.Children) > 0 {
			children, err := buildLevel(menuCode, item.Children, position)
			if err != nil {
				return nil, err
			}
			node.Children = children
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func itemID(menuCode string, item Item, position string) (uuid.UUID, error) {
	if raw := strings.TrimSpace(item.ID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("importer: item %q: %w", item.Name, err)
		}
		return id, nil
	}
	key := strings.TrimSpace(item.Path)
	if key == "" {
		key = "#" + position
	}
	id := identity.NodeUUID(menuCode, key)
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("importer: item %q: menu code is required to derive its id", item.Name)
	}
	return id, nil
}

// FromTree builds a document for a menu tree. Ids are always written so an
// export can be imported back without change.
func FromTree(menuCode string, tree menutree.Tree) Document {
	return Document{
		Menu:  menuCode,
		Items: itemsFrom(tree),
	}
}

func itemsFrom(nodes []*menutree.Node) []Item {
	items := make([]Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, Item{
			ID:       node.ID.String(),
			Name:     node.Name,
			Path:     node.Path,
			Icon:     node.Icon,
			Children: itemsFrom(node.Children),
		})
	}
	return items
}
