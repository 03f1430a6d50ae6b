package menutree

import "errors"

var (
	ErrNotFound               = errors.New("menutree: node not found")
	ErrDepthExceeded          = errors.New("menutree: maximum depth exceeded")
	ErrSelfOrDescendantTarget = errors.New("menutree: cannot move a node into itself or its descendants")
	ErrOutOfBounds            = errors.New("menutree: index out of bounds")
	ErrDuplicateID            = errors.New("menutree: duplicate node id")
	ErrInvalidNode            = errors.New("menutree: invalid node")
	ErrInvalidSnapshot        = errors.New("menutree: snapshot does not describe a tree")
)
