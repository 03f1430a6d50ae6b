package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const namespace = "go-menu-editor"

// derive hashes namespace:kind:parts into a UUID. Blank parts yield uuid.Nil
// so unset codes never collide on a shared id.
func derive(kind string, parts ...string) uuid.UUID {
	segments := make([]string, 0, len(parts)+2)
	segments = append(segments, namespace, kind)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return uuid.Nil
		}
		segments = append(segments, part)
	}
	key := strings.Join(segments, ":")
	id, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err == nil && id != uuid.Nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}

// MenuUUID is the stable id of a menu code.
func MenuUUID(menuCode string) uuid.UUID {
	return derive("menu", menuCode)
}

// NodeUUID is the stable id of an imported node. The key is usually the
// node path, or its position path when the path is empty.
func NodeUUID(menuCode, key string) uuid.UUID {
	return derive("node", menuCode, key)
}
