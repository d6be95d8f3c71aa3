package domain

import "strconv"

// ProfileKey indexes cached user profiles. It is a comparable value type:
// two keys hit the same entry iff both components are equal.
type ProfileKey struct {
	GuildID uint64
	UserID  uint64
}

func (k ProfileKey) CacheKey() string {
	return strconv.FormatUint(k.GuildID, 10) + ":" + strconv.FormatUint(k.UserID, 10)
}

// PageKey indexes cached leaderboard pages. Boards sharing this key shape
// must live in separate stores (or namespaces) so pages never collide.
type PageKey struct {
	GuildID uint64
	Page    int
}

func (k PageKey) CacheKey() string {
	return strconv.FormatUint(k.GuildID, 10) + ":" + strconv.Itoa(k.Page)
}
