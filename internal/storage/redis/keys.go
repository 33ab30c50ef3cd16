package redis

import "strings"

// sessionSlotSuffix matches storage.SessionKey so session slots can carry a TTL
const sessionSlotSuffix = ":mindcare_user"

// redisKey returns the namespaced Redis key for a storage key
func (s *Storage) redisKey(key string) string {
	if s.cfg.KeyPrefix == "" {
		return key
	}
	return s.cfg.KeyPrefix + ":" + key
}

// isSessionSlot reports whether key is a per-profile session slot
func isSessionSlot(key string) bool {
	return strings.HasSuffix(key, sessionSlotSuffix)
}
