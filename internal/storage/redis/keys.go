package redis

import "fmt"

// Key prefix for all roster data
const keyPrefix = "gameutils"

// rosterKey returns the Redis key holding a roster document
func rosterKey(name string) string {
	return fmt.Sprintf("%s:roster:%s", keyPrefix, name)
}

// rosterIndexKey returns the Redis key for the SET of roster names
func rosterIndexKey() string {
	return fmt.Sprintf("%s:idx:rosters", keyPrefix)
}
