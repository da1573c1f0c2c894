package gorm

import "github.com/google/uuid"

// assignID fills an empty primary key with a new UUID. SQLite has no gen_random_uuid().
func assignID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
