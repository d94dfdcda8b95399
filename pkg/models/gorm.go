package models

// ModelsToAutoMigrate returns the models managed by gorm's AutoMigrate. It is
// used for SQLite databases; PostgreSQL schemas come from internal/migrate.
func ModelsToAutoMigrate() []interface{} {
	return []interface{}{
		&Comment{},
	}
}
