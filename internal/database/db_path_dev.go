//go:build !prod

package database

// GetDefaultDBPath returns the history database path for development mode.
// In dev mode, the history database is stored in the project root for easy access and debugging.
func GetDefaultDBPath() string {
	return "dbforge.db"
}

func IsDevelopment() bool {
	return true
}
