// Package config loads application configuration from environment variables.
// A .env file in the working directory is read once before the first lookup
// so local development does not need exported variables.
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// loadDotenv reads the optional .env file exactly once per process.  A
// missing file is fine; real environment variables always win because
// godotenv never overwrites existing keys.
func loadDotenv() {
	dotenvOnce.Do(func() { _ = godotenv.Load() })
}

// Books holds the runtime configuration of the book catalogue app.
type Books struct {
	Port   string // HTTP port to listen on
	DBPath string // path of the single-file store
}

// Cafes holds the runtime configuration of the cafe directory API.
type Cafes struct {
	Port   string // HTTP port to listen on
	DBPath string // path of the single-file store
	APIKey string // key required by DELETE /report-closed/:id
}

// Movies holds the runtime configuration of the movie tracker app.
type Movies struct {
	Port      string // HTTP port to listen on
	DBPath    string // path of the single-file store
	TMDBKey   string // api key for the movie-metadata service
	SecretKey string // secret for session protection
}

// Login holds the runtime configuration of the login demo.
type Login struct {
	Port      string // HTTP port to listen on
	SecretKey string // secret used to sign the session cookie
}

// LoadBooks reads the book app configuration.  Both values have defaults,
// so the app starts with no environment at all.
func LoadBooks() Books {
	loadDotenv()
	return Books{
		Port:   getenv("BOOKS_PORT", "5000"),
		DBPath: getenv("BOOKS_DB_PATH", "new-books-collection.db"),
	}
}

// LoadCafes reads the cafe API configuration.  The deletion API key is
// required; without it the report-closed endpoint could never succeed.
func LoadCafes() Cafes {
	loadDotenv()
	return Cafes{
		Port:   getenv("CAFES_PORT", "5001"),
		DBPath: getenv("CAFES_DB_PATH", "cafes.db"),
		APIKey: must("CAFES_API_KEY"),
	}
}

// LoadMovies reads the movie app configuration.  The metadata api key is
// required because the add flow cannot work without it.
func LoadMovies() Movies {
	loadDotenv()
	return Movies{
		Port:      getenv("MOVIES_PORT", "5002"),
		DBPath:    getenv("MOVIES_DB_PATH", "top-movies.db"),
		TMDBKey:   must("TMDB_API_KEY"),
		SecretKey: must("SECRET_KEY"),
	}
}

// LoadLogin reads the login demo configuration.
func LoadLogin() Login {
	loadDotenv()
	return Login{
		Port:      getenv("LOGIN_PORT", "5003"),
		SecretKey: must("SECRET_KEY"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits; per the startup contract there is no runtime recovery path.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or the given default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
