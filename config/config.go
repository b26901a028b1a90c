package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true

	MYSQL_DSN   = ""           // MySQL will be used if this is set
	SQLITE_FILE = "gallery.db" // SQLite will be used if MYSQL_DSN is not configured

	ADMIN_USERNAME      = "admin"
	ADMIN_PASSWORD      = ""
	ADMIN_PASSWORD_HASH = "" // bcrypt hash; takes precedence over ADMIN_PASSWORD when set
	SESSION_SECRET      = ""

	UPLOADS_DIR = "uploads"
	TMP_DIR     = "/tmp" // Used as local scratch space in case of S3 bucket
	STATIC_DIR  = "static"

	MAX_UPLOAD_SIZE_MB = 20
	MAX_COMMENTERS     = 10  // distinct emails allowed to comment per artwork
	MAX_ARTWORKS       = 100 // total artworks the gallery will hold

	// Optional S3 storage. When S3_BUCKET is set, uploads go to S3 instead of UPLOADS_DIR
	S3_BUCKET   = ""
	S3_REGION   = "us-east-1"
	S3_ENDPOINT = ""
	S3_AUTH     = "" // "key:secret"
)

func init() {
	Load()
}

// Load re-reads all values from the environment. Tests call it again after
// changing env vars.
func Load() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("ADMIN_USERNAME", &ADMIN_USERNAME)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("ADMIN_PASSWORD_HASH", &ADMIN_PASSWORD_HASH)
	readEnvString("SESSION_SECRET", &SESSION_SECRET)
	readEnvString("UPLOADS_DIR", &UPLOADS_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("STATIC_DIR", &STATIC_DIR)
	readEnvInt("MAX_UPLOAD_SIZE_MB", &MAX_UPLOAD_SIZE_MB)
	readEnvInt("MAX_COMMENTERS", &MAX_COMMENTERS)
	readEnvInt("MAX_ARTWORKS", &MAX_ARTWORKS)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_AUTH", &S3_AUTH)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
