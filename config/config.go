package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS        = ""   // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""   // MySQL will be used if this is set
	SQLITE_FILE        = ""   // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS       = "0.0.0.0:8080"
	MEDIA_DIR          = "media" // Local directory for uploaded images (unless S3 is configured)
	S3_BUCKET          = ""      // Uploaded images go to S3 if this is set
	S3_REGION          = "us-east-1"
	S3_AUTH            = "" // "key:secret", falls back to the default AWS credential chain if empty
	REDIS_ADDR         = "" // Page cache goes to Redis if this is set, in-process memory otherwise
	SESSION_KEY        = "blog session key - change me"
	PAGINATOR_YA       = 10 // Posts per feed page
	FEED_CACHE_SECONDS = 20 // Home feed cache window
	MAX_IMAGE_WIDTH    = 1280
	DEBUG_MODE         = true
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("REDIS_ADDR", &REDIS_ADDR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("PAGINATOR_YA", &PAGINATOR_YA)
	readEnvInt("FEED_CACHE_SECONDS", &FEED_CACHE_SECONDS)
	readEnvInt("MAX_IMAGE_WIDTH", &MAX_IMAGE_WIDTH)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
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
