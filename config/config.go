package config

import (
	"log"
	"os"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string

	// Two logical targets: article cover images and article content images.
	BucketCovers string
	BucketImages string
	URLCovers    string
	URLImages    string

	// Optional; event publishing is disabled when empty.
	NATSURL string
}

func Load() Config {
	return Config{
		Port:     envOr("PORT", "3000"),
		MongoURI: mustEnv("MONGO_URI"),
		MongoDB:  envOr("MONGO_DB", "atletidb"),

		S3Endpoint:  mustEnv("S3_ENDPOINT"),
		S3Region:    os.Getenv("AWS_REGION"),
		S3AccessKey: mustEnv("AWS_ACCESS_KEY_ID"),
		S3SecretKey: mustEnv("AWS_SECRET_ACCESS_KEY"),

		BucketCovers: mustEnv("AWS_S3_BUCKET_COVERS"),
		BucketImages: mustEnv("AWS_S3_BUCKET_IMAGES"),
		URLCovers:    mustEnv("AWS_S3_URL_COVERS"),
		URLImages:    mustEnv("AWS_S3_URL_IMAGES"),

		NATSURL: os.Getenv("NATS_URL"),
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s is not set", key)
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
