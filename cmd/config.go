package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	ExtAPIBaseURL      string
	ExtAPITimeout      time.Duration
	DispatchConfirmTTL time.Duration
}
