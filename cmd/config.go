package cmd

import "time"

// Config carries every runtime setting the service reads from the
// environment. Populated in main, consumed by the composition root.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	PaymentConfirmationQueueURL string
	CustomerErasureQueueURL     string
	NotificationQueueURL        string

	CatalogBaseURL   string
	DirectoryBaseURL string

	ClientTimeout    time.Duration
	ClientMaxElapsed time.Duration
}
