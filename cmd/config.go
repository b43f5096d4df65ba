package cmd

// Config carries the environment configuration for the application.
type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	RabbitMqURL string
}
