package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	AnthropicKey string
	ClaudeModel  string

	JiraBaseURL string
	JiraEmail   string
	JiraToken   string
	JiraProject string

	SlackBotToken string
}

func Load() *Config {

	portStr := os.Getenv("DB_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 5432 // fallback
	}

	model := os.Getenv("CLAUDE_MODEL")
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	project := os.Getenv("JIRA_DEFAULT_PROJECT")
	if project == "" {
		project = "SANAS"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     port,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		ClaudeModel:  model,

		JiraBaseURL: os.Getenv("JIRA_BASE_URL"),
		JiraEmail:   os.Getenv("JIRA_EMAIL"),
		JiraToken:   os.Getenv("JIRA_API_TOKEN"),
		JiraProject: project,

		SlackBotToken: os.Getenv("SLACK_BOT_TOKEN"),
	}
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
