package config

import "time"

// DefaultFilePath is used when neither CONFIG nor -c/-config is given.
const DefaultFilePath = "conf/app.yaml"

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-blog",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
			LogFormat:     "json",
		},
		Server: Server{
			HTTPAddress:         "0.0.0.0:80",
			AllowedOrigins:      []string{"http://localhost:8080"},
			RecentArticlesLimit: 10,
			ShutdownTimeout:     10 * time.Second,
		},
		Storage: Storage{
			Redis: Redis{
				CounterTimeout: 20 * time.Millisecond,
			},
		},
		Access: Access{
			ProtectedPaths: []string{"/admin/*"},
			ExemptPaths:    []string{"/admin/login"},
		},
	}
}
