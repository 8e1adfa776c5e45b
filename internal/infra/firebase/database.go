// Package firebase builds the Firebase Admin SDK clients used by the relay.
package firebase

import (
	"context"

	"bootwatcher/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewDatabaseClient initializes a Firebase app and returns its realtime database client.
// Credentials come from a key file when configured, otherwise from the inline
// service account, otherwise from Application Default Credentials.
func NewDatabaseClient(ctx context.Context, cfg *config.FirebaseConfig) (*db.Client, error) {
	if cfg == nil || cfg.DatabaseURL == "" {
		return nil, errors.New("firebase databaseUrl is required")
	}

	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.DatabaseURL,
		ProjectID:   cfg.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return client, nil
}

func clientOptions(cfg *config.FirebaseConfig) ([]option.ClientOption, error) {
	if cfg.CredentialsPath != "" {
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}, nil
	}

	credentials, err := cfg.CredentialsJSON()
	if err != nil {
		return nil, err
	}
	if credentials != nil {
		return []option.ClientOption{option.WithCredentialsJSON(credentials)}, nil
	}

	return nil, nil
}
