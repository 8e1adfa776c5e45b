package firebase

import (
	"context"
	"testing"

	"bootwatcher/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseClient_RequiresDatabaseURL(t *testing.T) {
	_, err := NewDatabaseClient(context.Background(), nil)
	assert.Error(t, err)

	_, err = NewDatabaseClient(context.Background(), &config.FirebaseConfig{ProjectID: "demo"})
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	opts, err := clientOptions(&config.FirebaseConfig{CredentialsPath: "/secrets/key.json"})
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	opts, err = clientOptions(&config.FirebaseConfig{ServiceAccount: &config.ServiceAccountConfig{
		PrivateKey:  "key",
		ClientEmail: "relay@demo.iam.gserviceaccount.com",
	}})
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	opts, err = clientOptions(&config.FirebaseConfig{})
	require.NoError(t, err)
	assert.Empty(t, opts)
}
