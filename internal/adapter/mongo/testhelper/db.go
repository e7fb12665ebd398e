// Package testhelper starts a throwaway MongoDB for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	mongoadapter "github.com/heartmarshall/promptcraft-backend/internal/adapter/mongo"
	"github.com/heartmarshall/promptcraft-backend/internal/config"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupCollection starts a shared MongoDB container (once per test run) and
// returns a fresh, uniquely named collection. The client is disconnected via
// t.Cleanup.
func SetupCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to start mongo: %v", initErr)
	}

	cfg := config.MongoConfig{
		URI:            sharedURI,
		Database:       "promptcraft_test",
		Collection:     "prompts_" + uuid.New().String()[:8],
		ConnectTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongoadapter.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return mongoadapter.Collection(client, cfg)
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForLog("Waiting for connections").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port()), nil
}
