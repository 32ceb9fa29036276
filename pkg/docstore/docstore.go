// Package docstore keeps profiles and reads faculty and publication documents in MongoDB
package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	facultyCollection      = "faculty"
	publicationsCollection = "publications"
	profilesCollection     = "profiles"
)

// Config defines MongoDB connection parameters
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration // connect and ping timeout
}

// Store holds the mongo client and the repositories built on it
type Store struct {
	Profiles *ProfileRepository
	Faculty  *FacultyRepository

	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB, pings it and makes repositories for cfg.Database
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Database == "" {
		cfg.Database = "academicworld"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	lgr.Printf("[INFO] connected to mongo, database %q", cfg.Database)
	return &Store{
		Profiles: &ProfileRepository{coll: db.Collection(profilesCollection)},
		Faculty:  &FacultyRepository{faculty: db.Collection(facultyCollection), publications: db.Collection(publicationsCollection)},
		client:   client,
		db:       db,
	}, nil
}

// Ping verifies the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
