package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Document is a single record read from a collection.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is the subset of document-store operations the gateway needs.
type Store interface {
	ListDocuments(ctx context.Context, collection string) ([]Document, error)
	Ping(ctx context.Context, collection string) error
	ProjectID() string
	Close() error
}

var firestoreScopes = []string{
	"https://www.googleapis.com/auth/datastore",
	"https://www.googleapis.com/auth/cloud-platform",
}

// FirestoreStore is a Store backed by Cloud Firestore.
type FirestoreStore struct {
	client    *firestore.Client
	projectID string
}

// Open connects to Firestore with the given service account.
func Open(ctx context.Context, sa ServiceAccount) (*FirestoreStore, error) {
	raw, err := sa.JSON()
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, firestoreScopes...)
	if err != nil {
		return nil, fmt.Errorf("parse firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: sa.ProjectID}, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &FirestoreStore{client: client, projectID: sa.ProjectID}, nil
}

// OpenFile connects to Firestore with a service-account JSON file.
func OpenFile(ctx context.Context, path string) (*FirestoreStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read firebase credentials: %w", err)
	}

	var sa ServiceAccount
	if err := json.Unmarshal(b, &sa); err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}
	return Open(ctx, sa)
}

func (s *FirestoreStore) ProjectID() string { return s.projectID }

// ListDocuments reads every document of collection in store iteration order.
func (s *FirestoreStore) ListDocuments(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// Ping reads at most one document to verify connectivity and permissions.
func (s *FirestoreStore) Ping(ctx context.Context, collection string) error {
	iter := s.client.Collection(collection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("ping %s: %w", collection, err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
