package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/postcraft/postcraft-gateway/config"
	"github.com/postcraft/postcraft-gateway/internal/storage/docstore"
)

// OpenStore is the StoreOpener used by /set_firebase_json.
func OpenStore(ctx context.Context, sa docstore.ServiceAccount) (docstore.Store, error) {
	s, err := docstore.Open(ctx, sa)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenStoreFromConfig connects to Firestore when credentials are present.
// It returns a nil store, not an error, when none are configured.
func OpenStoreFromConfig(ctx context.Context, cfg config.FirebaseConfig) (docstore.Store, error) {
	if !cfg.Configured() {
		log.Println("[warn] firebase credentials not set, project endpoints disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var (
		s   *docstore.FirestoreStore
		err error
	)
	if cfg.CredentialsPath != "" {
		s, err = docstore.OpenFile(ctx, cfg.CredentialsPath)
	} else {
		s, err = docstore.Open(ctx, docstore.ServiceAccountFromConfig(cfg))
	}
	if err != nil {
		return nil, fmt.Errorf("open firestore: %w", err)
	}

	log.Printf("[info] firestore connected project_id=%s collection=%s", s.ProjectID(), cfg.Collection)
	return s, nil
}
