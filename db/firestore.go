package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"go-atollmap/types"
)

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client using the base64
// encoded credentials from FIREBASE_CREDENTIALS.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Firestore credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firestore: %v", err)
		}

		client, err = app.Firestore(context.Background())
		if err != nil {
			log.Fatalf("Error getting Firestore client: %v", err)
		}
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// FirestoreSource reads the island collection from Firestore. It is the
// network arm of the load boundary; the resulting document matches the file
// source's shape.
type FirestoreSource struct {
	Client *firestore.Client
}

func (s FirestoreSource) Load() (*types.RawDataset, error) {
	islands, err := LoadIslandsFromFirestore(s.Client)
	if err != nil {
		return nil, err
	}
	return &types.RawDataset{
		Metadata: types.DatasetMetadata{
			Title:        "Maldives Infrastructure Projects Data",
			TotalIslands: len(islands),
		},
		Islands: islands,
	}, nil
}

// LoadIslandsFromFirestore reads every document of the islands collection as
// a raw island record. Documents that fail to decode are skipped; an
// iteration failure aborts the whole load.
func LoadIslandsFromFirestore(client *firestore.Client) ([]types.RawIsland, error) {
	ctx := context.Background()
	iter := client.Collection("islands").Documents(ctx)

	var islands []types.RawIsland
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating island documents: %w", err)
		}

		var raw types.RawIsland
		if err := doc.DataTo(&raw); err != nil {
			log.Printf("Skipping malformed island document %s: %v", doc.Ref.ID, err)
			continue
		}
		islands = append(islands, raw)
	}

	log.Printf("Loaded %d raw island records from Firestore", len(islands))
	return islands, nil
}
