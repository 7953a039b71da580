package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-atollmap/cronjobs"
	"go-atollmap/db"
	"go-atollmap/filters"
	"go-atollmap/geocode"
	"go-atollmap/ingest"
	"go-atollmap/processor"
	"go-atollmap/routes"
	"go-atollmap/surface"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Pick the dataset source. Firestore when credentials are configured,
	// the local JSON file otherwise.
	var source db.Source
	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = "maldives_projects_data.json"
	}
	source = db.FileSource{Path: datasetPath}

	if os.Getenv("FIREBASE_CREDENTIALS") != "" {
		firestoreClient, err := db.InitFirestore()
		if err != nil {
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer db.CloseFirestore() // Firestore client is closed on exit
		source = db.FirestoreSource{Client: firestoreClient}
		fmt.Println("Using Firestore island source")
	} else {
		fmt.Println("Using dataset file:", datasetPath)
	}

	// One-shot initial load; a dead source aborts initialization.
	dataset, err := source.Load()
	if err != nil {
		log.Fatalf("Failed to load island dataset: %v", err)
	}

	islands := processor.Normalize(dataset.Islands)
	if len(islands) == 0 {
		log.Fatalf("Dataset contains no islands with valid coordinates")
	}

	rec := surface.NewRecorder()
	engine := filters.NewEngine(islands, rec)

	// Optional OpenAI client for atoll briefings.
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(apiKey)
	}

	// Optional geocoder for CSV ingest rows without map links.
	converter := &ingest.Converter{}
	if os.Getenv("MAPS_CREDENTIALS") != "" {
		mapsClient, err := geocode.InitMapsClient()
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
		converter.Geocoder = geocode.Client{Maps: mapsClient}
	}

	// Initialize cron jobs
	cronjobs.InitCronJobs(os.Getenv("RELOAD_SCHEDULE"), source, engine)

	r := routes.SetupRouter(engine, openaiClient, converter)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
