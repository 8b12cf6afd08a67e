package initializers

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/Burgamansi/CarmoPlusUltra/store"
)

var AppStore store.Store

// ConnectStore wires the document store. With FIREBASE_PROJECT_ID set
// it opens Firestore (service account file or Application Default
// Credentials, same as the push setup used to); without it, local runs
// get an empty in-memory store.
func ConnectStore() {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Println("FIREBASE_PROJECT_ID not set, using in-memory document store")
		AppStore = store.NewMemoryStore()
		return
	}

	ctx := context.Background()
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
		log.Println("Firebase initialized with service account file")
	} else {
		log.Println("Firebase initialized with Application Default Credentials")
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		log.Fatal(err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatal(err)
	}

	AppStore = store.NewFirestoreStore(client)
}
