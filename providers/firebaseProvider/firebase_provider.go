package firebaseprovider

import (
	"context"

	"labtrack/providers"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *firebaseauth.Client
}

// NewFirebaseProvider builds an auth client from a service account file.
func NewFirebaseProvider(ctx context.Context, credentialsFile string) (providers.FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &firebaseService{client: authClient}, nil
}

func (f *firebaseService) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	return f.client.VerifyIDToken(ctx, idToken)
}

func (f *firebaseService) GetUserByUID(ctx context.Context, uid string) (*firebaseauth.UserRecord, error) {
	return f.client.GetUser(ctx, uid)
}
