package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	user := models.User{UserID: 42, Username: "alice", IsActive: true}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok == true")
	}
	if got.UserID != 42 || got.Username != "alice" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Fatal("expected ok == false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Fatal("expected ok == false for wrong value type")
	}
}
