package application

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID rejects malformed references before they reach the store.
func parseID(raw, what string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, validationError("%s id is required", what)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, validationError("invalid %s id %q", what, raw)
	}
	return id, nil
}
