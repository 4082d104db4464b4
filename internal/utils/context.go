// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorLoginCtxKey is the key used to store the acting identity's login in
// the context. Used together with GetActorLoginFromContext for type-safe
// retrieval of the actor login from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActorLoginCtxKey, "admin")
var ActorLoginCtxKey = contextKey("actorLogin")

// GetActorLoginFromContext retrieves the acting identity's login from the
// context.
//
// Returns the login string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	actor, ok := utils.GetActorLoginFromContext(ctx)
//	if !ok {
//	    // handle missing actor in context
//	}
func GetActorLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(ActorLoginCtxKey).(string)
	return login, ok
}
