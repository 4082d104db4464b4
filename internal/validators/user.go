package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/nmaksimov/userdir/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldLogin targets the login identifier of an account.
	FieldLogin = "login"

	// FieldPassword targets the credential string of an account.
	FieldPassword = "password"

	// FieldName targets the display name of an account.
	FieldName = "name"

	// FieldUsers targets the item list of a batch creation request.
	FieldUsers = "users"
)

// ValidLogin reports whether s is an acceptable login: non-empty,
// not whitespace-only, and composed entirely of ASCII letters and digits.
func ValidLogin(s string) bool {
	return isASCIIAlphanumeric(s)
}

// ValidPassword reports whether s is an acceptable password.
// The rule is identical to the login rule.
func ValidPassword(s string) bool {
	return isASCIIAlphanumeric(s)
}

// ValidName reports whether s is an acceptable display name: non-empty and
// composed entirely of letters (any script) and spaces.
func ValidName(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

func isASCIIAlphanumeric(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// UserValidator implements the Validator interface for the account-related
// domain models: CreateUserItem, CreateUsersRequest, UpdateDetailsRequest,
// UpdatePasswordRequest and UpdateLoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateUserItem / *models.CreateUserItem
//   - models.CreateUsersRequest / *models.CreateUsersRequest
//   - models.UpdateDetailsRequest / *models.UpdateDetailsRequest
//   - models.UpdatePasswordRequest / *models.UpdatePasswordRequest
//   - models.UpdateLoginRequest / *models.UpdateLoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserItem:
		return v.validateCreateUserItem(ctx, value, fields...)
	case *models.CreateUserItem:
		return v.validateCreateUserItem(ctx, *value, fields...)

	case models.CreateUsersRequest:
		return v.validateCreateUsersRequest(ctx, value, fields...)
	case *models.CreateUsersRequest:
		return v.validateCreateUsersRequest(ctx, *value, fields...)

	case models.UpdateDetailsRequest:
		return v.validateUpdateDetailsRequest(ctx, value, fields...)
	case *models.UpdateDetailsRequest:
		return v.validateUpdateDetailsRequest(ctx, *value, fields...)

	case models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(ctx, value, fields...)
	case *models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(ctx, *value, fields...)

	case models.UpdateLoginRequest:
		return v.validateUpdateLoginRequest(ctx, value, fields...)
	case *models.UpdateLoginRequest:
		return v.validateUpdateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateUserItem validates a single account specification.
//
// Default validated fields (when none specified): Login, Password. The
// display name is unconstrained at creation; the name format rule applies
// only to details updates. Pass FieldName explicitly to opt in.
//
// Returns the first encountered validation error or nil.
func (v *UserValidator) validateCreateUserItem(ctx context.Context, item models.CreateUserItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if !ValidLogin(item.Login) {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if !ValidPassword(item.Password) {
				return ErrInvalidPassword
			}
		case FieldName:
			if !ValidName(item.Name) {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateUsersRequest validates a batch creation request.
//
// Default validated fields: Users.
//
// Every item is individually checked with validateCreateUserItem; the whole
// batch is rejected on the first invalid item so that no partial state can
// be committed downstream. The wrapped error names the index of the first
// invalid item.
func (v *UserValidator) validateCreateUsersRequest(ctx context.Context, request models.CreateUsersRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsers}
	}

	for _, f := range fields {
		switch f {
		case FieldUsers:
			if len(request.Users) == 0 {
				return ErrEmptyBatch
			}
			for i, item := range request.Users {
				if err := v.validateCreateUserItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateDetailsRequest validates a details update.
//
// Default validated fields: Name. Gender and Birthday carry no format
// constraints.
func (v *UserValidator) validateUpdateDetailsRequest(ctx context.Context, request models.UpdateDetailsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !ValidName(request.Name) {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdatePasswordRequest validates a password change.
//
// Default validated fields: Password (the new password). The old password is
// a comparison input, not a format-validated field, and is checked by the
// policy layer instead.
func (v *UserValidator) validateUpdatePasswordRequest(ctx context.Context, request models.UpdatePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if !ValidPassword(request.NewPassword) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateLoginRequest validates a login rename.
//
// Default validated fields: Login (the new login). Uniqueness among active
// accounts is a directory concern and is not checked here.
func (v *UserValidator) validateUpdateLoginRequest(ctx context.Context, request models.UpdateLoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if !ValidLogin(request.NewLogin) {
				return ErrInvalidLogin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
