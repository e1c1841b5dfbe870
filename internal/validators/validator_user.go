package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-engineer-hub/models"
)

// Field name constants accepted by [UserValidator].
const (
	// FieldUsername targets the trimmed username.
	FieldUsername = "username"

	// FieldEmail targets the trimmed email.
	FieldEmail = "email"

	// FieldFullName targets the display name.
	FieldFullName = "full_name"

	// FieldPassword targets the plain password of a register or login form.
	FieldPassword = "password"

	// FieldOldPassword and FieldNewPassword target a password change form.
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"

	// FieldProfileChanges requires an update request to carry at least one
	// change and rejects blank usernames and full names.
	FieldProfileChanges = "profile_changes"
)

// UserValidator checks account and profile forms.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldFullName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldFullName:
			if isBlank(req.FullName) {
				return ErrEmptyFullName
			}
		case FieldPassword:
			if isBlank(req.Password) {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *UserValidator) validateChangePasswordRequest(ctx context.Context, req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if req.OldPassword == "" {
				return ErrEmptyOldPassword
			}
		case FieldNewPassword:
			if isBlank(req.NewPassword) {
				return ErrEmptyNewPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateProfileRequest(ctx context.Context, req models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileChanges:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
			if req.Username != nil && isBlank(*req.Username) {
				return fmt.Errorf("%w: %s", ErrEmptyProfileKey, FieldUsername)
			}
			if req.FullName != nil && isBlank(*req.FullName) {
				return fmt.Errorf("%w: %s", ErrEmptyProfileKey, FieldFullName)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
