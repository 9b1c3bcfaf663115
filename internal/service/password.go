package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// verifyPassword reports whether supplied matches the stored credential.
// Three stored forms are accepted:
//   - plain text, compared verbatim (legacy rows)
//   - unsalted SHA-256 hex digest
//   - salted bcrypt hash
func verifyPassword(stored, supplied string) bool {
	if stored == "" {
		return false
	}

	if utils.EqualConstantTime(stored, supplied) {
		return true
	}

	if utils.EqualConstantTime(stored, utils.SHA256Hex(supplied)) {
		return true
	}

	return utils.IsBcryptHash(stored) && utils.BcryptMatches(stored, supplied)
}

// passwordEncoder turns a new password into its stored form.
type passwordEncoder func(password string) (string, error)

// newPasswordEncoder returns the encoder of the given storage mode.
func newPasswordEncoder(storage string) (passwordEncoder, error) {
	switch storage {
	case config.PasswordStoragePlain, "":
		return func(password string) (string, error) { return password, nil }, nil
	case config.PasswordStorageSHA256:
		return func(password string) (string, error) { return utils.SHA256Hex(password), nil }, nil
	case config.PasswordStorageBcrypt:
		return encodeBcrypt, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPasswordStorage, storage)
	}
}

// encodeBcrypt hashes password with bcrypt. bcrypt only reads the first 72
// bytes, so longer passwords are rejected as ErrPasswordTooLong.
func encodeBcrypt(password string) (string, error) {
	hash, err := utils.BcryptHash(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	return hash, err
}
