package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid username", username: "alice", wantErr: false},
		{name: "valid with underscore and digits", username: "alice_01", wantErr: false},
		{name: "minimum length", username: "abc", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLen+1), wantErr: true},
		{name: "spaces", username: "alice smith", wantErr: true},
		{name: "unicode", username: "алиса", wantErr: true},
		{name: "special characters", username: "alice!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "alice@example.com", wantErr: false},
		{name: "subdomain", email: "a.b@mail.example.org", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "alice.example.com", wantErr: true},
		{name: "no domain", email: "alice@", wantErr: true},
		{name: "no tld", email: "alice@example", wantErr: true},
		{name: "spaces", email: "alice @example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
}

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, ValidateFullName("Alice Smith"))
	assert.Error(t, ValidateFullName(""))
}
