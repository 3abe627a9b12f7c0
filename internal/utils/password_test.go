package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIsBcryptHash(t *testing.T) {
	assert.True(t, IsBcryptHash("$2a$10$abc"))
	assert.True(t, IsBcryptHash("$2b$12$abc"))
	assert.True(t, IsBcryptHash("$2y$10$abc"))
	assert.False(t, IsBcryptHash("plain-password"))
	assert.False(t, IsBcryptHash(""))
}

func TestComparePassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		configured string
		provided   string
		want       bool
	}{
		{name: "plain match", configured: "s3cret", provided: "s3cret", want: true},
		{name: "plain mismatch", configured: "s3cret", provided: "S3cret", want: false},
		{name: "bcrypt match", configured: string(hash), provided: "s3cret", want: true},
		{name: "bcrypt mismatch", configured: string(hash), provided: "nope", want: false},
		{name: "nothing configured", configured: "", provided: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComparePassword(tt.configured, tt.provided))
		})
	}
}
