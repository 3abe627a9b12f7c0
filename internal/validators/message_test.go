// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-kudos-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.MessageInput {
	return models.MessageInput{
		SenderName:    "Ana",
		RecipientName: "Bruno",
		Body:          "Obrigado pela ajuda!",
	}
}

func TestNewMessageValidator(t *testing.T) {
	require.NotNil(t, NewMessageValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewMessageValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_MessageInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.MessageInput)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(in *models.MessageInput) {}},
		{name: "empty sender", mutate: func(in *models.MessageInput) { in.SenderName = "" }, wantErr: ErrEmptySenderName},
		{name: "blank recipient", mutate: func(in *models.MessageInput) { in.RecipientName = "  \t" }, wantErr: ErrEmptyRecipientName},
		{name: "blank body", mutate: func(in *models.MessageInput) { in.Body = "\n" }, wantErr: ErrEmptyBody},
		{name: "long sender", mutate: func(in *models.MessageInput) { in.SenderName = strings.Repeat("a", 256) }, wantErr: ErrNameTooLong},
		{name: "255 runes is fine", mutate: func(in *models.MessageInput) { in.RecipientName = strings.Repeat("é", 255) }},
		{name: "scoped to body", mutate: func(in *models.MessageInput) { in.SenderName = "" }, fields: []string{FieldBody}},
		{name: "unknown field", mutate: func(in *models.MessageInput) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewMessageValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(context.Background(), &in, tt.fields...), tt.wantErr)
		})
	}
}

func TestValidate_Message(t *testing.T) {
	v := NewMessageValidator()
	in := validInput()

	assert.NoError(t, v.Validate(context.Background(), in.ToMessage(3)))
	assert.ErrorIs(t, v.Validate(context.Background(), in.ToMessage(0)), ErrInvalidMessageID)

	noBody := in.ToMessage(3)
	noBody.Body = " "
	assert.ErrorIs(t, v.Validate(context.Background(), &noBody), ErrEmptyBody)

	// id is not checked when fields are scoped
	assert.NoError(t, v.Validate(context.Background(), in.ToMessage(0), FieldSenderName, FieldBody))
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewMessageValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "rh.admin", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Password: "x"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.LoginRequest{Email: "rh.admin"}), ErrEmptyPassword)
}
