// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetUser(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		user    models.User
		repoErr error
		wantErr error
	}{
		{name: "found", user: storedUser},
		{name: "missing", repoErr: store.ErrNoUserWasFound, wantErr: ErrUserNotFound},
		{name: "store error", repoErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockUserRepository(gomock.NewController(t))
			repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(tt.user, tt.repoErr)

			got, err := NewUserService(repo, logger.Nop()).GetUser(context.Background(), 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, storedUser.Public(), got)
		})
	}
}
