package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/service"
	"github.com/phrazzld/sahayak-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (*service.ProfileServiceImpl, *MockProfileStore, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	profiles := &MockProfileStore{}
	svc, err := service.NewProfileService(profiles, db, nil)
	require.NoError(t, err)
	return svc, profiles, sqlMock
}

func TestNewProfileService(t *testing.T) {
	t.Parallel()

	_, err := service.NewProfileService(nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnsureProfile(t *testing.T) {
	t.Parallel()

	subject := uuid.New()
	existing := &domain.Profile{
		ID:        subject,
		FullName:  "Kavya Nair",
		Email:     "kavya@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	t.Run("returns existing profile", func(t *testing.T) {
		svc, profiles, sqlMock := newProfileService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		profiles.On("GetByID", mock.Anything, subject).Return(existing, nil).Once()

		got, err := svc.EnsureProfile(context.Background(), domain.Identity{Subject: subject})
		require.NoError(t, err)
		assert.Same(t, existing, got)
		profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("creates missing profile from identity", func(t *testing.T) {
		tests := []struct {
			name     string
			identity domain.Identity
			wantName string
		}{
			{"full name", domain.Identity{Subject: subject, Email: "a@example.com", FullName: "Asha"}, "Asha"},
			{"email fallback", domain.Identity{Subject: subject, Email: "a@example.com"}, "a@example.com"},
			{"generic fallback", domain.Identity{Subject: subject}, domain.FallbackDisplayName},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc, profiles, sqlMock := newProfileService(t)
				sqlMock.ExpectBegin()
				sqlMock.ExpectCommit()
				profiles.On("GetByID", mock.Anything, subject).Return(nil, store.ErrProfileNotFound).Once()
				profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
					return p.ID == subject && p.FullName == tc.wantName && p.Email == tc.identity.Email
				})).Return(nil).Once()

				got, err := svc.EnsureProfile(context.Background(), tc.identity)
				require.NoError(t, err)
				assert.Equal(t, tc.wantName, got.FullName)
				profiles.AssertExpectations(t)
				assert.NoError(t, sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("re-reads after concurrent insert", func(t *testing.T) {
		svc, profiles, sqlMock := newProfileService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		profiles.On("GetByID", mock.Anything, subject).Return(nil, store.ErrProfileNotFound).Once()
		profiles.On("Create", mock.Anything, mock.Anything).Return(store.ErrProfileExists).Once()
		profiles.On("GetByID", mock.Anything, subject).Return(existing, nil).Once()

		got, err := svc.EnsureProfile(context.Background(), domain.Identity{Subject: subject})
		require.NoError(t, err)
		assert.Same(t, existing, got)
		profiles.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("store failure", func(t *testing.T) {
		svc, profiles, sqlMock := newProfileService(t)
		storeErr := errors.New("connection reset")
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		profiles.On("GetByID", mock.Anything, subject).Return(nil, storeErr).Once()

		got, err := svc.EnsureProfile(context.Background(), domain.Identity{Subject: subject})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc, _, _ := newProfileService(t)

		_, err := svc.EnsureProfile(context.Background(), domain.Identity{})
		assert.ErrorIs(t, err, service.ErrIdentityRequired)
	})
}
