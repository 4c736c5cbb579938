package service_test

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockProfileStore mocks the store.ProfileStore interface
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations cover transactional calls.
func (m *MockProfileStore) WithTx(_ *sql.Tx) store.ProfileStore {
	return m
}

// MockAssignmentStore mocks the store.AssignmentStore interface
type MockAssignmentStore struct {
	mock.Mock
}

func (m *MockAssignmentStore) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Assignment, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) Create(ctx context.Context, assignment *domain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

// MockStudentStore mocks the store.StudentStore interface
type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Student, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Student), args.Error(1)
}

func (m *MockStudentStore) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
