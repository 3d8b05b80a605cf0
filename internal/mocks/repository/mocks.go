// Package repository provides testify mocks for the domain repository
// interfaces, used by the usecase and delivery tests.
package repository

import (
	"context"

	"tasktrack/internal/domain/entity"
	"tasktrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new mock and registers expectation checks
// with the test's cleanup.
func NewMockUserRepository(t mockConstructorTestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := m.Called(ctx, username)

	var user *entity.User
	if v := ret.Get(0); v != nil {
		user = v.(*entity.User)
	}

	return user, ret.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := m.Called(ctx, user)

	return ret.Error(0)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func NewMockTaskRepository(t mockConstructorTestingT) *MockTaskRepository {
	m := &MockTaskRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	ret := m.Called(ctx, task)

	return ret.Error(0)
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Task, error) {
	ret := m.Called(ctx, owner)

	var tasks []*entity.Task
	if v := ret.Get(0); v != nil {
		tasks = v.([]*entity.Task)
	}

	return tasks, ret.Error(1)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID, owner string) (*entity.Task, error) {
	ret := m.Called(ctx, id, owner)

	var task *entity.Task
	if v := ret.Get(0); v != nil {
		task = v.(*entity.Task)
	}

	return task, ret.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	ret := m.Called(ctx, task)

	return ret.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	ret := m.Called(ctx, id, owner)

	return ret.Error(0)
}

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t mockConstructorTestingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := m.Called(ctx, fn)

	// A function return value lets tests run the callback against a mocked
	// factory and propagate its error, the way the real manager would.
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t mockConstructorTestingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := m.Called()

	var repo repository.UserRepository
	if v := ret.Get(0); v != nil {
		repo = v.(repository.UserRepository)
	}

	return repo
}

func (m *MockRepositoryFactory) TaskRepo() repository.TaskRepository {
	ret := m.Called()

	var repo repository.TaskRepository
	if v := ret.Get(0); v != nil {
		repo = v.(repository.TaskRepository)
	}

	return repo
}
