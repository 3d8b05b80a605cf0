// Package usecase provides hand-written testify mocks for the usecase
// interfaces consumed by the delivery layer.
package usecase

import (
	"context"
	"testing"

	"tasktrack/internal/domain/entity"
	"tasktrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a new mock bound to the test lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := m.Called(ctx, input)

	var out *usecase.RegisterOutput
	if v := ret.Get(0); v != nil {
		out = v.(*usecase.RegisterOutput)
	}

	return out, ret.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := m.Called(ctx, input)

	var out *usecase.LoginOutput
	if v := ret.Get(0); v != nil {
		out = v.(*usecase.LoginOutput)
	}

	return out, ret.Error(1)
}

// MockTaskUsecase is a mock implementation of usecase.TaskUsecase.
type MockTaskUsecase struct {
	mock.Mock
}

// NewMockTaskUsecase creates a new mock bound to the test lifecycle.
func NewMockTaskUsecase(t *testing.T) *MockTaskUsecase {
	m := &MockTaskUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskUsecase) CreateTask(ctx context.Context, owner string, input *usecase.TaskInput) (*entity.Task, error) {
	ret := m.Called(ctx, owner, input)

	var task *entity.Task
	if v := ret.Get(0); v != nil {
		task = v.(*entity.Task)
	}

	return task, ret.Error(1)
}

func (m *MockTaskUsecase) ListTasks(ctx context.Context, owner string) ([]*entity.Task, error) {
	ret := m.Called(ctx, owner)

	var tasks []*entity.Task
	if v := ret.Get(0); v != nil {
		tasks = v.([]*entity.Task)
	}

	return tasks, ret.Error(1)
}

func (m *MockTaskUsecase) GetTask(ctx context.Context, id uuid.UUID, owner string) (*entity.Task, error) {
	ret := m.Called(ctx, id, owner)

	var task *entity.Task
	if v := ret.Get(0); v != nil {
		task = v.(*entity.Task)
	}

	return task, ret.Error(1)
}

func (m *MockTaskUsecase) UpdateTask(ctx context.Context, id uuid.UUID, owner string, input *usecase.TaskInput) (*entity.Task, error) {
	ret := m.Called(ctx, id, owner, input)

	var task *entity.Task
	if v := ret.Get(0); v != nil {
		task = v.(*entity.Task)
	}

	return task, ret.Error(1)
}

func (m *MockTaskUsecase) DeleteTask(ctx context.Context, id uuid.UUID, owner string) error {
	ret := m.Called(ctx, id, owner)

	return ret.Error(0)
}
