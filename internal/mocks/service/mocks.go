// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	ret := m.Called(password, hash)

	return ret.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t mockConstructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(username string) (string, error) {
	ret := m.Called(username)

	return ret.String(0), ret.Error(1)
}

func (m *MockTokenService) Validate(token string) (string, error) {
	ret := m.Called(token)

	return ret.String(0), ret.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	ret := m.Called()

	return ret.Get(0).(time.Duration)
}
