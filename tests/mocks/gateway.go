package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(ctx context.Context, fileBytes []byte, mimeType, prompt string) (string, error) {
	args := m.Called(ctx, fileBytes, mimeType, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentExtractor) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockBiometricComparator struct {
	mock.Mock
}

func (m *MockBiometricComparator) Compare(ctx context.Context, imageA, imageB []byte) (bool, float64, error) {
	args := m.Called(ctx, imageA, imageB)
	return args.Bool(0), args.Get(1).(float64), args.Error(2)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, fileBytes []byte, objectName, contentType string) (string, error) {
	args := m.Called(ctx, fileBytes, objectName, contentType)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(toAddress, subject, body string) error {
	args := m.Called(toAddress, subject, body)
	return args.Error(0)
}
