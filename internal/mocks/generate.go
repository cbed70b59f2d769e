// Package mocks provides mock implementations for testing the studio API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockProfileRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(profile, nil)
package mocks

// Generate mocks for profile and credential repositories from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_repository_mock.go github.com/ArturCreativeLab/studio-api/internal/core ProfileRepository,CredentialRepository

// Generate mocks for the five content repositories from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=content_repository_mock.go github.com/ArturCreativeLab/studio-api/internal/core ProjectRepository,OfferingRepository,ResourceRepository,ResearchRepository,BriefingRepository
