package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	"github.com/ArturCreativeLab/studio-api/internal/mocks"
)

func TestResourceService_DomainDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRepository(ctrl)
	svc := NewResourceService(ResourceServiceOptions{Resources: repo})

	repo.EXPECT().List(gomock.Any()).Return([]*model.Resource{
		{ID: "1", URL: "https://docs.figma.com/some/page"},
		{ID: "2", URL: "https://sub.example.co.uk/path?q=1"},
		{ID: "3", URL: "http://localhost:3000/dev"},
		{ID: "4", URL: "::not a url::"},
	}, nil)

	resources, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "figma.com", resources[0].Domain)
	assert.Equal(t, "example.co.uk", resources[1].Domain)
	assert.Equal(t, "localhost", resources[2].Domain)
	assert.Empty(t, resources[3].Domain)
}

func TestResourceService_GetByID_DecoratesDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRepository(ctrl)
	svc := NewResourceService(ResourceServiceOptions{Resources: repo})

	repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(&model.Resource{
		ID:  "res-1",
		URL: "https://www.awwwards.com/inspiration",
	}, nil)

	resource, err := svc.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, "awwwards.com", resource.Domain)
}
