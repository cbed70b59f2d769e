package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ArturCreativeLab/studio-api/internal/mocks"
)

func newTestDashboardService(ctrl *gomock.Controller) (*DashboardService, DashboardServiceOptions) {
	opts := DashboardServiceOptions{
		Projects:  mocks.NewMockProjectRepository(ctrl),
		Offerings: mocks.NewMockOfferingRepository(ctrl),
		Resources: mocks.NewMockResourceRepository(ctrl),
		Articles:  mocks.NewMockResearchRepository(ctrl),
		Briefings: mocks.NewMockBriefingRepository(ctrl),
	}
	return NewDashboardService(opts), opts
}

func TestDashboardService_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, opts := newTestDashboardService(ctrl)

	opts.Projects.(*mocks.MockProjectRepository).EXPECT().Count(gomock.Any()).Return(3, nil)
	opts.Offerings.(*mocks.MockOfferingRepository).EXPECT().Count(gomock.Any()).Return(5, nil)
	opts.Resources.(*mocks.MockResourceRepository).EXPECT().Count(gomock.Any()).Return(7, nil)
	opts.Articles.(*mocks.MockResearchRepository).EXPECT().Count(gomock.Any()).Return(2, nil)
	opts.Briefings.(*mocks.MockBriefingRepository).EXPECT().Count(gomock.Any()).Return(1, nil)

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &DashboardCounts{
		Projects:  3,
		Offerings: 5,
		Resources: 7,
		Articles:  2,
		Briefings: 1,
	}, counts)
}

func TestDashboardService_Counts_SingleFailureFailsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, opts := newTestDashboardService(ctrl)

	countErr := errors.New("count failed")
	opts.Projects.(*mocks.MockProjectRepository).EXPECT().Count(gomock.Any()).Return(0, countErr)
	opts.Offerings.(*mocks.MockOfferingRepository).EXPECT().Count(gomock.Any()).Return(5, nil).AnyTimes()
	opts.Resources.(*mocks.MockResourceRepository).EXPECT().Count(gomock.Any()).Return(7, nil).AnyTimes()
	opts.Articles.(*mocks.MockResearchRepository).EXPECT().Count(gomock.Any()).Return(2, nil).AnyTimes()
	opts.Briefings.(*mocks.MockBriefingRepository).EXPECT().Count(gomock.Any()).Return(1, nil).AnyTimes()

	counts, err := svc.Counts(context.Background())
	require.ErrorIs(t, err, countErr)
	assert.Nil(t, counts)
}
