package service

import (
	"context"
	"testing"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockPolicyRepo  *mocks.MockPolicyRepo
	mockProvider    *mocks.MockConferenceProvider
	mockDispatcher  *mocks.MockDispatcher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	policyRepo := mocks.NewMockPolicyRepo(ctrl)
	dm.EXPECT().Policy().Return(policyRepo).AnyTimes()

	// Transactions pass straight through to the same mocked repos.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	provider := mocks.NewMockConferenceProvider(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockPolicyRepo:  policyRepo,
		mockProvider:    provider,
		mockDispatcher:  dispatcher,
	}

	// validate service creation
	instance := NewInstance(dm, provider, dispatcher, NotifierOptions{})
	require.NotNil(t, instance)

	return
}
