package dnd5e_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-levelup/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/dnd-levelup/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

type FeatureSourceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *mockdnd5e.MockClient
	source     *dnd5e.FeatureSource
}

func (s *FeatureSourceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = mockdnd5e.NewMockClient(s.ctrl)
	s.source = dnd5e.NewFeatureSource(&dnd5e.FeatureSourceConfig{Client: s.mockClient})
}

func (s *FeatureSourceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeatureSourceSuite(t *testing.T) {
	suite.Run(t, new(FeatureSourceTestSuite))
}

func (s *FeatureSourceTestSuite) expectFighter() {
	s.mockClient.EXPECT().GetClassFeatures("fighter", gomock.Any()).
		DoAndReturn(func(_ string, level int) ([]*rulebook.Feature, error) {
			if level == 2 {
				return []*rulebook.Feature{{Key: "action-surge-1-use", Name: "Action Surge (1 use)", Level: 2}}, nil
			}
			return nil, nil
		}).Times(20)
}

func (s *FeatureSourceTestSuite) TestPrefetchesOnceAndCaches() {
	s.expectFighter()

	features, err := s.source.ClassFeatures("fighter", 2)
	s.Require().NoError(err)
	s.Require().Len(features, 1)
	s.Equal("action-surge-1-use", features[0].Key)

	features, err = s.source.ClassFeatures("fighter", 3)
	s.Require().NoError(err)
	s.Empty(features)
}

func (s *FeatureSourceTestSuite) TestConcurrentFirstLoadFetchesOnce() {
	s.expectFighter()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.source.ClassFeatures("fighter", 2)
			s.NoError(err)
		}()
	}
	wg.Wait()
}

func (s *FeatureSourceTestSuite) TestErrorIsNotCached() {
	s.mockClient.EXPECT().GetClassFeatures("wizard", gomock.Any()).
		Return(nil, errors.New("rate limited")).Times(20)

	_, err := s.source.ClassFeatures("wizard", 1)
	s.Error(err)

	s.mockClient.EXPECT().GetClassFeatures("wizard", gomock.Any()).Return(nil, nil).Times(20)

	_, err = s.source.ClassFeatures("wizard", 1)
	s.NoError(err)
}
