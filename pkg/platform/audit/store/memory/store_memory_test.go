package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "presence/pkg/domain"
	"presence/pkg/platform/audit"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) TestListByUser() {
	ctx := context.Background()
	alice := id.NewUserID()
	bob := id.NewUserID()

	s.Require().NoError(s.store.Emit(ctx, audit.Event{UserID: alice, Action: "check_in_recorded"}))
	s.Require().NoError(s.store.Emit(ctx, audit.Event{UserID: bob, Action: "check_in_recorded"}))
	s.Require().NoError(s.store.Emit(ctx, audit.Event{UserID: alice, Action: "check_out_recorded"}))

	events, err := s.store.ListByUser(ctx, alice)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("check_in_recorded", events[0].Action)
	s.Equal("check_out_recorded", events[1].Action)

	s.Run("returned slice is a copy", func() {
		events[0].Action = "mutated"
		again, err := s.store.ListByUser(ctx, alice)
		s.Require().NoError(err)
		s.Equal("check_in_recorded", again[0].Action)
	})
}

func (s *InMemoryStoreSuite) TestListRecent() {
	ctx := context.Background()
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			UserID:    id.NewUserID(),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Action:    "check_in_recorded",
		}))
	}

	recent, err := s.store.ListRecent(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(base.Add(2*time.Minute), recent[0].Timestamp)
	s.Equal(base.Add(time.Minute), recent[1].Timestamp)

	s.store.Clear()
	recent, err = s.store.ListRecent(ctx, 10)
	s.Require().NoError(err)
	s.Empty(recent)
}
