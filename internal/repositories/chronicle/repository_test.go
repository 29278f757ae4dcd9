package chronicle_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-caravan/internal/repositories/chronicle"
	"github.com/KirkDiggler/rpg-caravan/internal/testutils"
)

var recordedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behavior against both implementations
type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repo  chronicle.Repository
	mr    *miniredis.Miniredis
	redis bool
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{redis: true})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	fixed := &clock.Fixed{At: recordedAt}

	if !s.redis {
		s.repo = chronicle.NewInMemory(fixed)
		return
	}

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	repo, err := chronicle.NewRedis(&chronicle.RedisConfig{Client: client, Clock: fixed})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) appendLine(session string, day int, text string) *chronicle.Entry {
	out, err := s.repo.Append(s.ctx, &chronicle.AppendInput{
		SessionID: session,
		Day:       day,
		Level:     narrative.LevelEvent,
		Text:      text,
	})
	s.Require().NoError(err)
	return out.Entry
}

func (s *RepositoryTestSuite) TestAppendAssignsSequence() {
	first := s.appendLine("run", 1, "--- Day 1 ---")
	second := s.appendLine("run", 1, "The party gained 4 x Food!")
	other := s.appendLine("other", 3, "elsewhere")

	s.Equal(int64(1), first.Seq)
	s.Equal(int64(2), second.Seq)
	s.Equal(int64(1), other.Seq)
	s.Equal(recordedAt, first.RecordedAt)
}

func (s *RepositoryTestSuite) TestListWindows() {
	for i, text := range []string{"a", "b", "c", "d"} {
		s.appendLine("run", i+1, text)
	}

	all, err := s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "run"})
	s.Require().NoError(err)
	s.Equal(4, all.Total)
	s.Require().Len(all.Entries, 4)
	s.Equal("a", all.Entries[0].Text)
	s.Equal(4, all.Entries[3].Day)
	s.Equal(narrative.LevelEvent, all.Entries[3].Level)
	s.Equal(recordedAt, all.Entries[3].RecordedAt)

	page, err := s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "run", Offset: 1, Limit: 2})
	s.Require().NoError(err)
	s.Equal(4, page.Total)
	s.Require().Len(page.Entries, 2)
	s.Equal("b", page.Entries[0].Text)
	s.Equal(int64(3), page.Entries[1].Seq)

	past, err := s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "run", Offset: 10})
	s.Require().NoError(err)
	s.Empty(past.Entries)
}

func (s *RepositoryTestSuite) TestEmptySession() {
	out, err := s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "nobody"})
	s.Require().NoError(err)
	s.Equal(0, out.Total)
	s.Empty(out.Entries)
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, &chronicle.AppendInput{Text: "x"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "run", Offset: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "run", Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestRedisLayout() {
	if !s.redis {
		s.T().Skip("redis only")
	}
	s.appendLine("run", 2, "hello")

	items, err := s.mr.List("chronicle:run")
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.JSONEq(`{"seq":1,"day":2,"level":1,"text":"hello","recorded_at":"2026-03-14T09:30:00Z"}`, items[0])

	seq, err := s.mr.Get("chronicle:run:seq")
	s.Require().NoError(err)
	s.Equal("1", seq)
}

func (s *RepositoryTestSuite) TestConcurrentWritersKeepSequenceOrder() {
	const writers, lines = 4, 5

	var wg sync.WaitGroup
	errs := make(chan error, writers*lines)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < lines; i++ {
				_, err := s.repo.Append(s.ctx, &chronicle.AppendInput{
					SessionID: "run",
					Day:       1,
					Text:      fmt.Sprintf("writer %d line %d", w, i),
				})
				errs <- err
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &chronicle.ListInput{SessionID: "run"})
	s.Require().NoError(err)
	s.Require().Equal(writers*lines, out.Total)
	for i, entry := range out.Entries {
		s.Equal(int64(i+1), entry.Seq)
	}

	if s.redis {
		seq, err := s.mr.Get("chronicle:run:seq")
		s.Require().NoError(err)
		s.Equal(fmt.Sprint(writers*lines), seq)
	}
}

func (s *RepositoryTestSuite) TestRedisOutage() {
	if !s.redis {
		s.T().Skip("redis only")
	}
	s.mr.Close()

	_, err := s.repo.Append(s.ctx, &chronicle.AppendInput{SessionID: "run", Text: "lost"})
	s.Error(err)
}

func TestNewRedisValidates(t *testing.T) {
	_, err := chronicle.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = chronicle.NewRedis(&chronicle.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
