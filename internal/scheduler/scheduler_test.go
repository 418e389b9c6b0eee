package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"walletboard/internal/services"
	"walletboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	valuation    *service_mocks.MockPortfolioValuationServiceInterface
	auditService *service_mocks.MockAuditServiceInterface
	logger       *slog.Logger
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.valuation = service_mocks.NewMockPortfolioValuationServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SchedulerTestSuite) newScheduler(config Config) *Scheduler {
	scheduler, err := New(s.valuation, s.auditService, config, s.logger)
	s.Require().NoError(err)
	return scheduler
}

func (s *SchedulerTestSuite) TestNew_InvalidSpec() {
	_, err := New(s.valuation, s.auditService, Config{ValuationSpec: "every tuesday"}, s.logger)
	s.Error(err)

	_, err = New(s.valuation, s.auditService, Config{
		ValuationSpec:  "0 */15 * * * *",
		AuditPurgeSpec: "nope",
		AuditRetention: time.Hour,
	}, s.logger)
	s.Error(err)
}

func (s *SchedulerTestSuite) TestNew_PurgeDisabledWithoutRetention() {
	scheduler := s.newScheduler(Config{ValuationSpec: "0 */15 * * * *", AuditPurgeSpec: "0 30 3 * * *"})
	s.Len(scheduler.cron.Entries(), 1)

	scheduler = s.newScheduler(Config{ValuationSpec: "0 */15 * * * *", AuditPurgeSpec: "0 30 3 * * *", AuditRetention: time.Hour})
	s.Len(scheduler.cron.Entries(), 2)
}

func (s *SchedulerTestSuite) TestRunNow_BoundedByRunTimeout() {
	s.valuation.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int, error) {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(time.Minute), deadline, 5*time.Second)
			return 3, nil
		})

	scheduler := s.newScheduler(Config{ValuationSpec: "0 */15 * * * *", RunTimeout: time.Minute})
	updated, err := scheduler.RunNow(context.Background())
	s.NoError(err)
	s.Equal(3, updated)
}

func (s *SchedulerTestSuite) TestRunNow_PropagatesErrors() {
	s.valuation.EXPECT().Run(gomock.Any()).Return(0, services.ErrValuationInProgress)
	s.valuation.EXPECT().Run(gomock.Any()).Return(0, services.ErrPersistence)

	scheduler := s.newScheduler(Config{ValuationSpec: "0 */15 * * * *"})

	_, err := scheduler.RunNow(context.Background())
	s.ErrorIs(err, services.ErrValuationInProgress)

	_, err = scheduler.RunNow(context.Background())
	s.ErrorIs(err, services.ErrPersistence)
}

func (s *SchedulerTestSuite) TestStart_RunsValuationOnSchedule() {
	ran := make(chan struct{}, 1)
	s.valuation.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	scheduler := s.newScheduler(Config{ValuationSpec: "* * * * * *", RunTimeout: time.Second})
	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		s.Fail("valuation did not run")
	}
}

func (s *SchedulerTestSuite) TestStop_CancelsTickContext() {
	scheduler := s.newScheduler(Config{ValuationSpec: "0 */15 * * * *"})
	scheduler.Start()
	scheduler.Stop()

	s.ErrorIs(scheduler.ctx.Err(), context.Canceled)
}

func (s *SchedulerTestSuite) TestPurgeAuditLogs() {
	s.auditService.EXPECT().PurgeOlderThan(48*time.Hour).Return(int64(7), nil)
	s.auditService.EXPECT().PurgeOlderThan(48*time.Hour).Return(int64(0), errors.New("database down"))

	scheduler := s.newScheduler(Config{ValuationSpec: "0 */15 * * * *", AuditPurgeSpec: "0 30 3 * * *", AuditRetention: 48 * time.Hour})
	scheduler.purgeAuditLogs()
	scheduler.purgeAuditLogs()
}
