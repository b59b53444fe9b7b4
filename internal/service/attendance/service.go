package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository"
	apperrors "github.com/medhq/hms-api/pkg/errors"
)

// lateAfter is the check-in cutoff: arrivals past 09:00 count as late.
const lateAfter = 9 * time.Hour

type Service struct {
	repo repository.AttendanceRepository

	// reportDelay simulates the latency of building a report.
	reportDelay time.Duration
}

func NewService(repo repository.AttendanceRepository, reportDelay time.Duration) *Service {
	return &Service{repo: repo, reportDelay: reportDelay}
}

func (s *Service) List(ctx context.Context, c derive.Criteria) ([]model.AttendanceRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Filter(records, c), nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("attendance record", err)
		}
		return nil, err
	}
	return rec, nil
}

// Create opens a day's record for an employee, absent until check-in.
func (s *Service) Create(ctx context.Context, req *model.CreateAttendanceRequest) (*model.AttendanceRecord, error) {
	rec := &model.AttendanceRecord{
		ID:           uuid.New().String(),
		EmployeeName: req.EmployeeName,
		Role:         req.Role,
		Department:   req.Department,
		Day:          req.Day,
		Status:       model.AttendanceStatusAbsent,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateAttendanceRequest) (*model.AttendanceRecord, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CheckInTime != nil {
		rec.CheckInTime = req.CheckInTime
		rec.Status = statusForCheckIn(*req.CheckInTime)
	}
	if req.CheckOutTime != nil {
		rec.CheckOutTime = req.CheckOutTime
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func statusForCheckIn(t time.Time) string {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Sub(midnight) > lateAfter {
		return model.AttendanceStatusLate
	}
	return model.AttendanceStatusPresent
}

// Report tallies a date range per employee. Generation runs behind a
// simulated delay; if the requester navigates away the context cancels and
// nothing is produced.
func (s *Service) Report(ctx context.Context, from, to time.Time) (*model.AttendanceReport, error) {
	if s.reportDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.reportDelay):
		}
	}

	records, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &model.AttendanceReport{
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
	}

	byEmployee := make(map[string]*model.EmployeeAttendance)
	order := make([]string, 0)
	for _, rec := range records {
		tally(&report.Totals, rec.Status)

		emp, ok := byEmployee[rec.EmployeeName]
		if !ok {
			emp = &model.EmployeeAttendance{
				EmployeeName: rec.EmployeeName,
				Department:   rec.Department,
			}
			byEmployee[rec.EmployeeName] = emp
			order = append(order, rec.EmployeeName)
		}
		tally(&emp.Totals, rec.Status)
	}

	for _, name := range order {
		report.PerEmployee = append(report.PerEmployee, *byEmployee[name])
	}
	return report, nil
}

func tally(t *model.AttendanceTotals, status string) {
	switch status {
	case model.AttendanceStatusPresent:
		t.Present++
	case model.AttendanceStatusLate:
		t.Late++
	case model.AttendanceStatusAbsent:
		t.Absent++
	}
}
