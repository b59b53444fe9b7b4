package memory

import (
	"context"
	"time"

	"github.com/medhq/hms-api/internal/model"
)

type AttendanceRepository struct {
	records *collection[model.AttendanceRecord]
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: newCollection(func(a model.AttendanceRecord) string { return a.ID }, seedAttendance()),
	}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]model.AttendanceRecord, error) {
	return r.records.list(), nil
}

func (r *AttendanceRepository) ListRange(ctx context.Context, from, to time.Time) ([]model.AttendanceRecord, error) {
	all := r.records.list()
	out := make([]model.AttendanceRecord, 0, len(all))
	for _, rec := range all {
		if rec.Day.Before(from) || rec.Day.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *AttendanceRepository) Get(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	rec, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.records.insert(*rec)
}

func (r *AttendanceRepository) Update(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.records.update(*rec)
}
