package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"faculty-schedule/backend/internal/model"
)

func TestDashboardService_GetStats(t *testing.T) {
	repo, mocks := newTestRepository()
	ctx := context.Background()

	mocks.depts.Create(ctx, &model.Department{Name: "Sciences"})
	mocks.teachers.Create(ctx, &model.Teacher{UserID: 1, FirstName: "Ahmed", LastName: "Benali", Type: "Permanent"})
	mocks.teachers.Create(ctx, &model.Teacher{UserID: 2, FirstName: "Fatima", LastName: "Zahra", Type: "Vacataire"})
	mocks.rooms.Create(ctx, &model.Room{Name: "Amphi A", Capacity: 120, Type: "Amphi"})

	// Teacher 1: 2h + 2h, teacher 2: 2h.
	for _, e := range []model.ScheduleEntry{
		{ProgramID: 1, Year: 2, CourseID: 1, TeacherID: 1, RoomID: 1, Day: "Lundi", StartTime: "08:30", EndTime: "10:30"},
		{ProgramID: 1, Year: 2, CourseID: 1, TeacherID: 1, RoomID: 1, Day: "Mardi", StartTime: "08:30", EndTime: "10:30"},
		{ProgramID: 1, Year: 2, CourseID: 1, TeacherID: 2, RoomID: 1, Day: "Mercredi", StartTime: "13:00", EndTime: "15:00"},
	} {
		entry := e
		mocks.schedule.Create(ctx, &entry)
	}

	svc := NewDashboardService(repo, nil, zap.NewNop())
	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.DepartmentCount != 1 || stats.TeacherCount != 2 || stats.RoomCount != 1 || stats.EntryCount != 3 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if len(stats.RecentEntries) != 3 {
		t.Errorf("expected 3 recent entries, got %d", len(stats.RecentEntries))
	}
	if len(stats.TeacherHours) != 2 {
		t.Fatalf("expected hours for 2 teachers, got %d", len(stats.TeacherHours))
	}
	// Sorted descending: teacher 1 (4h) first.
	if stats.TeacherHours[0].TeacherID != 1 || stats.TeacherHours[0].Hours != 4 {
		t.Errorf("unexpected top teacher: %+v", stats.TeacherHours[0])
	}
	if stats.TeacherHours[0].Name != "Ahmed Benali" {
		t.Errorf("expected resolved name, got %q", stats.TeacherHours[0].Name)
	}
	if stats.TeacherHours[1].Hours != 2 {
		t.Errorf("unexpected second teacher hours: %+v", stats.TeacherHours[1])
	}
}

func TestDashboardService_GetStats_Empty(t *testing.T) {
	repo, _ := newTestRepository()

	svc := NewDashboardService(repo, nil, zap.NewNop())
	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.EntryCount != 0 || len(stats.TeacherHours) != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
