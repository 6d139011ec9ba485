package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"faculty-schedule/backend/internal/model"
)

func gridEntry(id uint, day, start, end string) model.ScheduleEntry {
	return model.ScheduleEntry{
		ID:        id,
		ProgramID: 1,
		Year:      2,
		CourseID:  1,
		TeacherID: 1,
		RoomID:    1,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestBuildGrid_AlignedEntry(t *testing.T) {
	entries := []model.ScheduleEntry{gridEntry(1, "Lundi", "08:30", "10:30")}

	grid := buildGrid(entries)

	if len(grid) != len(Days) {
		t.Fatalf("expected %d days, got %d", len(Days), len(grid))
	}
	for _, day := range Days {
		if len(grid[day]) != len(TimeSlots) {
			t.Fatalf("day %s: expected %d slots, got %d", day, len(TimeSlots), len(grid[day]))
		}
	}
	if len(grid["Lundi"][0]) != 1 {
		t.Errorf("expected entry in Lundi slot 0, got %d", len(grid["Lundi"][0]))
	}
	// 08:30-10:30 ends before slot 1 starts (10:40): no spill.
	if len(grid["Lundi"][1]) != 0 {
		t.Errorf("aligned entry leaked into slot 1")
	}
}

func TestBuildGrid_SpanningEntry(t *testing.T) {
	// 09:00-13:30 touches slots 0 (08:30-10:30), 1 (10:40-12:40) and
	// 2 (13:00-15:00).
	entries := []model.ScheduleEntry{gridEntry(1, "Mardi", "09:00", "13:30")}

	grid := buildGrid(entries)

	for slot, want := range []int{1, 1, 1, 0, 0} {
		if got := len(grid["Mardi"][slot]); got != want {
			t.Errorf("slot %d: expected %d entries, got %d", slot, want, got)
		}
	}
}

func TestBuildGrid_BoundaryTouchIncluded(t *testing.T) {
	// Ends exactly at 10:40, the start of slot 1: the inclusive display
	// rule keeps it visible in both slots.
	entries := []model.ScheduleEntry{gridEntry(1, "Lundi", "10:00", "10:40")}

	grid := buildGrid(entries)

	if len(grid["Lundi"][0]) != 1 {
		t.Errorf("expected entry in slot 0")
	}
	if len(grid["Lundi"][1]) != 1 {
		t.Errorf("boundary-touching entry missing from slot 1")
	}
}

func TestBuildGrid_Idempotent(t *testing.T) {
	entries := []model.ScheduleEntry{
		gridEntry(1, "Lundi", "08:30", "10:30"),
		gridEntry(2, "Vendredi", "17:20", "19:20"),
	}

	first := buildGrid(entries)
	second := buildGrid(entries)

	for _, day := range Days {
		for slot := range TimeSlots {
			if len(first[day][slot]) != len(second[day][slot]) {
				t.Fatalf("grid not deterministic at %s slot %d", day, slot)
			}
		}
	}
}

func TestEntryHours(t *testing.T) {
	e := gridEntry(1, "Lundi", "08:30", "10:30")
	if h := entryHours(&e); h != 2 {
		t.Errorf("expected 2 hours, got %v", h)
	}
	e = gridEntry(2, "Lundi", "13:00", "14:30")
	if h := entryHours(&e); h != 1.5 {
		t.Errorf("expected 1.5 hours, got %v", h)
	}
}

func TestTimetableService_GetGrid(t *testing.T) {
	repo, mocks := newTestRepository()
	ctx := context.Background()

	mocks.programs.Create(ctx, &model.Program{Name: "Informatique", DepartmentID: 1, Year: 2})
	e1 := gridEntry(0, "Lundi", "08:30", "10:30")
	mocks.schedule.Create(ctx, &e1)
	e2 := gridEntry(0, "Mardi", "10:40", "12:40")
	mocks.schedule.Create(ctx, &e2)
	other := gridEntry(0, "Lundi", "08:30", "10:30")
	other.ProgramID = 2
	mocks.schedule.Create(ctx, &other)

	svc := NewTimetableService(repo, zap.NewNop())
	timetable, err := svc.GetGrid(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GetGrid: %v", err)
	}

	if len(timetable.Entries) != 2 {
		t.Fatalf("expected 2 cohort entries, got %d", len(timetable.Entries))
	}
	if timetable.TotalHours != 4 {
		t.Errorf("expected 4 total hours, got %v", timetable.TotalHours)
	}
	if len(timetable.Grid["Lundi"][0]) != 1 {
		t.Errorf("expected Lundi slot 0 occupied")
	}
}

func TestTimetableService_StudentSeesGroupAndWildcard(t *testing.T) {
	repo, mocks := newTestRepository()
	ctx := context.Background()

	programID := uint(1)
	year := 2
	mocks.users.Create(ctx, &model.User{Username: "etudiant", Role: "student", ProgramID: &programID, Year: &year})

	wildcard := gridEntry(0, "Lundi", "08:30", "10:30")
	mocks.schedule.Create(ctx, &wildcard)
	g1 := gridEntry(0, "Mardi", "08:30", "10:30")
	g1.GroupID = groupID(1)
	mocks.schedule.Create(ctx, &g1)
	g2 := gridEntry(0, "Mercredi", "08:30", "10:30")
	g2.GroupID = groupID(2)
	mocks.schedule.Create(ctx, &g2)

	svc := NewTimetableService(repo, zap.NewNop())
	timetable, err := svc.GetStudentTimetable(ctx, 1, groupID(1))
	if err != nil {
		t.Fatalf("GetStudentTimetable: %v", err)
	}

	// G1 sees the wildcard lecture and its own TD, not G2's.
	if len(timetable.Entries) != 2 {
		t.Fatalf("expected 2 visible entries, got %d", len(timetable.Entries))
	}
}

func TestTimetableService_TeacherTimetable(t *testing.T) {
	repo, mocks := newTestRepository()
	ctx := context.Background()

	mocks.users.Create(ctx, &model.User{Username: "prof", Role: "teacher"})
	mocks.teachers.Create(ctx, &model.Teacher{UserID: 1, FirstName: "Ahmed", LastName: "Benali", Type: "Permanent"})

	mine := gridEntry(0, "Lundi", "08:30", "10:30")
	mocks.schedule.Create(ctx, &mine)
	others := gridEntry(0, "Lundi", "13:00", "15:00")
	others.TeacherID = 2
	mocks.schedule.Create(ctx, &others)

	svc := NewTimetableService(repo, zap.NewNop())
	timetable, err := svc.GetTeacherTimetable(ctx, 1)
	if err != nil {
		t.Fatalf("GetTeacherTimetable: %v", err)
	}

	if len(timetable.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(timetable.Entries))
	}
	if timetable.TotalHours != 2 {
		t.Errorf("expected 2 hours, got %v", timetable.TotalHours)
	}
}

func TestTimetableService_TeacherProfileMissing(t *testing.T) {
	repo, mocks := newTestRepository()
	ctx := context.Background()

	mocks.users.Create(ctx, &model.User{Username: "prof", Role: "teacher"})

	svc := NewTimetableService(repo, zap.NewNop())
	if _, err := svc.GetTeacherTimetable(ctx, 1); err != ErrTeacherProfileNotFound {
		t.Fatalf("expected ErrTeacherProfileNotFound, got %v", err)
	}
}
