package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/repository"
)

var (
	ErrExportNoEntries    = errors.New("no schedule entries to export")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService renders timetables as downloadable files: an .xlsx weekly
// grid for a cohort, an .ics calendar for a teacher. Files come back as a
// bytes.Buffer plus a suggested filename; the handler sets the HTTP headers.
type ExportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewExportService(repo *repository.Repository, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, logger: logger}
}

// ExportGridXLSX renders a program/year cohort's weekly grid as Excel:
// rows are the fixed time slots, columns the days. When several entries
// share a cell (e.g. parallel TD groups) they are stacked on separate
// lines inside it.
func (s *ExportService) ExportGridXLSX(ctx context.Context, programID uint, year int) (*bytes.Buffer, string, error) {
	program, err := s.repo.Program.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportNoEntries
		}
		return nil, "", err
	}
	filter := &dto.ScheduleEntryFilter{ProgramID: &programID, Year: &year}
	entries, err := s.repo.Schedule.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	grid := buildGrid(entries)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Emploi du temps"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 16)
	lastCol := colName(len(Days))
	f.SetColWidth(sheetName, "B", lastCol, 28)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})

	title := fmt.Sprintf("%s — Année %d", program.Name, year)
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Horaire")
	for i, day := range Days {
		f.SetCellValue(sheetName, cell(colName(1+i), row), day)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), headerStyle)

	row = 3
	for slotIdx, slot := range TimeSlots {
		f.SetRowHeight(sheetName, row, 60)
		f.SetCellValue(sheetName, cell("A", row), slot.Start+"-"+slot.End)
		for i, day := range Days {
			var lines string
			for _, e := range grid[day][slotIdx] {
				if lines != "" {
					lines += "\n"
				}
				lines += fmt.Sprintf("%s (%s)\n%s — %s", e.CourseName, e.CourseType, e.TeacherName, e.RoomName)
				if e.GroupLabel != "Tous" {
					lines += "\nGroupe " + e.GroupLabel
				}
			}
			if lines == "" {
				lines = "-"
			}
			f.SetCellValue(sheetName, cell(colName(1+i), row), lines)
		}
		f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), cellStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write xlsx", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("emploi_du_temps_%s_annee%d.xlsx", program.Name, year)
	return buf, filename, nil
}

// ExportTeacherICS renders a teacher's weekly schedule as an iCalendar
// feed, with each entry anchored to the current week so calendar clients
// display it on real dates.
func (s *ExportService) ExportTeacherICS(ctx context.Context, teacherID uint) (*bytes.Buffer, string, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportNoEntries
		}
		return nil, "", err
	}
	entries, err := s.repo.Schedule.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//faculty-schedule//FR")

	monday := startOfWeek(time.Now())
	for i := range entries {
		e := &entries[i]
		offset, ok := dayIndex[e.Day]
		if !ok {
			continue
		}
		day := monday.AddDate(0, 0, offset)

		event := cal.AddEvent(uuid.NewString())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(atTime(day, e.StartTime))
		event.SetEndAt(atTime(day, e.EndTime))
		summary := e.TimeRange()
		if e.Course != nil {
			summary = fmt.Sprintf("%s (%s)", e.Course.Name, e.Course.Type)
		}
		event.SetSummary(summary)
		if e.Room != nil {
			event.SetLocation(e.Room.Name)
		}
		event.SetDescription("Groupe: " + e.GroupLabel())
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("planning_%s_%s.ics", teacher.FirstName, teacher.LastName)
	return buf, filename, nil
}

// startOfWeek returns the Monday 00:00 of t's week.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	day := t.AddDate(0, 0, 1-weekday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

func atTime(day time.Time, hhmm string) time.Time {
	mins := minutesOf(hhmm)
	return day.Add(time.Duration(mins) * time.Minute)
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
