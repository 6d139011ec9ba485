package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
	"faculty-schedule/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments map[uint]*model.Department
	programRepo *mockProgramRepo
	nextID      uint
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[uint]*model.Department), nextID: 1}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	dept.ID = m.nextID
	m.nextID++
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id uint) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) GetByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range m.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	out := make([]model.Department, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *model.Department) error {
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.departments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.departments)), nil
}

func (m *mockDepartmentRepo) CountPrograms(_ context.Context, departmentID uint) (int64, error) {
	if m.programRepo == nil {
		return 0, nil
	}
	var n int64
	for _, p := range m.programRepo.programs {
		if p.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

// ── Mock ProgramRepository ──

type mockProgramRepo struct {
	programs map[uint]*model.Program
	nextID   uint
}

func newMockProgramRepo() *mockProgramRepo {
	return &mockProgramRepo{programs: make(map[uint]*model.Program), nextID: 1}
}

func (m *mockProgramRepo) Create(_ context.Context, program *model.Program) error {
	program.ID = m.nextID
	m.nextID++
	m.programs[program.ID] = program
	return nil
}

func (m *mockProgramRepo) GetByID(_ context.Context, id uint) (*model.Program, error) {
	if p, ok := m.programs[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgramRepo) List(_ context.Context) ([]model.Program, error) {
	out := make([]model.Program, 0, len(m.programs))
	for _, p := range m.programs {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockProgramRepo) ListByDepartment(_ context.Context, departmentID uint) ([]model.Program, error) {
	var out []model.Program
	for _, p := range m.programs {
		if p.DepartmentID == departmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProgramRepo) Update(_ context.Context, program *model.Program) error {
	m.programs[program.ID] = program
	return nil
}

func (m *mockProgramRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.programs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.programs, id)
	return nil
}

// ── Mock TeacherRepository ──

// mockTeacherRepo resolves the User association from its sibling mock on
// GetByID and List, like the real repo's gorm preloads.
type mockTeacherRepo struct {
	teachers map[uint]*model.Teacher
	users    *mockUserRepo
	nextID   uint
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[uint]*model.Teacher), nextID: 1}
}

func (m *mockTeacherRepo) resolve(t model.Teacher) model.Teacher {
	if m.users != nil {
		t.User = m.users.users[t.UserID]
	}
	return t
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	teacher.ID = m.nextID
	m.nextID++
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		resolved := m.resolve(*t)
		return &resolved, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByUserID(_ context.Context, userID uint) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	out := make([]model.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		out = append(out, m.resolve(*t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.teachers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.teachers)), nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms  map[uint]*model.Room
	nextID uint
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[uint]*model.Room), nextID: 1}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	room.ID = m.nextID
	m.nextID++
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id uint) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	out := make([]model.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rooms, id)
	return nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.rooms)), nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.ID = m.nextID
	m.nextID++
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockCourseRepo) ListByProgram(_ context.Context, programID uint) ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.courses {
		if c.ProgramID == programID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[uint]*model.StudentGroup
	nextID uint
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[uint]*model.StudentGroup), nextID: 1}
}

func (m *mockGroupRepo) Create(_ context.Context, group *model.StudentGroup) error {
	group.ID = m.nextID
	m.nextID++
	m.groups[group.ID] = group
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id uint) (*model.StudentGroup, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) List(_ context.Context) ([]model.StudentGroup, error) {
	out := make([]model.StudentGroup, 0, len(m.groups))
	for _, g := range m.groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockGroupRepo) ListByProgram(_ context.Context, programID uint) ([]model.StudentGroup, error) {
	var out []model.StudentGroup
	for _, g := range m.groups {
		if g.ProgramID == programID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockGroupRepo) Update(_ context.Context, group *model.StudentGroup) error {
	m.groups[group.ID] = group
	return nil
}

func (m *mockGroupRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.groups[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.groups, id)
	return nil
}

// ── Mock ScheduleRepository ──

// mockScheduleRepo resolves associations from its sibling mocks so that
// conflict messages and responses carry display names, like gorm preloads.
type mockScheduleRepo struct {
	entries  map[uint]*model.ScheduleEntry
	nextID   uint
	courses  *mockCourseRepo
	teachers *mockTeacherRepo
	rooms    *mockRoomRepo
	groups   *mockGroupRepo
	programs *mockProgramRepo

	lockedDays []string
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{entries: make(map[uint]*model.ScheduleEntry), nextID: 1}
}

func (m *mockScheduleRepo) resolve(e model.ScheduleEntry) model.ScheduleEntry {
	if m.courses != nil {
		e.Course = m.courses.courses[e.CourseID]
	}
	if m.teachers != nil {
		e.Teacher = m.teachers.teachers[e.TeacherID]
	}
	if m.rooms != nil {
		e.Room = m.rooms.rooms[e.RoomID]
	}
	if m.programs != nil {
		e.Program = m.programs.programs[e.ProgramID]
	}
	if m.groups != nil && e.GroupID != nil {
		e.Group = m.groups.groups[*e.GroupID]
	}
	return e
}

func (m *mockScheduleRepo) Create(_ context.Context, entry *model.ScheduleEntry) error {
	entry.ID = m.nextID
	m.nextID++
	stored := *entry
	m.entries[entry.ID] = &stored
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id uint) (*model.ScheduleEntry, error) {
	if e, ok := m.entries[id]; ok {
		resolved := m.resolve(*e)
		return &resolved, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context, filter *dto.ScheduleEntryFilter) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if filter != nil {
			if filter.ProgramID != nil && e.ProgramID != *filter.ProgramID {
				continue
			}
			if filter.Year != nil && e.Year != *filter.Year {
				continue
			}
			if filter.TeacherID != nil && e.TeacherID != *filter.TeacherID {
				continue
			}
		}
		out = append(out, m.resolve(*e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return dayIndex[out[i].Day] < dayIndex[out[j].Day]
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *mockScheduleRepo) ListByDay(_ context.Context, day string) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.Day == day {
			out = append(out, m.resolve(*e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (m *mockScheduleRepo) ListByTeacher(_ context.Context, teacherID uint) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.TeacherID == teacherID {
			out = append(out, m.resolve(*e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return dayIndex[out[i].Day] < dayIndex[out[j].Day]
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *mockScheduleRepo) ListForStudent(_ context.Context, programID uint, year int, groupID *uint) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.ProgramID != programID || e.Year != year {
			continue
		}
		if groupID != nil && e.GroupID != nil && *e.GroupID != *groupID {
			continue
		}
		out = append(out, m.resolve(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockScheduleRepo) ListRecent(_ context.Context, limit int) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		out = append(out, m.resolve(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, entry *model.ScheduleEntry) error {
	if _, ok := m.entries[entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *entry
	m.entries[entry.ID] = &stored
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *mockScheduleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.entries)), nil
}

func (m *mockScheduleRepo) LockDay(_ context.Context, day string) error {
	m.lockedDays = append(m.lockedDays, day)
	return nil
}

// ── Pass-through TxManager ──

// mockTxManager hands the same repository back; tests run single-threaded
// so transactional isolation is irrelevant.
type mockTxManager struct {
	repo *repository.Repository
}

func (m *mockTxManager) Do(_ context.Context, fn func(txRepo *repository.Repository) error) error {
	return fn(m.repo)
}

// ── Aggregate test helper ──

type testRepos struct {
	users    *mockUserRepo
	depts    *mockDepartmentRepo
	programs *mockProgramRepo
	teachers *mockTeacherRepo
	rooms    *mockRoomRepo
	courses  *mockCourseRepo
	groups   *mockGroupRepo
	schedule *mockScheduleRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		users:    newMockUserRepo(),
		depts:    newMockDepartmentRepo(),
		programs: newMockProgramRepo(),
		teachers: newMockTeacherRepo(),
		rooms:    newMockRoomRepo(),
		courses:  newMockCourseRepo(),
		groups:   newMockGroupRepo(),
		schedule: newMockScheduleRepo(),
	}
	mocks.depts.programRepo = mocks.programs
	mocks.teachers.users = mocks.users
	mocks.schedule.courses = mocks.courses
	mocks.schedule.teachers = mocks.teachers
	mocks.schedule.rooms = mocks.rooms
	mocks.schedule.groups = mocks.groups
	mocks.schedule.programs = mocks.programs

	repo := &repository.Repository{
		User:       mocks.users,
		Department: mocks.depts,
		Program:    mocks.programs,
		Teacher:    mocks.teachers,
		Room:       mocks.rooms,
		Course:     mocks.courses,
		Group:      mocks.groups,
		Schedule:   mocks.schedule,
	}
	repo.Tx = &mockTxManager{repo: repo}
	return repo, mocks
}
