package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
	"faculty-schedule/backend/internal/repository"
	"faculty-schedule/backend/pkg/mailer"
)

var ErrTeacherNotFound = errors.New("teacher not found")

const defaultMaxHours = 20

// TeacherService — teacher profiles and their user accounts. Creating a
// teacher provisions both in one transaction; generated credentials are
// mailed to the teacher.
type TeacherService struct {
	repo   *repository.Repository
	mailer *mailer.Mailer
	logger *zap.Logger
}

func NewTeacherService(repo *repository.Repository, m *mailer.Mailer, logger *zap.Logger) *TeacherService {
	return &TeacherService{repo: repo, mailer: m, logger: logger}
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword returns a random 10-character initial password.
func generatePassword() (string, error) {
	buf := make([]byte, 10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// Create provisions a teacher profile and its user account. When no
// password is supplied one is generated and emailed; mail failure does not
// roll back the creation.
func (s *TeacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password := req.Password
	generated := false
	if password == "" {
		var err error
		password, err = generatePassword()
		if err != nil {
			return nil, err
		}
		generated = true
	}

	maxHours := req.MaxHours
	if maxHours == 0 {
		maxHours = defaultMaxHours
	}

	var teacher *model.Teacher
	err := s.repo.Tx.Do(ctx, func(tx *repository.Repository) error {
		user := &model.User{
			Username: req.Username,
			Email:    req.Email,
			Role:     "teacher",
		}
		if err := user.SetPassword(password); err != nil {
			return err
		}
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		teacher = &model.Teacher{
			UserID:    user.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Type:      req.Type,
			MaxHours:  maxHours,
		}
		return tx.Teacher.Create(ctx, teacher)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("teacher created",
		zap.Uint("teacher_id", teacher.ID),
		zap.String("name", teacher.FullName()))

	if generated && s.mailer != nil {
		if err := s.mailer.SendAccountCredentials(req.Email, req.FirstName, req.LastName, req.Username, password); err != nil {
			s.logger.Warn("failed to send credentials mail", zap.Error(err))
		}
	}

	full, err := s.repo.Teacher.GetByID(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	resp := toTeacherResponse(full)
	return &resp, nil
}

func (s *TeacherService) GetByID(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *TeacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, toTeacherResponse(&teachers[i]))
	}
	return out, nil
}

// Update applies a partial update; when the password changes the teacher is
// notified at their account address.
func (s *TeacherService) Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	user, err := s.repo.User.GetByID(ctx, teacher.UserID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.Type != nil {
		teacher.Type = *req.Type
	}
	if req.MaxHours != nil {
		teacher.MaxHours = *req.MaxHours
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	passwordChanged := false
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
		passwordChanged = true
	}

	err = s.repo.Tx.Do(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Update(ctx, user); err != nil {
			return err
		}
		return tx.Teacher.Update(ctx, teacher)
	})
	if err != nil {
		return nil, err
	}

	if passwordChanged && s.mailer != nil && req.Password != nil {
		if err := s.mailer.SendCredentialsUpdate(user.Email, teacher.FirstName, teacher.LastName, user.Username, *req.Password); err != nil {
			s.logger.Warn("failed to send credentials update mail", zap.Error(err))
		}
	}

	full, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTeacherResponse(full)
	return &resp, nil
}

// Delete removes the teacher profile and its user account.
func (s *TeacherService) Delete(ctx context.Context, id uint) error {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}
	return s.repo.Tx.Do(ctx, func(tx *repository.Repository) error {
		if err := tx.Teacher.Delete(ctx, id); err != nil {
			return err
		}
		return tx.User.Delete(ctx, teacher.UserID)
	})
}

func toTeacherResponse(t *model.Teacher) dto.TeacherResponse {
	resp := dto.TeacherResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Type:      t.Type,
		MaxHours:  t.MaxHours,
		CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if t.User != nil {
		resp.Username = t.User.Username
		resp.Email = t.User.Email
	}
	return resp
}
