package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"devconnector/internal/domain"
	"devconnector/internal/repository"
	"devconnector/internal/validation"
)

// ProfileService coordina el perfil y sus sub-colecciones. Toda mutación
// de experiencia o educación reescribe el documento completo del perfil:
// escritores concurrentes sobre el mismo perfil resuelven a último-gana.
type ProfileService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrHandleTaken     = errors.New("handle already exists")
	ErrEntryNotFound   = errors.New("entry not found")
)

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{logger: logger, profiles: profiles}
}

// Upsert actualiza el perfil existente del usuario o crea uno nuevo. Al
// crear, un handle ya tomado se rechaza con una lectura previa, igual que
// el duplicado de email en el registro.
func (s *ProfileService) Upsert(ctx context.Context, userID string, payload validation.ProfilePayload) (domain.Profile, error) {
	fields := profileFromPayload(payload)

	existing, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		fields.ID = existing.ID
		fields.UserID = existing.UserID
		fields.Experience = existing.Experience
		fields.Education = existing.Education
		fields.CreatedAt = existing.CreatedAt
		if err := s.profiles.Update(ctx, fields); err != nil {
			return domain.Profile{}, err
		}
		return fields, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}

	if _, err := s.profiles.GetByHandle(ctx, fields.Handle); err == nil {
		return domain.Profile{}, ErrHandleTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}

	fields.ID = uuid.NewString()
	fields.UserID = userID
	fields.Experience = []domain.Experience{}
	fields.Education = []domain.Education{}
	fields.CreatedAt = time.Now().UTC()
	if err := s.profiles.Create(ctx, fields); err != nil {
		return domain.Profile{}, err
	}
	return fields, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	return s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
}

func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (domain.Profile, error) {
	return s.wrapNotFound(s.profiles.GetByHandle(ctx, strings.TrimSpace(handle)))
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	return s.profiles.DeleteByUserID(ctx, userID)
}

// AddExperience antepone una entrada nueva con identidad propia.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, payload validation.ExperiencePayload) (domain.Profile, error) {
	profile, err := s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
	if err != nil {
		return domain.Profile{}, err
	}

	entry := experienceFromPayload(payload)
	entry.ID = uuid.NewString()
	profile.Experience = append([]domain.Experience{entry}, profile.Experience...)

	if err := s.profiles.Update(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// UpdateExperience reemplaza la entrada con el id dado conservando su id.
func (s *ProfileService) UpdateExperience(ctx context.Context, userID, entryID string, payload validation.ExperiencePayload) (domain.Profile, error) {
	profile, err := s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
	if err != nil {
		return domain.Profile{}, err
	}

	idx := -1
	for i, e := range profile.Experience {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Profile{}, ErrEntryNotFound
	}

	entry := experienceFromPayload(payload)
	entry.ID = entryID
	profile.Experience[idx] = entry

	if err := s.profiles.Update(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID string) (domain.Profile, error) {
	profile, err := s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
	if err != nil {
		return domain.Profile{}, err
	}

	kept := profile.Experience[:0]
	found := false
	for _, e := range profile.Experience {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return domain.Profile{}, ErrEntryNotFound
	}
	profile.Experience = kept

	if err := s.profiles.Update(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// AddEducation antepone una entrada nueva con identidad propia.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, payload validation.EducationPayload) (domain.Profile, error) {
	profile, err := s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
	if err != nil {
		return domain.Profile{}, err
	}

	entry := educationFromPayload(payload)
	entry.ID = uuid.NewString()
	profile.Education = append([]domain.Education{entry}, profile.Education...)

	if err := s.profiles.Update(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// UpdateEducation reemplaza la entrada con el id dado conservando su id.
func (s *ProfileService) UpdateEducation(ctx context.Context, userID, entryID string, payload validation.EducationPayload) (domain.Profile, error) {
	profile, err := s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
	if err != nil {
		return domain.Profile{}, err
	}

	idx := -1
	for i, e := range profile.Education {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Profile{}, ErrEntryNotFound
	}

	entry := educationFromPayload(payload)
	entry.ID = entryID
	profile.Education[idx] = entry

	if err := s.profiles.Update(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID string) (domain.Profile, error) {
	profile, err := s.wrapNotFound(s.profiles.GetByUserID(ctx, userID))
	if err != nil {
		return domain.Profile{}, err
	}

	kept := profile.Education[:0]
	found := false
	for _, e := range profile.Education {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return domain.Profile{}, ErrEntryNotFound
	}
	profile.Education = kept

	if err := s.profiles.Update(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) wrapNotFound(profile domain.Profile, err error) (domain.Profile, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	return profile, err
}

// SplitSkills separa el string de habilidades por comas, recortando
// espacios y descartando entradas vacías.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

func profileFromPayload(p validation.ProfilePayload) domain.Profile {
	return domain.Profile{
		Handle:         strings.TrimSpace(p.Handle),
		Company:        strings.TrimSpace(p.Company),
		Website:        strings.TrimSpace(p.Website),
		Location:       strings.TrimSpace(p.Location),
		Status:         strings.TrimSpace(p.Status),
		Skills:         SplitSkills(p.Skills),
		Bio:            strings.TrimSpace(p.Bio),
		GithubUsername: strings.TrimSpace(p.GithubUsername),
		Social: domain.SocialLinks{
			Youtube:   strings.TrimSpace(p.Youtube),
			Twitter:   strings.TrimSpace(p.Twitter),
			Facebook:  strings.TrimSpace(p.Facebook),
			Linkedin:  strings.TrimSpace(p.Linkedin),
			Instagram: strings.TrimSpace(p.Instagram),
		},
	}
}

func experienceFromPayload(p validation.ExperiencePayload) domain.Experience {
	from, _ := validation.ParseDate(p.From)
	entry := domain.Experience{
		Title:       strings.TrimSpace(p.Title),
		Company:     strings.TrimSpace(p.Company),
		Location:    strings.TrimSpace(p.Location),
		From:        from,
		Current:     p.Current,
		Description: strings.TrimSpace(p.Description),
	}
	if to, ok := validation.ParseDate(p.To); ok && !p.Current {
		entry.To = &to
	}
	return entry
}

func educationFromPayload(p validation.EducationPayload) domain.Education {
	from, _ := validation.ParseDate(p.From)
	entry := domain.Education{
		School:       strings.TrimSpace(p.School),
		Degree:       strings.TrimSpace(p.Degree),
		FieldOfStudy: strings.TrimSpace(p.FieldOfStudy),
		From:         from,
		Current:      p.Current,
		Description:  strings.TrimSpace(p.Description),
	}
	if to, ok := validation.ParseDate(p.To); ok && !p.Current {
		entry.To = &to
	}
	return entry
}
