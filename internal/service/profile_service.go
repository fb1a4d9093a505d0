package service

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validate"
)

const profileCacheKey = "portfolio:profile"

// UpdateProfileInput is the partial-update payload for the singleton profile.
// Fields submitted as the empty string are treated as "not provided" — an
// admin form posting untouched empty inputs never clears stored values.
type UpdateProfileInput struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	Tagline    *string `json:"tagline" validate:"omitempty,max=200"`
	Location   *string `json:"location" validate:"omitempty,max=100"`
	Summary    *string `json:"summary" validate:"omitempty,max=1000"`
	Linkedin   *string `json:"linkedin" validate:"omitempty,max=500"`
	Github     *string `json:"github" validate:"omitempty,max=500"`
	Twitter    *string `json:"twitter" validate:"omitempty,max=500"`
	Instagram  *string `json:"instagram" validate:"omitempty,max=500"`
	Codeforces *string `json:"codeforces" validate:"omitempty,max=100"`
	Leetcode   *string `json:"leetcode" validate:"omitempty,max=100"`
}

// ProfileService manages the singleton owner profile.
type ProfileService interface {
	Get(ctx context.Context) (*model.Profile, error)
	Update(ctx context.Context, in UpdateProfileInput) (*model.Profile, error)
	// SetPhoto and SetCV store upload references produced by file ingestion.
	SetPhoto(ctx context.Context, url string) (*model.Profile, error)
	SetCV(ctx context.Context, url string) (*model.Profile, error)
}

type profileService struct {
	repo       repository.ProfileRepository
	cache      *cache.Client
	cacheTTL   time.Duration
	adminEmail string
}

// NewProfileService creates the profile service.
func NewProfileService(repo repository.ProfileRepository, cacheClient *cache.Client, cacheTTL time.Duration, adminEmail string) ProfileService {
	return &profileService{
		repo:       repo,
		cache:      cacheClient,
		cacheTTL:   cacheTTL,
		adminEmail: adminEmail,
	}
}

func (s *profileService) Get(ctx context.Context) (*model.Profile, error) {
	var cached model.Profile
	if hit, _ := s.cache.GetJSON(ctx, profileCacheKey, &cached); hit {
		return &cached, nil
	}

	profile, err := s.repo.GetOrCreate(ctx, s.defaults())
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, profileCacheKey, profile, s.cacheTTL)
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, in UpdateProfileInput) (*model.Profile, error) {
	profile, err := s.repo.GetOrCreate(ctx, s.defaults())
	if err != nil {
		return nil, err
	}

	applyString(&profile.Name, in.Name)
	applyString(&profile.Tagline, in.Tagline)
	applyString(&profile.Location, in.Location)
	applyString(&profile.Summary, in.Summary)
	applyString(&profile.Codeforces, in.Codeforces)
	applyString(&profile.Leetcode, in.Leetcode)

	socials := []struct {
		platform string
		in       *string
		dst      *string
	}{
		{"linkedin", in.Linkedin, &profile.Linkedin},
		{"github", in.Github, &profile.Github},
		{"twitter", in.Twitter, &profile.Twitter},
		{"instagram", in.Instagram, &profile.Instagram},
	}
	for _, soc := range socials {
		if soc.in == nil || strings.TrimSpace(*soc.in) == "" {
			continue
		}
		normalized, err := validate.NormalizeSocial(soc.platform, *soc.in)
		if err != nil {
			return nil, err
		}
		*soc.dst = normalized
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, profileCacheKey)
	return profile, nil
}

func (s *profileService) SetPhoto(ctx context.Context, url string) (*model.Profile, error) {
	return s.setReference(ctx, func(p *model.Profile) { p.ProfilePhoto = url })
}

func (s *profileService) SetCV(ctx context.Context, url string) (*model.Profile, error) {
	return s.setReference(ctx, func(p *model.Profile) { p.CVUrl = url })
}

func (s *profileService) setReference(ctx context.Context, set func(*model.Profile)) (*model.Profile, error) {
	profile, err := s.repo.GetOrCreate(ctx, s.defaults())
	if err != nil {
		return nil, err
	}
	set(profile)
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, profileCacheKey)
	return profile, nil
}

// defaults is the row created on first read of an empty profile table.
func (s *profileService) defaults() *model.Profile {
	return &model.Profile{
		Email:   s.adminEmail,
		Name:    "Portfolio Owner",
		Tagline: "Full Stack Developer",
	}
}

// applyString copies an update field into the record unless it is absent or
// empty. Clearing a field through this path is intentionally unsupported.
func applyString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}
