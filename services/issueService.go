package services

import (
	"context"
	"strings"

	"fixitsl-be/errs"
	"fixitsl-be/models"
	"fixitsl-be/repositories"
)

// MediaUploader turns uploaded image bytes into a durable public URL
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// CredentialVerifier validates a bearer credential and returns the
// identity it proves
type CredentialVerifier func(credential string) (string, error)

// SubmitRequest carries a citizen's report submission. Latitude and
// longitude are pointers so that an absent coordinate is distinguishable
// from zero.
type SubmitRequest struct {
	Title       string
	Description string
	Category    string
	Latitude    *float64
	Longitude   *float64
	Image       []byte
	ImageType   string
}

// IssueService orchestrates the issue lifecycle: public submission,
// authenticated status transitions and the public listing.
type IssueService struct {
	issues repositories.IssueRepository
	media  MediaUploader
	verify CredentialVerifier
}

func NewIssueService(issues repositories.IssueRepository, media MediaUploader, verify CredentialVerifier) *IssueService {
	return &IssueService{issues: issues, media: media, verify: verify}
}

// Submit validates the report, resolves the attached image if one was
// supplied, and persists a new issue with status Open. Validation runs
// before the upload so a bad submission never spends the upload cost, and
// an upload failure aborts the whole submission.
func (s *IssueService) Submit(ctx context.Context, req SubmitRequest) (*models.Issue, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if title == "" {
		return nil, errs.Wrap("title is required", errs.ErrValidation)
	}
	if description == "" {
		return nil, errs.Wrap("description is required", errs.ErrValidation)
	}
	if !models.ValidCategory(req.Category) {
		return nil, errs.Wrap("invalid category", errs.ErrValidation)
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, errs.Wrap("location is required", errs.ErrValidation)
	}

	var imageURL *string
	if len(req.Image) > 0 {
		url, err := s.media.Upload(ctx, req.Image, req.ImageType)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	issue := &models.Issue{
		Title:       title,
		Description: description,
		Category:    models.IssueCategory(req.Category),
		ImageURL:    imageURL,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Status:      models.Open,
	}

	return s.issues.Insert(ctx, issue)
}

// UpdateStatus verifies the credential, validates the target status and
// persists the transition. Any status may move to any other; only the
// status field changes.
func (s *IssueService) UpdateStatus(ctx context.Context, id, newStatus, credential string) (*models.Issue, error) {
	if _, err := s.verify(credential); err != nil {
		return nil, err
	}

	if !models.ValidStatus(newStatus) {
		return nil, errs.Wrap("invalid status", errs.ErrValidation)
	}

	return s.issues.UpdateStatus(ctx, id, models.IssueStatus(newStatus))
}

// List returns all issues, newest first
func (s *IssueService) List(ctx context.Context) ([]models.Issue, error) {
	return s.issues.FindAll(ctx)
}
