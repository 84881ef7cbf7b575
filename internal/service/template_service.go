package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/repository"
	"github.com/granger49/Protocol/pkg/entity"
	"github.com/granger49/Protocol/pkg/schedule"
)

type TemplateService struct {
	repo repository.TemplatesRepositoryI
}

func NewTemplateService(templatesRepo repository.TemplatesRepositoryI) *TemplateService {
	if templatesRepo == nil {
		log.Fatal("provided nil templatesRepo")
	}
	return &TemplateService{
		repo: templatesRepo,
	}
}

func (ts *TemplateService) ListTemplates(ctx context.Context, uid uuid.UUID) ([]*entity.Template, error) {
	templates, err := ts.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return templates, nil
}

func (ts *TemplateService) CreateTemplate(ctx context.Context, uid uuid.UUID, req *CreateTemplateRequest) (*entity.Template, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "user"
	}
	template, err := ts.repo.Create(ctx, &entity.Template{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		Schedule:    req.Schedule,
		IsActive:    req.IsActive,
		CreatedBy:   createdBy,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return template, nil
}

func (ts *TemplateService) ActivateTemplate(ctx context.Context, uid, id uuid.UUID) (*entity.Template, error) {
	// Activate is scoped to uid in the repository, so somebody else's
	// template id comes back as not found.
	template, err := ts.repo.Activate(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return template, nil
}

// DeleteTemplate refuses to remove the active template: the user must
// activate another one first, so they are never left without a plan.
func (ts *TemplateService) DeleteTemplate(ctx context.Context, uid, id uuid.UUID) error {
	template, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return errors.New("templates repository error: " + err.Error())
	}
	if template.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	if template.IsActive {
		return errorvalues.ErrTemplateActive
	}
	err = ts.repo.Delete(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return errors.New("templates repository error: " + err.Error())
	}
	return nil
}

func (ts *TemplateService) GetActiveTemplate(ctx context.Context, uid uuid.UUID) (*entity.Template, error) {
	template, err := ts.repo.GetActive(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return template, nil
}

func (ts *TemplateService) SeedDefaultTemplate(ctx context.Context, uid uuid.UUID) error {
	count, err := ts.repo.CountByUserID(ctx, uid)
	if err != nil {
		return errors.New("templates repository error: " + err.Error())
	}
	if count > 0 {
		return nil
	}
	_, err = ts.repo.Create(ctx, &entity.Template{
		UserID:      uid,
		Name:        schedule.DefaultTemplateName,
		Description: schedule.DefaultTemplateDescription,
		Schedule:    schedule.DefaultWeek(),
		IsActive:    true,
		CreatedBy:   "system",
	})
	if err != nil {
		return errors.New("seeding default template error: " + err.Error())
	}
	return nil
}
