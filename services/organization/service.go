package organization

import (
	"context"
	"errors"
	"fmt"
	"time"

	orgRepo "coachdesk/database/repository/organization"
	"coachdesk/models"
	"coachdesk/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an organization.
	ErrEmailTaken = errors.New("an organization with this email already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// OrganizationService manages coaching tenants and their auth tokens.
type OrganizationService interface {
	Register(ctx context.Context, reg models.OrganizationRegistration) (*models.Organization, string, error)
	Authenticate(ctx context.Context, login models.OrganizationLogin) (*models.Organization, string, error)
	GetByID(ctx context.Context, orgID string) (*models.Organization, error)
}

// DefaultOrganizationService is the production OrganizationService.
type DefaultOrganizationService struct {
	Repo orgRepo.OrganizationRepository
}

func (s *DefaultOrganizationService) Register(ctx context.Context, reg models.OrganizationRegistration) (*models.Organization, string, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	org := models.Organization{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, &org); err != nil {
		return nil, "", fmt.Errorf("failed to create organization: %w", err)
	}

	token, err := s.issueToken(ctx, &org)
	if err != nil {
		return nil, "", err
	}

	logger.Info("organization registered", zap.String("orgID", org.ID))
	return &org, token, nil
}

func (s *DefaultOrganizationService) Authenticate(ctx context.Context, login models.OrganizationLogin) (*models.Organization, string, error) {
	org, err := s.Repo.GetByEmail(ctx, login.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to fetch organization: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte(login.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, org)
	if err != nil {
		return nil, "", err
	}
	return org, token, nil
}

func (s *DefaultOrganizationService) GetByID(ctx context.Context, orgID string) (*models.Organization, error) {
	return s.Repo.GetByID(ctx, orgID)
}

func (s *DefaultOrganizationService) issueToken(ctx context.Context, org *models.Organization) (string, error) {
	token, err := utils.GenerateToken(org.ID, org.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, org.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("failed to persist token hash: %w", err)
	}
	return token, nil
}
