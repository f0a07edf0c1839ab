package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

// DashboardStats aggregates submission counts for the admin overview page.
type DashboardStats struct {
	Teams          int `json:"teams"`
	HackathonTeams int `json:"hackathon_teams"`
	Applications   int `json:"applications"`
	Contacts       int `json:"contacts"`
	CpuInquiries   int `json:"cpu_inquiries"`
}

type AdminService interface {
	ListTeams(ctx context.Context, search string) ([]models.TeamListing, error)
	ListHackathonTeams(ctx context.Context, search string) ([]models.TeamListing, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	teams          repositories.TeamRepository
	hackathonTeams repositories.HackathonTeamRepository
	careers        repositories.CareerRepository
	contacts       repositories.ContactRepository
	inquiries      repositories.InquiryRepository
}

func NewAdminService(
	teams repositories.TeamRepository,
	hackathonTeams repositories.HackathonTeamRepository,
	careers repositories.CareerRepository,
	contacts repositories.ContactRepository,
	inquiries repositories.InquiryRepository,
) AdminService {
	return &adminService{
		teams:          teams,
		hackathonTeams: hackathonTeams,
		careers:        careers,
		contacts:       contacts,
		inquiries:      inquiries,
	}
}

func (s *adminService) ListTeams(ctx context.Context, search string) ([]models.TeamListing, error) {
	listings, err := s.teams.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return listings, nil
}

func (s *adminService) ListHackathonTeams(ctx context.Context, search string) ([]models.TeamListing, error) {
	listings, err := s.hackathonTeams.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathon teams: %w", err)
	}
	return listings, nil
}

func (s *adminService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Teams, err = s.teams.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.HackathonTeams, err = s.hackathonTeams.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Applications, err = s.careers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Contacts, err = s.contacts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CpuInquiries, err = s.inquiries.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}
	return &stats, nil
}
