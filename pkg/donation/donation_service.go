package donation

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.DonationRequest, donorID string) (*domain.Donation, error)
		GetDonationByID(ctx context.Context, id string) (*domain.Donation, error)
		ListDonations(ctx context.Context, callerID, role, status string) ([]*domain.Donation, error)
		UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, callerID string) error
		DeleteDonation(ctx context.Context, id string, callerID, role string) error
		GetStatistics(ctx context.Context) (*domain.DonationStatistics, error)
		ExpireOverdueDonations(ctx context.Context) (int64, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.DonationRequest, donorID string) (*domain.Donation, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	donorUUID, err := uuid.Parse(donorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donationID := uuid.New()

	var imageURL string
	if req.FoodImage != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.FoodImage,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	donation := &entities.Donation{
		ID:         donationID,
		DonorID:    donorUUID,
		Item:       req.Item,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: expiryDate,
		Status:     domain.DonationPending,
		ImageURL:   imageURL,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDonation(donation), nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return toDonation(donation), nil
}

// ListDonations scopes the listing by the caller's role: donors see their own
// offers, receptors see the open pool plus their claims, drivers see accepted
// donations waiting for transport plus their own assignments, admins see all.
// status "finalized" switches donors and receptors to their history.
func (s *donationService) ListDonations(ctx context.Context, callerID, role, status string) ([]*domain.Donation, error) {
	var (
		donations []*entities.Donation
		err       error
	)

	finalized := status == "finalized"

	switch role {
	case domain.RoleDonor:
		donations, err = s.donationRepository.ListForDonor(ctx, callerID, finalized)
	case domain.RoleReceptor:
		donations, err = s.donationRepository.ListForReceptor(ctx, callerID, finalized)
	case domain.RoleDriver:
		donations, err = s.donationRepository.ListForDriver(ctx, callerID)
	case domain.RoleAdmin:
		if finalized {
			status = ""
		}
		donations, err = s.donationRepository.ListAll(ctx, status)
	default:
		return nil, domain.ErrUserNotAllowed
	}
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDonation(d))
	}
	return result, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, callerID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != callerID {
		return domain.ErrUnauthorizedDonation
	}

	// Offers can only be edited before anyone claims them.
	if donation.Status != domain.DonationPending {
		if domain.TerminalDonationStatus(donation.Status) {
			return domain.ErrDonationNotActionable
		}
		return domain.ErrDonationNotPending
	}

	fields := map[string]interface{}{}
	if req.Item != "" {
		fields["item"] = req.Item
	}
	if req.Quantity > 0 {
		fields["quantity"] = req.Quantity
	}
	if req.Unit != "" {
		fields["unit"] = req.Unit
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		fields["expiry_date"] = expiryDate
	}

	if len(fields) == 0 {
		return nil
	}

	return s.donationRepository.UpdateDonationFields(ctx, id, fields)
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, callerID, role string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if role != domain.RoleAdmin && donation.DonorID.String() != callerID {
		return domain.ErrUnauthorizedDonation
	}

	if donation.Status != domain.DonationPending {
		if domain.TerminalDonationStatus(donation.Status) {
			return domain.ErrDonationNotActionable
		}
		return domain.ErrDonationNotPending
	}

	return s.donationRepository.DeleteDonation(ctx, id)
}

func (s *donationService) GetStatistics(ctx context.Context) (*domain.DonationStatistics, error) {
	return s.donationRepository.GetStatistics(ctx)
}

func (s *donationService) ExpireOverdueDonations(ctx context.Context) (int64, error) {
	return s.donationRepository.ExpireOverdue(ctx, time.Now())
}

func toDonation(donation *entities.Donation) *domain.Donation {
	result := &domain.Donation{
		ID:         donation.ID.String(),
		DonorID:    donation.DonorID.String(),
		Item:       donation.Item,
		Quantity:   donation.Quantity,
		Unit:       donation.Unit,
		ExpiryDate: donation.ExpiryDate,
		Status:     donation.Status,
		ImageURL:   donation.ImageURL,
		CreatedAt:  donation.CreatedAt,
		UpdatedAt:  donation.UpdatedAt,
	}

	if donation.ReceptorID != nil {
		result.ReceptorID = donation.ReceptorID.String()
	}
	if donation.DriverID != nil {
		result.DriverID = donation.DriverID.String()
	}

	return result
}
