package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// PaymentService interface defines payment service methods
type PaymentService interface {
	Create(callerID uint, payment *models.Payment) error
	Get(callerID, id uint) (*models.Payment, error)
	List(callerID uint, page, perPage int) ([]models.Payment, int64, error)
	Update(callerID, id uint, input *models.Payment) (*models.Payment, error)
	Delete(callerID, id uint) error
}

// paymentService implements PaymentService interface
type paymentService struct {
	paymentRepo repository.PaymentRepository
	logger      *logger.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, logger *logger.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (s *paymentService) Create(callerID uint, payment *models.Payment) error {
	if payment.ResidentID != callerID {
		return NewForbiddenError("You may only record payments for your own account.")
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		s.logger.WithError(err).Error("Failed to create payment")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"payment_id": payment.ID,
		"amount":     payment.Amount,
	}).Info("Payment recorded successfully")
	return nil
}

func (s *paymentService) Get(callerID, id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("payment")
		}
		return nil, err
	}
	if payment.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own payments.")
	}
	return payment, nil
}

func (s *paymentService) List(callerID uint, page, perPage int) ([]models.Payment, int64, error) {
	return s.paymentRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *paymentService) Update(callerID, id uint, input *models.Payment) (*models.Payment, error) {
	payment, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	payment.MethodOfPayment = input.MethodOfPayment
	payment.Amount = input.Amount
	payment.PaidAt = input.PaidAt

	if err := s.paymentRepo.Update(payment); err != nil {
		s.logger.WithError(err).WithField("payment_id", id).Error("Failed to update payment")
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("payment_id", id).Error("Failed to delete payment")
		return err
	}
	return nil
}
