package service

import (
	"context"
	"log"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/mailer"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/repository"
)

type ContactService interface {
	// SubmitMessage persists the contact message, then sends the
	// operator notification and the auto-reply. Both sends are
	// best-effort: once the row is written the submission counts as
	// successful.
	SubmitMessage(ctx context.Context, req *dto.ContactRequest) (*models.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactMessageRepository
	mail        mailer.Mailer
}

func NewContactService(contactRepo repository.ContactMessageRepository, mail mailer.Mailer) ContactService {
	return &contactService{contactRepo: contactRepo, mail: mail}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *dto.ContactRequest) (*models.ContactMessage, error) {
	log.Printf("[ContactService] contact submission received from %s", req.Email)

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		log.Printf("[ContactService] failed to persist contact message: %v", err)
		return nil, err
	}

	if s.mail != nil {
		if err := s.mail.SendContactNotification(ctx, msg); err != nil {
			log.Printf("[ContactService] operator notification failed: %v", err)
		}
		if err := s.mail.SendContactAutoReply(ctx, msg); err != nil {
			log.Printf("[ContactService] auto-reply to %s failed: %v", msg.Email, err)
		}
	}

	return msg, nil
}
