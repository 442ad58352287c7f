package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"contact-manager-api/internal/application/ports"
	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/infrastructure/mq"
	"contact-manager-api/internal/interface/api/rest/dto/contact"
)

type ContactService struct {
	contactRepository domain.Repository
	listCache         ports.ListCache
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewContactService(
	contactRepository domain.Repository,
	listCache ports.ListCache,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ContactService {
	return &ContactService{
		contactRepository: contactRepository,
		listCache:         listCache,
		mq:                rbMQ,
		mCounter:          mCounter,
	}
}

func (cs *ContactService) ListActive(ctx context.Context) (domain.Contacts, error) {
	if cached, ok := cs.listCache.GetActive(ctx); ok {
		cs.mCounter.WithLabelValues("contact_list_cache_hits_total").Inc()
		return cached, nil
	}

	active, err := cs.contactRepository.FetchActive(ctx)
	if err != nil {
		return nil, err
	}

	// cache fill is best effort, the DB read already succeeded
	_ = cs.listCache.SetActive(ctx, active)

	return active, nil
}

func (cs *ContactService) Create(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	cRet, err := cs.contactRepository.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}

	_ = cs.listCache.Invalidate(ctx)

	if cRet != nil {
		payload := contact.ToResponseContact(*cRet)
		cs.mq.GetInputChan() <- mq.Event{
			Id:        uuid.New(),
			TS:        time.Now(),
			Action:    mq.ActionCreated,
			ContactID: int64(cRet.ID),
			Payload:   &payload,
		}
	}

	cs.mCounter.WithLabelValues("contact_created_total").Inc()

	return cRet, nil
}

func (cs *ContactService) SoftDelete(ctx context.Context, id domain.ID) error {
	if err := cs.contactRepository.SoftDeleteContact(ctx, id); err != nil {
		return err
	}

	_ = cs.listCache.Invalidate(ctx)

	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Action:    mq.ActionDeleted,
		ContactID: int64(id),
	}

	cs.mCounter.WithLabelValues("contact_deleted_total").Inc()

	return nil
}

func (cs *ContactService) RecoverAll(ctx context.Context) error {
	if err := cs.contactRepository.RecoverAllContacts(ctx); err != nil {
		return err
	}

	_ = cs.listCache.Invalidate(ctx)

	cs.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionRecoveredAll,
	}

	cs.mCounter.WithLabelValues("contact_recovered_total").Inc()

	return nil
}

func (cs *ContactService) RecoverOne(ctx context.Context, id domain.ID) error {
	if err := cs.contactRepository.RecoverContact(ctx, id); err != nil {
		return err
	}

	_ = cs.listCache.Invalidate(ctx)

	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Action:    mq.ActionRecovered,
		ContactID: int64(id),
	}

	cs.mCounter.WithLabelValues("contact_recovered_total").Inc()

	return nil
}
