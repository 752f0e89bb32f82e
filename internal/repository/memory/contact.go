package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// ContactRepository implements domain.ContactRepository in memory.
type ContactRepository struct {
	store *Store
}

func (r *ContactRepository) Insert(ctx context.Context, contact *domain.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.contacts[contact.ID] = *contact
	r.store.nextSeq(contact.ID)
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	contacts := make([]domain.Contact, 0, len(r.store.contacts))
	for _, c := range r.store.contacts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Name < contacts[j].Name
	})
	return contacts, nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, patch domain.ContactPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contact, ok := r.store.contacts[id]
	if !ok {
		return domain.NewNotFoundError("contacts", id)
	}
	if patch.Name != nil {
		contact.Name = *patch.Name
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.Phone != nil {
		contact.Phone = *patch.Phone
	}
	if patch.Company != nil {
		contact.Company = *patch.Company
	}
	if patch.Role != nil {
		contact.Role = *patch.Role
	}
	if patch.Notes != nil {
		contact.Notes = *patch.Notes
	}
	if patch.Tags != nil {
		contact.Tags = *patch.Tags
	}
	if patch.LastInteraction != nil {
		contact.LastInteraction = *patch.LastInteraction
	}
	if patch.Source != nil {
		contact.Source = *patch.Source
	}
	r.store.contacts[id] = contact
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.contacts[id]; !ok {
		return domain.NewNotFoundError("contacts", id)
	}
	delete(r.store.contacts, id)
	return nil
}
