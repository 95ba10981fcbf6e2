package person

import (
	"strconv"
	"time"
)

// PersonCreatedEvent is recorded when storage assigns the person's identity.
type PersonCreatedEvent struct {
	personID   int64
	fullName   string
	occurredOn time.Time
}

func NewPersonCreatedEvent(personID int64, fullName string) *PersonCreatedEvent {
	return &PersonCreatedEvent{personID: personID, fullName: fullName, occurredOn: time.Now()}
}

func (e *PersonCreatedEvent) EventName() string      { return "person.created" }
func (e *PersonCreatedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *PersonCreatedEvent) GetAggregateID() string { return strconv.FormatInt(e.personID, 10) }
func (e *PersonCreatedEvent) PersonID() int64        { return e.personID }
func (e *PersonCreatedEvent) Payload() map[string]any {
	return map[string]any{"person_id": e.personID, "full_name": e.fullName}
}

type PersonRenamedEvent struct {
	personID   int64
	oldName    string
	newName    string
	occurredOn time.Time
}

func NewPersonRenamedEvent(personID int64, oldName, newName string) *PersonRenamedEvent {
	return &PersonRenamedEvent{personID: personID, oldName: oldName, newName: newName, occurredOn: time.Now()}
}

func (e *PersonRenamedEvent) EventName() string      { return "person.renamed" }
func (e *PersonRenamedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *PersonRenamedEvent) GetAggregateID() string { return strconv.FormatInt(e.personID, 10) }
func (e *PersonRenamedEvent) Payload() map[string]any {
	return map[string]any{"person_id": e.personID, "old_name": e.oldName, "new_name": e.newName}
}

type PersonAddressUpdatedEvent struct {
	personID    int64
	addressType AddressType
	addressLine string
	occurredOn  time.Time
}

func NewPersonAddressUpdatedEvent(personID int64, t AddressType, line string) *PersonAddressUpdatedEvent {
	return &PersonAddressUpdatedEvent{personID: personID, addressType: t, addressLine: line, occurredOn: time.Now()}
}

func (e *PersonAddressUpdatedEvent) EventName() string      { return "person.address_updated" }
func (e *PersonAddressUpdatedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *PersonAddressUpdatedEvent) GetAggregateID() string { return strconv.FormatInt(e.personID, 10) }
func (e *PersonAddressUpdatedEvent) Payload() map[string]any {
	return map[string]any{
		"person_id":    e.personID,
		"address_type": e.addressType.String(),
		"address_line": e.addressLine,
	}
}

type PersonDeletedEvent struct {
	personID   int64
	deletedBy  string
	occurredOn time.Time
}

func NewPersonDeletedEvent(personID int64, deletedBy string, at time.Time) *PersonDeletedEvent {
	return &PersonDeletedEvent{personID: personID, deletedBy: deletedBy, occurredOn: at}
}

func (e *PersonDeletedEvent) EventName() string      { return "person.deleted" }
func (e *PersonDeletedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *PersonDeletedEvent) GetAggregateID() string { return strconv.FormatInt(e.personID, 10) }
func (e *PersonDeletedEvent) Payload() map[string]any {
	return map[string]any{"person_id": e.personID, "deleted_by": e.deletedBy}
}
