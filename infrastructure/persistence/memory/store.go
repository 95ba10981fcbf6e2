/*
Package memory 提供进程内的联系人存储，用于本地运行与测试。

Store 保存快照（ReconstructionDTO）而不是聚合指针，
读出的聚合与存储互不影响，行为与 SQL 存储一致。
*/
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	personapp "contactbook/application/person"
	"contactbook/domain/person"
	"contactbook/domain/shared"
	"contactbook/infrastructure/persistence"
)

const DefaultActor = "system"

// Store is a mutex-guarded people table shared by the repository and query side.
type Store struct {
	// txMu 串行化工作单元，mu 保护下面的数据
	txMu   sync.Mutex
	mu     sync.RWMutex
	people map[int64]person.ReconstructionDTO
	nextID int64
	events []shared.DomainEvent

	now          func() time.Time
	defaultActor string
}

func NewStore() *Store {
	return &Store{
		people:       make(map[int64]person.ReconstructionDTO),
		now:          func() time.Time { return time.Now().UTC() },
		defaultActor: DefaultActor,
	}
}

// SetClock overrides the clock used for audit timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) SetDefaultActor(actor string) {
	if actor != "" {
		s.defaultActor = actor
	}
}

func (s *Store) actor(ctx context.Context) string {
	if actor := persistence.ActorFromContext(ctx); actor != "" {
		return actor
	}
	return s.defaultActor
}

// Events returns the events committed through unit of work, oldest first.
func (s *Store) Events() []shared.DomainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *Store) appendEvents(events []shared.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// checkpoint captures the people table and id sequence; the returned func
// puts them back. Entries are replaced wholesale on write, so a shallow copy
// of the map is enough.
func (s *Store) checkpoint() func() {
	s.mu.RLock()
	people, nextID := maps.Clone(s.people), s.nextID
	s.mu.RUnlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.people, s.nextID = people, nextID
	}
}

func snapshot(p *person.Person) person.ReconstructionDTO {
	addresses := p.Addresses()
	dtos := make([]person.AddressDTO, len(addresses))
	for i, a := range addresses {
		dtos[i] = person.AddressDTO{
			AddressLine:  a.AddressLine(),
			Type:         a.Type(),
			PhoneNumbers: a.Numbers(),
		}
	}
	return person.ReconstructionDTO{
		ID:             p.ID(),
		FullName:       p.FullName(),
		Addresses:      dtos,
		Created:        p.Created(),
		CreatedBy:      p.CreatedBy(),
		LastModified:   p.LastModified(),
		LastModifiedBy: p.LastModifiedBy(),
		IsDeleted:      p.IsDeleted(),
		Deleted:        p.Deleted(),
		DeletedBy:      p.DeletedBy(),
	}
}

func toPersonDto(dto person.ReconstructionDTO) personapp.PersonDto {
	out := personapp.PersonDto{
		ID:        dto.ID,
		FullName:  dto.FullName,
		Addresses: make([]personapp.AddressDto, 0, len(dto.Addresses)),
	}
	addresses := slices.Clone(dto.Addresses)
	sort.SliceStable(addresses, func(i, j int) bool { return addresses[i].Type < addresses[j].Type })
	for _, a := range addresses {
		numbers := slices.Clone(a.PhoneNumbers)
		if numbers == nil {
			numbers = []string{}
		}
		out.Addresses = append(out.Addresses, personapp.AddressDto{
			AddressLine:  a.AddressLine,
			AddressType:  a.Type.String(),
			PhoneNumbers: numbers,
		})
	}
	return out
}

// sortedIDs returns all ids in ascending order; callers hold the read lock.
func (s *Store) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.people))
	for id := range s.people {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
