package person

import "contactbook/domain/person"

func toAddress(t person.AddressType, req AddressRequest) (*person.Address, error) {
	phones, err := person.NewPhoneNumbers(req.PhoneNumbers)
	if err != nil {
		return nil, err
	}
	return person.NewAddress(req.AddressLine, t, phones)
}

// ToPersonDto maps an aggregate to its read model.
func ToPersonDto(p *person.Person) PersonDto {
	addresses := p.Addresses()
	dto := PersonDto{
		ID:        p.ID(),
		FullName:  p.FullName(),
		Addresses: make([]AddressDto, len(addresses)),
	}
	for i, a := range addresses {
		dto.Addresses[i] = AddressDto{
			AddressLine:  a.AddressLine(),
			AddressType:  a.Type().String(),
			PhoneNumbers: a.Numbers(),
		}
	}
	return dto
}
