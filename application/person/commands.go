package person

import (
	"context"
	"strings"

	"contactbook/application/result"
	"contactbook/domain/person"
	apperrors "contactbook/pkg/errors"
)

// CreatePerson 创建联系人，返回新联系人的 ID
func (s *ApplicationService) CreatePerson(ctx context.Context, cmd CreatePersonCommand) (res result.Of[int64], err error) {
	ctx, done := s.begin(ctx, "CreatePerson")
	defer func() { done(res.Succeeded(), err) }()

	if err := s.validator.Validate(cmd); err != nil {
		return result.Of[int64]{}, err
	}

	var id int64
	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		home, err := toAddress(person.Home, cmd.HomeAddress)
		if err != nil {
			return err
		}
		business, err := toAddress(person.Business, cmd.BusinessAddress)
		if err != nil {
			return err
		}
		p, err := person.NewPerson(cmd.FullName, home, business)
		if err != nil {
			return err
		}
		if err := s.people.Add(ctx, p); err != nil {
			return err
		}
		uow.RegisterNew(p)
		id = p.ID()
		return nil
	})
	return toResult(ctx, "CreatePerson", id, err)
}

// EditPerson 修改联系人姓名
func (s *ApplicationService) EditPerson(ctx context.Context, cmd EditPersonCommand) (res result.Result, err error) {
	ctx, done := s.begin(ctx, "EditPerson")
	defer func() { done(res.Succeeded(), err) }()

	if err := s.validator.Validate(cmd); err != nil {
		return result.Result{}, err
	}

	unchanged := false
	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		p, err := s.people.FindByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if strings.EqualFold(p.FullName(), cmd.FullName) {
			unchanged = true
			return nil
		}
		if err := p.UpdateFullName(cmd.FullName); err != nil {
			return err
		}
		if err := s.people.Save(ctx, p); err != nil {
			return err
		}
		uow.RegisterDirty(p)
		return nil
	})
	if err == nil && unchanged {
		return result.Failure("No changes detected."), nil
	}
	return untyped(toResult(ctx, "EditPerson", none{}, err))
}

// DeletePerson 软删除联系人；删除人取自请求上下文
func (s *ApplicationService) DeletePerson(ctx context.Context, cmd DeletePersonCommand) (res result.Result, err error) {
	ctx, done := s.begin(ctx, "DeletePerson")
	defer func() { done(res.Succeeded(), err) }()

	if err := s.validator.Validate(cmd); err != nil {
		return result.Result{}, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		p, err := s.people.FindByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		p.Delete(s.actor(ctx), s.now())
		if err := s.people.Save(ctx, p); err != nil {
			return err
		}
		uow.RegisterRemoved(p)
		return nil
	})
	return untyped(toResult(ctx, "DeletePerson", none{}, err))
}

// UpdateAddress 替换联系人的 Home 或 Business 地址
func (s *ApplicationService) UpdateAddress(ctx context.Context, cmd UpdateAddressCommand) (res result.Result, err error) {
	ctx, done := s.begin(ctx, "UpdateAddress")
	defer func() { done(res.Succeeded(), err) }()

	if err := s.validator.Validate(cmd); err != nil {
		return result.Result{}, err
	}
	addressType, err := person.ParseAddressType(cmd.AddressType)
	if err != nil {
		// oneof 已校验，这里只是防御类型表变化
		return result.Result{}, apperrors.FromDomainError(err)
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		p, err := s.people.FindByID(ctx, cmd.PersonID)
		if err != nil {
			return err
		}
		address, err := toAddress(addressType, cmd.Address)
		if err != nil {
			return err
		}
		if err := p.UpdateAddress(addressType, address); err != nil {
			return err
		}
		if err := s.people.Save(ctx, p); err != nil {
			return err
		}
		uow.RegisterDirty(p)
		return nil
	})
	return untyped(toResult(ctx, "UpdateAddress", none{}, err))
}
