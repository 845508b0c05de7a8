// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its line rows; the lines are keyed by
// the order id and their position in the draft's line sequence so the stored
// order reads back in the exact order it was edited.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns are numeric so no precision is lost; status axes are stored
// as their integer enum values. The pricing breakdown is never stored, it is
// recomputed from these columns on read.
type OrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	CustomerName string
	Phone        string
	AltPhone     *string
	Email        string

	BillingAddress  string
	ShippingAddress string
	SameAddress     bool
	PostalCode      string

	Category       int
	DispatchOrigin string
	GemOrderNumber string
	DeliveryDate   *time.Time
	DemoDate       *time.Time

	PaymentTerms  int
	PaymentMethod int
	TransactionID string
	ChequeID      string
	CreditDays    int
	Collected     decimal.Decimal `gorm:"type:numeric"`

	FreightAmount      decimal.Decimal `gorm:"type:numeric"`
	FreightMode        int
	InstallationAmount decimal.Decimal `gorm:"type:numeric"`
	InstallationMode   int

	Remarks string

	ApprovalStatus   int
	ProductionStatus int
	BillingStatus    int
	DispatchStatus   int `gorm:"index"`
	Stamp            int

	PendingDispatchTarget      *int `gorm:"index"`
	PendingDispatchStamp       *int
	PendingDispatchRequestedAt *time.Time

	SubmittedAt *time.Time

	Lines []LineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one product line row, keyed by the owning order and the
// line's position in the draft.
type LineDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx     int       `gorm:"primaryKey"`

	ProductType string
	Size        string
	Spec        string
	Qty         int
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	TaxRate     string
	Warranty    string
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	var altPhone *string
	if alt := aggregate.AltPhone(); alt != nil {
		s := alt.String()
		altPhone = &s
	}

	dto := OrderDTO{
		ID:                 id,
		CustomerName:       aggregate.CustomerName(),
		Phone:              aggregate.Phone().String(),
		AltPhone:           altPhone,
		Email:              aggregate.Email().String(),
		BillingAddress:     aggregate.BillingAddress(),
		ShippingAddress:    aggregate.ShippingAddress(),
		SameAddress:        aggregate.SameAddress(),
		PostalCode:         aggregate.PostalCode().String(),
		Category:           int(aggregate.Category()),
		DispatchOrigin:     aggregate.DispatchOrigin(),
		GemOrderNumber:     aggregate.GemOrderNumber(),
		DeliveryDate:       aggregate.DeliveryDate(),
		DemoDate:           aggregate.DemoDate(),
		PaymentTerms:       int(aggregate.PaymentTerms()),
		PaymentMethod:      int(aggregate.PaymentMethod()),
		TransactionID:      aggregate.TransactionID(),
		ChequeID:           aggregate.ChequeID(),
		CreditDays:         aggregate.CreditDays(),
		Collected:          aggregate.Collected().Amount(),
		FreightAmount:      aggregate.FreightAmount().Amount(),
		FreightMode:        int(aggregate.FreightMode()),
		InstallationAmount: aggregate.InstallationAmount().Amount(),
		InstallationMode:   int(aggregate.InstallationMode()),
		Remarks:            aggregate.Remarks(),
		ApprovalStatus:     int(aggregate.ApprovalStatus()),
		ProductionStatus:   int(aggregate.ProductionStatus()),
		BillingStatus:      int(aggregate.BillingStatus()),
		DispatchStatus:     int(aggregate.DispatchStatus()),
		Stamp:              int(aggregate.Stamp()),
		SubmittedAt:        aggregate.SubmittedAt(),
	}

	if pending := aggregate.PendingDispatch(); pending != nil {
		target := int(pending.Target)
		stamp := int(pending.Stamp)
		requestedAt := pending.RequestedAt
		dto.PendingDispatchTarget = &target
		dto.PendingDispatchStamp = &stamp
		dto.PendingDispatchRequestedAt = &requestedAt
	}

	for i, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, LineDTO{
			OrderID:     id,
			Idx:         i,
			ProductType: line.ProductType(),
			Size:        line.Size(),
			Spec:        line.Spec(),
			Qty:         line.Qty(),
			UnitPrice:   line.UnitPrice().Amount(),
			TaxRate:     line.TaxRate().String(),
			Warranty:    line.Warranty(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates the identity and status columns.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	var altPhone *kernel.Phone
	if dto.AltPhone != nil {
		p, altErr := kernel.NewPhone(*dto.AltPhone)
		if altErr != nil {
			return nil, altErr
		}
		altPhone = &p
	}

	var email kernel.Email
	if dto.Email != "" {
		if email, err = kernel.NewEmail(dto.Email); err != nil {
			return nil, err
		}
	}

	var postalCode kernel.PostalCode
	if dto.PostalCode != "" {
		if postalCode, err = kernel.NewPostalCode(dto.PostalCode); err != nil {
			return nil, err
		}
	}

	collected, err := kernel.NewMoney(dto.Collected)
	if err != nil {
		return nil, err
	}
	freightAmount, err := kernel.NewMoney(dto.FreightAmount)
	if err != nil {
		return nil, err
	}
	installationAmount, err := kernel.NewMoney(dto.InstallationAmount)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		unitPrice, priceErr := kernel.NewMoney(lineDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		taxRate, rateErr := order.TaxRateFromString(lineDTO.TaxRate)
		if rateErr != nil {
			return nil, rateErr
		}
		line, lineErr := order.NewLine(
			lineDTO.ProductType, lineDTO.Size, lineDTO.Spec,
			lineDTO.Qty, unitPrice, taxRate, lineDTO.Warranty)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var pending *order.DispatchRequest
	if dto.PendingDispatchTarget != nil {
		pending = &order.DispatchRequest{
			Target: order.DispatchStatus(*dto.PendingDispatchTarget),
		}
		if dto.PendingDispatchStamp != nil {
			pending.Stamp = order.Stamp(*dto.PendingDispatchStamp)
		}
		if dto.PendingDispatchRequestedAt != nil {
			pending.RequestedAt = *dto.PendingDispatchRequestedAt
		}
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		CustomerName:       dto.CustomerName,
		Phone:              phone,
		AltPhone:           altPhone,
		Email:              email,
		BillingAddress:     dto.BillingAddress,
		ShippingAddress:    dto.ShippingAddress,
		SameAddress:        dto.SameAddress,
		PostalCode:         postalCode,
		Category:           order.Category(dto.Category),
		DispatchOrigin:     dto.DispatchOrigin,
		GemOrderNumber:     dto.GemOrderNumber,
		DeliveryDate:       dto.DeliveryDate,
		DemoDate:           dto.DemoDate,
		PaymentTerms:       order.PaymentTerms(dto.PaymentTerms),
		PaymentMethod:      order.PaymentMethod(dto.PaymentMethod),
		TransactionID:      dto.TransactionID,
		ChequeID:           dto.ChequeID,
		CreditDays:         dto.CreditDays,
		Collected:          collected,
		FreightAmount:      freightAmount,
		FreightMode:        order.BillingMode(dto.FreightMode),
		InstallationAmount: installationAmount,
		InstallationMode:   order.BillingMode(dto.InstallationMode),
		Lines:              lines,
		Remarks:            dto.Remarks,
		ApprovalStatus:     order.ApprovalStatus(dto.ApprovalStatus),
		ProductionStatus:   order.ProductionStatus(dto.ProductionStatus),
		BillingStatus:      order.BillingStatus(dto.BillingStatus),
		DispatchStatus:     order.DispatchStatus(dto.DispatchStatus),
		Stamp:              order.Stamp(dto.Stamp),
		PendingDispatch:    pending,
		SubmittedAt:        dto.SubmittedAt,
	})
}
