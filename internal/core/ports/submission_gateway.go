package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// SubmissionLine is one line of a finished order record. Quantity and unit
// price travel as numbers, the tax rate as its string form ("inclusive" or the
// numeric percent).
type SubmissionLine struct {
	ProductType string  `json:"productType"`
	Size        string  `json:"size"`
	Spec        string  `json:"spec"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     string  `json:"taxRate"`
	Warranty    string  `json:"warranty"`
}

// SubmissionRecord is the finished order record handed to the external API on
// a successful submission. The total is a number; the collected and due
// amounts travel as decimal strings to keep their two-decimal precision.
type SubmissionRecord struct {
	OrderID          string           `json:"orderId"`
	CustomerName     string           `json:"customerName"`
	Phone            string           `json:"phone"`
	AltPhone         string           `json:"altPhone,omitempty"`
	Email            string           `json:"email"`
	BillingAddress   string           `json:"billingAddress"`
	ShippingAddress  string           `json:"shippingAddress"`
	PostalCode       string           `json:"postalCode"`
	Category         string           `json:"category"`
	DispatchOrigin   string           `json:"dispatchOrigin"`
	GemOrderNumber   string           `json:"gemOrderNumber,omitempty"`
	DeliveryDate     string           `json:"deliveryDate,omitempty"`
	DemoDate         string           `json:"demoDate,omitempty"`
	PaymentTerms     string           `json:"paymentTerms,omitempty"`
	PaymentMethod    string           `json:"paymentMethod,omitempty"`
	TransactionID    string           `json:"transactionId,omitempty"`
	ChequeID         string           `json:"chequeId,omitempty"`
	CreditDays       int              `json:"creditDays,omitempty"`
	FreightMode      string           `json:"freightMode"`
	FreightAmount    string           `json:"freightAmount"`
	InstallationMode string           `json:"installationMode"`
	InstallationAmnt string           `json:"installationAmount"`
	Lines            []SubmissionLine `json:"lines"`
	Total            float64          `json:"total"`
	PaymentCollected string           `json:"paymentCollected"`
	PaymentDue       string           `json:"paymentDue"`
	ApprovalStatus   string           `json:"approvalStatus"`
	ProductionStatus string           `json:"productionStatus"`
	BillingStatus    string           `json:"billingStatus"`
	DispatchStatus   string           `json:"dispatchStatus"`
	Stamp            string           `json:"stamp,omitempty"`
	Remarks          string           `json:"remarks,omitempty"`
}

// BuildSubmissionRecord projects a validated order onto the outbound record
// shape.
func BuildSubmissionRecord(o *order.Order) SubmissionRecord {
	totals := o.Totals()

	lines := make([]SubmissionLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, SubmissionLine{
			ProductType: line.ProductType(),
			Size:        line.Size(),
			Spec:        line.Spec(),
			Qty:         line.Qty(),
			UnitPrice:   line.UnitPrice().Amount().InexactFloat64(),
			TaxRate:     line.TaxRate().String(),
			Warranty:    line.Warranty(),
		})
	}

	record := SubmissionRecord{
		OrderID:          o.ID().String(),
		CustomerName:     o.CustomerName(),
		Phone:            o.Phone().String(),
		Email:            o.Email().String(),
		BillingAddress:   o.BillingAddress(),
		ShippingAddress:  o.ShippingAddress(),
		PostalCode:       o.PostalCode().String(),
		Category:         o.Category().String(),
		DispatchOrigin:   o.DispatchOrigin(),
		GemOrderNumber:   o.GemOrderNumber(),
		PaymentTerms:     o.PaymentTerms().String(),
		PaymentMethod:    o.PaymentMethod().String(),
		TransactionID:    o.TransactionID(),
		ChequeID:         o.ChequeID(),
		CreditDays:       o.CreditDays(),
		FreightMode:      o.FreightMode().String(),
		FreightAmount:    o.FreightAmount().String(),
		InstallationMode: o.InstallationMode().String(),
		InstallationAmnt: o.InstallationAmount().String(),
		Lines:            lines,
		Total:            totals.Total.InexactFloat64(),
		PaymentCollected: o.Collected().Amount().StringFixed(2),
		PaymentDue:       totals.PaymentDue.StringFixed(2),
		ApprovalStatus:   o.ApprovalStatus().String(),
		ProductionStatus: o.ProductionStatus().String(),
		BillingStatus:    o.BillingStatus().String(),
		DispatchStatus:   o.DispatchStatus().String(),
		Stamp:            o.Stamp().String(),
		Remarks:          o.Remarks(),
	}

	if alt := o.AltPhone(); alt != nil {
		record.AltPhone = alt.String()
	}
	if d := o.DeliveryDate(); d != nil {
		record.DeliveryDate = d.Format("2006-01-02")
	}
	if d := o.DemoDate(); d != nil {
		record.DemoDate = d.Format("2006-01-02")
	}

	return record
}

// SubmissionGateway hands a finished order record to the external API. The
// caller's role and auth token are explicit parameters; the gateway keeps no
// ambient credential state.
type SubmissionGateway interface {
	Submit(ctx context.Context, record SubmissionRecord, actorRole string, authToken string) error
}
