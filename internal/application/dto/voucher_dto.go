package dto

import "github.com/shopspring/decimal"

// VoucherResponse resultado de validar las identificaciones de un comprobante electrónico.
type VoucherResponse struct {
	Valid              bool            `json:"valid"`
	Root               string          `json:"root"`
	VoucherType        string          `json:"voucher_type"`
	Number             string          `json:"number"`
	AccessKey          string          `json:"access_key"`
	IssuerRuc          string          `json:"issuer_ruc"`
	IssuerName         string          `json:"issuer_name"`
	IssuerDocumentType string          `json:"issuer_document_type"`
	BuyerIDType        string          `json:"buyer_id_type"`
	BuyerID            string          `json:"buyer_id"`
	BuyerName          string          `json:"buyer_name"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Total              decimal.Decimal `json:"total"`
	Errors             []string        `json:"errors,omitempty"`
}
