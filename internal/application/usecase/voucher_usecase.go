package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/validador-ec/internal/application/dto"
	"github.com/jhoicas/validador-ec/internal/application/ports"
	"github.com/jhoicas/validador-ec/internal/domain"
	"github.com/jhoicas/validador-ec/internal/domain/entity"
	domainsri "github.com/jhoicas/validador-ec/internal/domain/sri"
	"github.com/jhoicas/validador-ec/pkg/logger"
	"github.com/jhoicas/validador-ec/pkg/sri"
)

// VoucherUseCase valida las identificaciones de comprobantes electrónicos SRI.
type VoucherUseCase struct {
	parser ports.VoucherParser
	log    *logger.Logger
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(parser ports.VoucherParser, log *logger.Logger) *VoucherUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &VoucherUseCase{parser: parser, log: log.Component("voucher")}
}

// Validate lee el XML y aplica las reglas de dominio. Un XML ilegible devuelve
// domain.ErrInvalidVoucher; un comprobante legible con problemas se informa en la
// respuesta con Valid=false y la lista de errores.
func (uc *VoucherUseCase) Validate(ctx context.Context, xml []byte) (*dto.VoucherResponse, error) {
	if len(xml) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidVoucher)
	}
	v, err := uc.parser.Parse(ctx, xml)
	if err != nil {
		uc.log.Warn().Err(err).Int("bytes", len(xml)).Msg("comprobante ilegible")
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidVoucher, err)
	}

	out := toVoucherResponse(v)
	if err := domainsri.ValidateVoucher(v); err != nil {
		out.Errors = voucherErrorMessages(err)
	}
	out.Valid = len(out.Errors) == 0

	uc.log.Debug().
		Str("root", v.Root).
		Str("issuer_ruc", logger.MaskNumber(v.IssuerRuc)).
		Str("number", v.Number()).
		Bool("valid", out.Valid).
		Int("errors", len(out.Errors)).
		Msg("comprobante validado")
	return out, nil
}

// voucherErrorMessages separa los errores unidos por ValidateVoucher, sin el encabezado.
func voucherErrorMessages(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var msgs []string
	for _, e := range joined.Unwrap() {
		if e == domain.ErrInvalidVoucher {
			continue
		}
		msgs = append(msgs, e.Error())
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func toVoucherResponse(v *entity.Voucher) *dto.VoucherResponse {
	return &dto.VoucherResponse{
		Root:               v.Root,
		VoucherType:        v.VoucherType,
		Number:             v.Number(),
		AccessKey:          v.AccessKey,
		IssuerRuc:          v.IssuerRuc,
		IssuerName:         v.IssuerName,
		IssuerDocumentType: sri.Validate(v.IssuerRuc).DocumentType.String(),
		BuyerIDType:        v.BuyerIDType,
		BuyerID:            v.BuyerID,
		BuyerName:          v.BuyerName,
		Subtotal:           v.Subtotal,
		Total:              v.Total,
	}
}
