package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/validador-ec/internal/application/usecase"
	"github.com/jhoicas/validador-ec/internal/domain"
	"github.com/jhoicas/validador-ec/internal/domain/entity"
	"github.com/jhoicas/validador-ec/pkg/logger"
)

type fakeParser struct {
	voucher *entity.Voucher
	err     error
}

func (f *fakeParser) Parse(_ context.Context, _ []byte) (*entity.Voucher, error) {
	return f.voucher, f.err
}

func voucherValido() *entity.Voucher {
	return &entity.Voucher{
		Root:          entity.VoucherRootInvoice,
		IssuerRuc:     "0992397535001",
		IssuerName:    "EMPRESA DE PRUEBA S.A.",
		AccessKey:     "0101202401099239753500110010010000001231234567817",
		VoucherType:   "01",
		Establishment: "001",
		EmissionPoint: "001",
		Sequential:    "000000123",
		BuyerIDType:   "07",
		BuyerID:       "9999999999999",
		BuyerName:     "CONSUMIDOR FINAL",
		Subtotal:      decimal.NewFromInt(10),
		Total:         decimal.RequireFromString("11.50"),
	}
}

func TestVoucherUseCase_Valido(t *testing.T) {
	uc := usecase.NewVoucherUseCase(&fakeParser{voucher: voucherValido()}, logger.Nop())

	out, err := uc.Validate(context.Background(), []byte("<factura/>"))
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Empty(t, out.Errors)
	assert.Equal(t, "001-001-000000123", out.Number)
	assert.Equal(t, "ruc_private", out.IssuerDocumentType)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("11.5")))
}

func TestVoucherUseCase_ErroresEnRespuesta(t *testing.T) {
	v := voucherValido()
	v.BuyerIDType = "05"
	v.BuyerID = "0926687858"
	v.IssuerRuc = "1760001550001"
	uc := usecase.NewVoucherUseCase(&fakeParser{voucher: v}, nil)

	out, err := uc.Validate(context.Background(), []byte("<factura/>"))
	require.NoError(t, err)
	assert.False(t, out.Valid)
	require.Len(t, out.Errors, 2)
	assert.Contains(t, out.Errors[0], "comprador")
	assert.Contains(t, out.Errors[0], "Check digit validation failed")
	assert.Contains(t, out.Errors[1], "la clave de acceso corresponde al RUC 0992397535001")
	assert.Equal(t, "ruc_public", out.IssuerDocumentType)
}

func TestVoucherUseCase_XMLIlegible(t *testing.T) {
	uc := usecase.NewVoucherUseCase(&fakeParser{err: errors.New("xml roto")}, nil)

	_, err := uc.Validate(context.Background(), []byte("no es xml"))
	assert.ErrorIs(t, err, domain.ErrInvalidVoucher)
	assert.ErrorContains(t, err, "xml roto")

	_, err = uc.Validate(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidVoucher)
}
