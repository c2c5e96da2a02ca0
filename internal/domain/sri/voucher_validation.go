// Package sri contiene validaciones de dominio para comprobantes electrónicos del SRI
// (Ecuador). Utiliza las reglas de identificación y los catálogos de pkg/sri.
package sri

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/validador-ec/internal/domain"
	"github.com/jhoicas/validador-ec/internal/domain/entity"
	pkgsri "github.com/jhoicas/validador-ec/pkg/sri"
)

// ValidateVoucher valida las identificaciones de un comprobante: RUC del emisor,
// identificación del comprador según su tipo y coherencia de la clave de acceso.
// Todos los problemas encontrados se devuelven juntos, encabezados por domain.ErrInvalidVoucher.
func ValidateVoucher(v *entity.Voucher) error {
	if v == nil {
		return fmt.Errorf("%w: comprobante nulo", domain.ErrInvalidVoucher)
	}
	var errs []error

	if err := ValidateIssuerRuc(v.IssuerRuc); err != nil {
		errs = append(errs, fmt.Errorf("emisor: %w", err))
	}
	if err := ValidateBuyer(v.BuyerIDType, v.BuyerID); err != nil {
		errs = append(errs, fmt.Errorf("comprador: %w", err))
	}
	errs = append(errs, accessKeyErrors(v)...)

	// Totales: no negativos y el importe total no menor a la base sin impuestos.
	if v.Subtotal.IsNegative() || v.Total.IsNegative() {
		errs = append(errs, fmt.Errorf("totales negativos: totalSinImpuestos %s, importeTotal %s", v.Subtotal.String(), v.Total.String()))
	} else if !v.Total.IsZero() && v.Total.LessThan(v.Subtotal) {
		errs = append(errs, fmt.Errorf("importeTotal (%s) menor que totalSinImpuestos (%s)", v.Total.String(), v.Subtotal.String()))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrInvalidVoucher}, errs...)...)
	}
	return nil
}

// ValidateIssuerRuc exige un RUC válido de cualquiera de los tres tipos.
func ValidateIssuerRuc(ruc string) error {
	res := pkgsri.Validate(ruc)
	if !res.Valid {
		return fmt.Errorf("ruc %q: %w: %w", ruc, domain.ErrInvalidIdentification, res.Err())
	}
	if !res.DocumentType.IsRuc() {
		return fmt.Errorf("ruc %q: %w: se esperaba un RUC de %d dígitos", ruc, domain.ErrInvalidIdentification, pkgsri.RucLength)
	}
	return nil
}

// ValidateBuyer valida la identificación del comprador según la tabla de tipos de
// identificación del SRI. Pasaporte e identificación del exterior solo se exigen no vacíos.
func ValidateBuyer(typeCode, id string) error {
	switch typeCode {
	case pkgsri.IdentificationTypeRUC:
		return ValidateIssuerRuc(id)
	case pkgsri.IdentificationTypeCedula:
		res := pkgsri.Validate(id)
		if !res.Valid {
			return fmt.Errorf("cédula %q: %w: %w", id, domain.ErrInvalidIdentification, res.Err())
		}
		if res.DocumentType != pkgsri.DocumentTypeCedula {
			return fmt.Errorf("cédula %q: %w: se esperaba una cédula de %d dígitos", id, domain.ErrInvalidIdentification, pkgsri.CedulaLength)
		}
		return nil
	case pkgsri.IdentificationTypePassport, pkgsri.IdentificationTypeForeign:
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: identificación vacía para tipo %s", domain.ErrInvalidIdentification, typeCode)
		}
		return nil
	case pkgsri.IdentificationTypeFinalConsumer:
		if strings.TrimSpace(id) != pkgsri.FinalConsumerIdentification {
			return fmt.Errorf("%w: consumidor final debe usar %s", domain.ErrInvalidIdentification, pkgsri.FinalConsumerIdentification)
		}
		return nil
	default:
		return fmt.Errorf("%w: tipo de identificación %q", domain.ErrUnsupportedDocument, typeCode)
	}
}

// accessKeyErrors verifica el dígito de la clave de acceso y que sus campos coincidan
// con los del comprobante.
func accessKeyErrors(v *entity.Voucher) []error {
	if v.AccessKey == "" {
		return []error{errors.New("clave de acceso requerida")}
	}
	ak, err := pkgsri.ParseAccessKey(v.AccessKey)
	if err != nil {
		return []error{err}
	}
	var errs []error
	if ak.Ruc != v.IssuerRuc {
		errs = append(errs, fmt.Errorf("la clave de acceso corresponde al RUC %s, no al emisor %s", ak.Ruc, v.IssuerRuc))
	}
	if v.VoucherType != "" && ak.VoucherType != v.VoucherType {
		errs = append(errs, fmt.Errorf("la clave de acceso es de un comprobante tipo %s, no %s", ak.VoucherType, v.VoucherType))
	}
	if v.Establishment != "" && ak.Series != v.Establishment+v.EmissionPoint {
		errs = append(errs, fmt.Errorf("serie de la clave de acceso (%s) distinta de %s%s", ak.Series, v.Establishment, v.EmissionPoint))
	}
	if v.Sequential != "" && ak.Sequential != v.Sequential {
		errs = append(errs, fmt.Errorf("secuencial de la clave de acceso (%s) distinto de %s", ak.Sequential, v.Sequential))
	}
	return errs
}
