// Package sri lee comprobantes electrónicos del SRI (Ecuador) en XML, tanto el
// comprobante suelto como envuelto en la respuesta de autorización.
package sri

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/validador-ec/internal/domain/entity"
)

// infoSection rutas de los campos del comprador según el tipo de comprobante.
type infoSection struct {
	element   string
	buyerType string
	buyerID   string
	buyerName string
	subtotal  string
	total     string
}

var sections = map[string]infoSection{
	entity.VoucherRootInvoice: {
		element:   "infoFactura",
		buyerType: "tipoIdentificacionComprador",
		buyerID:   "identificacionComprador",
		buyerName: "razonSocialComprador",
		subtotal:  "totalSinImpuestos",
		total:     "importeTotal",
	},
	entity.VoucherRootCreditNote: {
		element:   "infoNotaCredito",
		buyerType: "tipoIdentificacionComprador",
		buyerID:   "identificacionComprador",
		buyerName: "razonSocialComprador",
		subtotal:  "totalSinImpuestos",
		total:     "valorModificacion",
	},
	entity.VoucherRootDebitNote: {
		element:   "infoNotaDebito",
		buyerType: "tipoIdentificacionComprador",
		buyerID:   "identificacionComprador",
		buyerName: "razonSocialComprador",
		subtotal:  "totalSinImpuestos",
		total:     "valorTotal",
	},
	entity.VoucherRootWithholding: {
		element:   "infoCompRetencion",
		buyerType: "tipoIdentificacionSujetoRetenido",
		buyerID:   "identificacionSujetoRetenido",
		buyerName: "razonSocialSujetoRetenido",
	},
}

// authorizationRoot envoltura que devuelve el web service de autorización del SRI;
// el comprobante viaja como texto (normalmente CDATA) dentro de <comprobante>.
const authorizationRoot = "autorizacion"

// VoucherReader implementa ports.VoucherParser usando etree.
type VoucherReader struct{}

// NewVoucherReader construye el lector.
func NewVoucherReader() *VoucherReader { return &VoucherReader{} }

// Parse lee el comprobante. Acepta declaraciones de codificación ISO-8859-1.
func (r *VoucherReader) Parse(ctx context.Context, data []byte) (*entity.Voucher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root, err := readRoot(data)
	if err != nil {
		return nil, err
	}
	if root.Tag == authorizationRoot {
		inner := root.FindElement("comprobante")
		if inner == nil || strings.TrimSpace(inner.Text()) == "" {
			return nil, fmt.Errorf("sri: autorización sin comprobante")
		}
		if root, err = readRoot([]byte(strings.TrimSpace(inner.Text()))); err != nil {
			return nil, fmt.Errorf("sri: comprobante autorizado: %w", err)
		}
	}

	sec, ok := sections[root.Tag]
	if !ok {
		return nil, fmt.Errorf("sri: comprobante no soportado: <%s>", root.Tag)
	}
	trib := root.SelectElement("infoTributaria")
	if trib == nil {
		return nil, fmt.Errorf("sri: <%s> sin infoTributaria", root.Tag)
	}
	info := root.SelectElement(sec.element)
	if info == nil {
		return nil, fmt.Errorf("sri: <%s> sin %s", root.Tag, sec.element)
	}

	v := &entity.Voucher{
		Root:          root.Tag,
		Version:       root.SelectAttrValue("version", ""),
		Environment:   childText(trib, "ambiente"),
		EmissionType:  childText(trib, "tipoEmision"),
		IssuerName:    childText(trib, "razonSocial"),
		TradeName:     childText(trib, "nombreComercial"),
		IssuerRuc:     childText(trib, "ruc"),
		AccessKey:     childText(trib, "claveAcceso"),
		VoucherType:   childText(trib, "codDoc"),
		Establishment: childText(trib, "estab"),
		EmissionPoint: childText(trib, "ptoEmi"),
		Sequential:    childText(trib, "secuencial"),
		IssueDate:     childText(info, "fechaEmision"),
		BuyerIDType:   childText(info, sec.buyerType),
		BuyerID:       childText(info, sec.buyerID),
		BuyerName:     childText(info, sec.buyerName),
	}
	if sec.subtotal != "" {
		if v.Subtotal, err = childDecimal(info, sec.subtotal); err != nil {
			return nil, err
		}
	}
	if sec.total != "" {
		if v.Total, err = childDecimal(info, sec.total); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func readRoot(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("sri: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("sri: documento sin raíz")
	}
	return root, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	return input, nil
}

func childText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func childDecimal(parent *etree.Element, tag string) (decimal.Decimal, error) {
	s := childText(parent, tag)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sri: %s inválido %q: %w", tag, s, err)
	}
	return d, nil
}
