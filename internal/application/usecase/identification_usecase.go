package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/validador-ec/internal/application/dto"
	"github.com/jhoicas/validador-ec/internal/application/ports"
	"github.com/jhoicas/validador-ec/internal/domain"
	"github.com/jhoicas/validador-ec/pkg/logger"
	"github.com/jhoicas/validador-ec/pkg/sri"
)

// IdentificationUseCase valida cédulas y RUC, individualmente o por lote.
type IdentificationUseCase struct {
	batchLimit int
	report     ports.ReportGenerator
	log        *logger.Logger
	now        func() time.Time
}

// NewIdentificationUseCase construye el caso de uso. report puede ser nil si no se
// expone la generación de PDF.
func NewIdentificationUseCase(batchLimit int, report ports.ReportGenerator, log *logger.Logger) *IdentificationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &IdentificationUseCase{
		batchLimit: batchLimit,
		report:     report,
		log:        log.Component("identification"),
		now:        time.Now,
	}
}

// Validate autodetecta el tipo o, si in.DocumentType viene informado, fuerza sus reglas.
// Un tipo desconocido devuelve domain.ErrInvalidInput.
func (uc *IdentificationUseCase) Validate(_ context.Context, in dto.ValidateRequest) (*dto.ValidationResponse, error) {
	var res sri.Result
	if in.DocumentType == "" {
		res = sri.Validate(in.Number)
	} else {
		t, ok := sri.ParseDocumentType(in.DocumentType)
		if !ok {
			return nil, fmt.Errorf("%w: document_type %q", domain.ErrInvalidInput, in.DocumentType)
		}
		res = sri.ValidateAs(t, in.Number)
	}
	uc.log.Debug().
		Str("number", logger.MaskNumber(in.Number)).
		Str("document_type", res.DocumentType.String()).
		Bool("valid", res.Valid).
		Str("error_kind", string(res.Kind)).
		Msg("validación de identificación")
	return toValidationResponse(in.Number, res), nil
}

// Describe valida con autodetección y descompone el número en sus campos.
func (uc *IdentificationUseCase) Describe(_ context.Context, number string) *dto.DetailsResponse {
	d := sri.Describe(number)
	uc.log.Debug().
		Str("number", logger.MaskNumber(d.Number)).
		Str("document_type", d.DocumentType.String()).
		Bool("valid", d.Valid).
		Msg("descripción de identificación")
	return &dto.DetailsResponse{
		ValidationResponse: *toValidationResponse(d.Number, d.Result),
		ProvinceCode:       d.ProvinceCode,
		ProvinceName:       d.ProvinceName,
		ThirdDigit:         d.ThirdDigit,
		EstablishmentCode:  d.EstablishmentCode,
		Cedula:             d.Cedula,
	}
}

// Batch valida cada número con autodetección. El lote no puede estar vacío ni superar
// el límite configurado.
func (uc *IdentificationUseCase) Batch(ctx context.Context, in dto.BatchRequest) (*dto.BatchResponse, error) {
	if len(in.Numbers) == 0 {
		return nil, fmt.Errorf("%w: numbers no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(in.Numbers) > uc.batchLimit {
		return nil, fmt.Errorf("%w: el lote tiene %d números, máximo %d", domain.ErrInvalidInput, len(in.Numbers), uc.batchLimit)
	}

	out := &dto.BatchResponse{
		BatchID:     uuid.New().String(),
		GeneratedAt: uc.now(),
		Total:       len(in.Numbers),
		ByType:      make(map[string]int),
		Items:       make([]dto.ValidationResponse, 0, len(in.Numbers)),
	}
	for _, n := range in.Numbers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := sri.Validate(n)
		if res.Valid {
			out.ValidCount++
			out.ByType[res.DocumentType.String()]++
		} else {
			out.InvalidCount++
		}
		out.Items = append(out.Items, *toValidationResponse(strings.TrimSpace(n), res))
	}

	uc.log.Info().
		Str("batch_id", out.BatchID).
		Int("total", out.Total).
		Int("valid", out.ValidCount).
		Int("invalid", out.InvalidCount).
		Msg("lote validado")
	return out, nil
}

// Report valida el lote y genera su reporte PDF.
func (uc *IdentificationUseCase) Report(ctx context.Context, in dto.BatchRequest) ([]byte, *dto.BatchResponse, error) {
	if uc.report == nil {
		return nil, nil, fmt.Errorf("reporte PDF no configurado")
	}
	batch, err := uc.Batch(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := uc.report.GenerateBatchReport(ctx, batch)
	if err != nil {
		uc.log.Error().Err(err).Str("batch_id", batch.BatchID).Msg("generar reporte PDF")
		return nil, nil, fmt.Errorf("generar reporte: %w", err)
	}
	return pdf, batch, nil
}

func toValidationResponse(number string, res sri.Result) *dto.ValidationResponse {
	return &dto.ValidationResponse{
		Number:       number,
		Valid:        res.Valid,
		DocumentType: res.DocumentType.String(),
		Error:        res.Error,
		ErrorKind:    string(res.Kind),
	}
}
