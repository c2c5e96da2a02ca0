package sri

// Validator conserva el resultado de la última llamada para consultarlo con
// Error() y DocumentType(). Cada llamada sobrescribe el estado anterior.
//
// No es seguro usar la misma instancia desde varias goroutines; en código
// concurrente use las funciones del paquete, que devuelven Result.
type Validator struct {
	last Result
}

// NewValidator crea un validador sin resultado previo.
func NewValidator() *Validator { return &Validator{} }

func (v *Validator) store(r Result) bool {
	v.last = r
	return r.Valid
}

// Validate autodetecta el tipo y valida.
func (v *Validator) Validate(number string) bool { return v.store(Validate(number)) }

// ValidateCedula fuerza las reglas de cédula.
func (v *Validator) ValidateCedula(number string) bool { return v.store(ValidateCedula(number)) }

// ValidateNaturalPersonRuc fuerza las reglas de RUC de persona natural.
func (v *Validator) ValidateNaturalPersonRuc(number string) bool {
	return v.store(ValidateNaturalPersonRuc(number))
}

// ValidatePrivateCompanyRuc fuerza las reglas de RUC de sociedad privada.
func (v *Validator) ValidatePrivateCompanyRuc(number string) bool {
	return v.store(ValidatePrivateCompanyRuc(number))
}

// ValidatePublicCompanyRuc fuerza las reglas de RUC de sociedad pública.
func (v *Validator) ValidatePublicCompanyRuc(number string) bool {
	return v.store(ValidatePublicCompanyRuc(number))
}

// Error devuelve el mensaje de la última validación ("" si fue válida o no hubo llamadas).
func (v *Validator) Error() string { return v.last.Error }

// DocumentType devuelve el tipo detectado en la última validación ("" si no se determinó).
func (v *Validator) DocumentType() string { return string(v.last.DocumentType) }

// Result devuelve el resultado completo de la última validación.
func (v *Validator) Result() Result { return v.last }
