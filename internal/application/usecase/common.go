package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/pkg/validation"
)

// validate aplica los tags `validate` del DTO y devuelve *domain.ValidationError si falla.
func validate(in interface{}) error {
	if fields := validation.Struct(in); fields != nil {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// now hora actual en UTC truncada a milisegundos (precisión de fechas en Mongo),
// así lo devuelto en Create coincide con lo leído después.
func now() time.Time {
	return utcMillis(time.Now())
}

// utcMillis lleva una fecha del cliente a la misma precisión que guarda Mongo.
func utcMillis(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// blank indica si un campo opcional vino presente pero vacío.
func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
