package entity

import "time"

// Plantillas visuales disponibles para facturas y devis (mismo contenido, distinto estilo).
const (
	Template1 = "template1"
	Template2 = "template2"
	Template3 = "template3"
	Template4 = "template4"
	Template5 = "template5"
)

// Company representa la empresa/tenant: dueña de clientes, productos, documentos y contadores.
type Company struct {
	ID        string
	Name      string
	ICE       string // Identifiant Commun de l'Entreprise (Marruecos)
	Address   string
	Phone     string
	Email     string
	Template  string // ver constantes Template*
	Numbering NumberingState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidTemplate indica si t es una de las cinco plantillas soportadas.
func IsValidTemplate(t string) bool {
	switch t {
	case Template1, Template2, Template3, Template4, Template5:
		return true
	}
	return false
}
