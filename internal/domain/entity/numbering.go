package entity

// NumberingFormat es el layout del número de documento (compartido por facturas y devis).
type NumberingFormat string

const (
	NumberingFormat1 NumberingFormat = "format1" // {year}-{counter}
	NumberingFormat2 NumberingFormat = "format2" // {prefix}-{year}-{counter}
	NumberingFormat3 NumberingFormat = "format3" // {counter}/{year}
	NumberingFormat4 NumberingFormat = "format4" // {year}/{counter}-{prefix}
	NumberingFormat5 NumberingFormat = "format5" // {prefix}{counter}-{year}
)

// DefaultInvoicePrefix se usa cuando el tenant no configuró prefijo.
const DefaultInvoicePrefix = "FAC"

// QuotePrefix es fijo para los devis, sin importar la configuración del tenant.
const QuotePrefix = "DEV"

// MaxPrefixLength longitud máxima (en caracteres) del prefijo de factura.
const MaxPrefixLength = 5

// IsValid indica si f es uno de los cinco formatos conocidos.
func (f NumberingFormat) IsValid() bool {
	switch f {
	case NumberingFormat1, NumberingFormat2, NumberingFormat3, NumberingFormat4, NumberingFormat5:
		return true
	}
	return false
}

// DocumentKind distingue qué contador se consume.
type DocumentKind string

const (
	DocumentInvoice DocumentKind = "invoice"
	DocumentQuote   DocumentKind = "quote"
)

// NumberingState es el estado de numeración que vive en el registro de la empresa.
// Solo lo muta billing.NextNumber, una vez por documento creado.
type NumberingState struct {
	Format          NumberingFormat
	Prefix          string
	InvoiceCounter  int
	QuoteCounter    int
	LastInvoiceYear int
	LastQuoteYear   int
}
