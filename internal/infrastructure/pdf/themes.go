package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// theme estilo visual de una plantilla. El contenido del documento es el mismo en las cinco.
type theme struct {
	name         string
	primary      *props.Color
	muted        *props.Color
	stripe       *props.Color // fondo de filas pares de la tabla (nil = sin bandas)
	filledHeader bool         // cabecera de tabla con fondo de color
	titleAlign   align.Type
}

var (
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var themes = map[string]theme{
	entity.Template1: {
		name: "Classique", primary: &props.Color{Red: 0, Green: 70, Blue: 127}, muted: colorGray,
		stripe: &props.Color{Red: 240, Green: 244, Blue: 250}, filledHeader: true, titleAlign: align.Right,
	},
	entity.Template2: {
		name: "Moderne", primary: &props.Color{Red: 0, Green: 128, Blue: 128}, muted: colorGray,
		stripe: &props.Color{Red: 235, Green: 248, Blue: 247}, filledHeader: true, titleAlign: align.Left,
	},
	entity.Template3: {
		name: "Élégant", primary: &props.Color{Red: 122, Green: 28, Blue: 48}, muted: &props.Color{Red: 120, Green: 100, Blue: 90},
		filledHeader: false, titleAlign: align.Center,
	},
	entity.Template4: {
		name: "Minimal", primary: &props.Color{Red: 40, Green: 40, Blue: 40}, muted: &props.Color{Red: 130, Green: 130, Blue: 130},
		filledHeader: false, titleAlign: align.Right,
	},
	entity.Template5: {
		name: "Corporate", primary: &props.Color{Red: 20, Green: 90, Blue: 50}, muted: colorGray,
		stripe: &props.Color{Red: 238, Green: 246, Blue: 240}, filledHeader: true, titleAlign: align.Right,
	},
}

// themeFor devuelve el tema de la plantilla; una plantilla desconocida cae en template1.
func themeFor(template string) theme {
	if t, ok := themes[template]; ok {
		return t
	}
	return themes[entity.Template1]
}
