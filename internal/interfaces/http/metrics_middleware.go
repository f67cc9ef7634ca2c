package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// requestObserver es el contrato mínimo que necesita el middleware de métricas.
// Lo implementa *metrics.Recorder.
type requestObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware mide cada petición etiquetada con la ruta registrada (":id", nunca el valor).
// Debe registrarse antes que las rutas.
func MetricsMiddleware(obs requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		obs.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
