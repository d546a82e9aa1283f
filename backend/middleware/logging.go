package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()

		// Логируем шаблон маршрута, а не конкретный путь
		route := c.Route().Path
		if route == "" || route == "/" {
			route = c.Path()
		}

		logger.Printf(
			"%s %s %s %d %v",
			c.IP(),
			c.Method(),
			route,
			c.Response().StatusCode(),
			time.Since(start),
		)

		return err
	}
}
