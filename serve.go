package sitegen

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve runs a local preview server over the output directory. It serves
// exactly what the build wrote, with the same cache headers production would
// use.
func Serve(addr, dir string) error {
	if err := checkOutputDir(dir); err != nil {
		return err
	}
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(cacheControl)
	e.Static("/", dir)
	err := e.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// cacheControl sets Cache-Control headers based on the request path.
func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/css/"), strings.HasPrefix(path, "/images/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/sitemap.xml":
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		default:
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		}
		return next(c)
	}
}
