package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newShopApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/eta", NewEtaHandler().Estimate)
	app.Get("/api/products/:slug", NewProductHandler().Get)
	return app
}

func TestEtaHandler_EchoesPostcode(t *testing.T) {
	app := newShopApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/eta", `{"postcode":"  2000 "}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[struct {
		Postcode string `json:"postcode"`
		Standard string `json:"standard"`
		Express  string `json:"express"`
	}](t, resp)
	require.Equal(t, "2000", out.Postcode)
	require.NotEmpty(t, out.Standard)
	require.NotEmpty(t, out.Express)
	require.Contains(t, out.Standard, " - ")
	require.Contains(t, out.Express, " - ")
}

func TestEtaHandler_MissingBody(t *testing.T) {
	app := newShopApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/eta", ``))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[struct {
		Postcode string `json:"postcode"`
	}](t, resp)
	require.Empty(t, out.Postcode)
}

func TestProductHandler_Found(t *testing.T) {
	app := newShopApp()

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/products/galaxy-s25-ultra", ``))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[struct {
		Slug    string `json:"slug"`
		Product struct {
			Name     string `json:"name"`
			PriceAUD int    `json:"price_aud"`
		} `json:"product"`
	}](t, resp)
	require.Equal(t, "galaxy-s25-ultra", out.Slug)
	require.Equal(t, "Samsung Galaxy S25 Ultra", out.Product.Name)
	require.Equal(t, 1499, out.Product.PriceAUD)
}

func TestProductHandler_NotFound(t *testing.T) {
	app := newShopApp()

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/products/no-such-product", ``))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
